// Package rop contains Result[T], an immutable success/failure value that
// lets code report "this may fail" without panics.
//
// Highlights:
// - Success/OK/Fail: construct a Result
// - FromThrowable/FromPromise: capture errors, panics and promise rejections
// - Value/Err: payload accessors that panic with *MisuseError on the wrong state
// - MapError/Recover/OrElse/GetOrElse/GetOrCall: same-type transformations
// - Tap/TapError: side effects without changing the Result
// - ToPromise/ToJSON: interop with promise based callers and serializers
//
// Type changing combinators (Map, FlatMap, Match) live in package solo and
// their asynchronous versions in package async.
package rop
