// Package errs defines the closed vocabulary of failure categories carried
// by rop.Result failures.
//
// Highlights:
// - Kind: name tag of a category with IsA membership (Timeout and
// Cancellation are Technical, everything is Base)
// - Validation/NotFound/Unauthorized/BusinessRule/Technical/Timeout/
// Concurrency/Cancellation: constructors with fixed message templates and
// an optional cause
// - Trace and %+v: the error, its construction stack and every cause
// - ErrTechnical and friends: sentinels for errors.Is category checks
// - Coerce/FromContext: normalize panics and context ends into errors
package errs
