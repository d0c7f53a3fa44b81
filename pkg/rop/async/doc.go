// Package async contains the awaiting counterparts of the solo
// combinators. Awaiting means blocking the calling goroutine on a promise;
// none of these helpers start goroutines except Go.
//
// Key operations:
// - AsyncMap/AsyncFlatMap: map or bind through a promise-returning function
// - TryCatchAsync: start a promise-returning function, capturing panics
// - Promisify: adapt callback style operations
// - Retry/RetryDefault/RetryWithConfig: exponential backoff until success
// - Go/All: run Result producing work concurrently and combine it
package async
