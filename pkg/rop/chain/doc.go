// Package chain provides a fluent wrapper around Result[T]
// for building synchronous Railway-Oriented chains using solo primitives.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[T] or value
// - Then: bind the next Result[U] producing step
// - ThenTry: call a function (U, error) and convert error to failure
// - Map: transform the successful value (T -> U)
// - Recover: replace a failure with another Result[T]
// - Ensure/EnsureError: side effects on success or on failure
// - Finally: collapse the chain into a final value via handlers
package chain
