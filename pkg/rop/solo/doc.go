// Package solo contains single-value, synchronous ROP primitives that operate
// on Result[T]. These functions change the value type, which methods on
// Result cannot do.
//
// Highlights:
// - Map/FlatMap: transform a success or bind the next fallible step
// - Match/Finally: reduce to a concrete value via handlers
// - Try: call a function (Out, error) and convert error to failure
// - Validate/AndValidate/ValidateAll/FromPredicate: turn checks into failures
// - Tee/TeeIf/DoubleTee: side-effect helpers
// - Combine: all values in order, or the first failure
package solo
