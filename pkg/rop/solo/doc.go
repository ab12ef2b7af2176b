// Package solo contains single-value, synchronous ROP steps over
// rop.Result[T]. Every step is a thin layer over the either combinators:
// a failure entering a step leaves it unchanged and no callback runs.
//
// Highlights:
// - Succeed/Fail: construct Result[T]
// - Validate/AndValidate/ValidateAll: turn invalid input into failure
// - Switch: move from Result[In] to Result[Out] (either.FlatMap)
// - Map/DoubleMap/MapErr: transform one track (either.Map/MapLeft)
// - Try: call a function (Out, error) and convert error to failure
// - Tee/TeeIf/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value (either.Fold)
package solo
