// Package either contains Either[A, B], an immutable value holding exactly
// one of two variants: First(A) or Second(B). By convention First carries a
// failure and Second carries a success.
//
// Highlights:
// - First/Second: construct an Either
// - IsFirst/IsSecond/FirstValue/SecondValue: inspect the variant
// - Fold: reduce to a single value via one of two handlers
// - Map/MapLeft: transform one branch, pass the other through
// - FlatMap: sequence dependent steps, stopping at the first First
// - Swap/ToOption: exchange variants or drop the First branch
//
// Combinators that change a type parameter are package-level functions
// because Go methods cannot declare type parameters.
package either
