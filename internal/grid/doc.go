// Package grid provides the rectangular float64 arrays every seawater
// quantity is expressed in.
//
// A [Grid] is an m×n row-major array; scalars are 1×1 grids. The package
// also owns the shape contract shared by all EOS-80 entry points:
//
//   - [MatchShape]: exact shape equality (salinity vs temperature)
//   - [Broadcast]: the four-case pressure broadcasting rule
//   - [Map2], [Map3], [Map4]: element-wise kernels over same-shape grids
//
// # Broadcasting
//
// A pressure-like argument X is reconciled against a reference shape m×n by
// checking, in order: 1×1, 1×n (row), m×1 (column), m×n. Anything else is a
// [ShapeError] naming the offending argument.
//
// # Thread Safety
//
// Grids are never mutated after construction by this package. Concurrent
// reads are safe; element-wise kernels split large grids across goroutines
// with [ParallelFor].
package grid
