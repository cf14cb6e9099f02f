// Package operations provides the built-in commutative operations which may be used as the
// operation type of an accum.Accumulator.
//
// Every operation here is an empty struct, so that it is selected by type:
//
//	acc := accum.NewAccumulator[float64, operations.Max[float64]](scope, nil)
//
// Floating-point sums and products are only associative up to rounding, so folding the
// same values in a different order may differ in the last bits.
package operations
