// Package aggregate reduces the values attached to an expanded
// neighborhood into a single scalar per unit.
//
// What:
//
//   - Mode selects the reduction: Count, Sum, Mean, or Std
//     (population standard deviation).
//   - Value is an explicit optional float64: Mean/Std over an empty
//     qualifying set is Undefined, never silently zero; "no data" and
//     "legitimately zero" are different answers.
//   - Series is the sole batch artifact: one Value per unit,
//     index-aligned with the caller's unit universe.
//   - Reduce applies a Mode to a slice of record values; NaN marks a
//     missing record value and is skipped by every mode except Count.
//
// Why:
//
//   - Every intensity indicator ends in the same reduction step; keeping
//     it in one place keeps the missing-value policy in one place.
//
// Errors:
//
//   - ErrUnknownMode: the Mode is outside the defined enum.
//
// Complexity: Reduce is a single O(len(vals)) pass.
package aggregate
