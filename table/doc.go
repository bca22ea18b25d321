// Package table is the in-memory tabular-join collaborator: a secondary
// record table keyed by an integer foreign key, with named float64
// columns. The intensity operations resolve a neighborhood's unit ids
// against it to count joined records or to pull the values a reduction
// runs over.
//
// NaN marks a missing cell; the aggregation layer decides how missing
// values propagate. The table is append-only: keys are fixed at
// construction and columns are attached once, so a table snapshot can be
// shared across concurrent aggregation calls.
//
// Errors:
//
//   - ErrColumnNotFound: a named column does not exist.
//   - ErrColumnLength:   a column's length differs from the key column.
//   - ErrColumnExists:   a column name was attached twice.
package table
