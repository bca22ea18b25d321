package table

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for table operations.
var (
	// ErrColumnNotFound indicates the named column does not exist.
	ErrColumnNotFound = errors.New("table: column not found")

	// ErrColumnLength indicates a column length differing from the key column.
	ErrColumnLength = errors.New("table: column length differs from key column")

	// ErrColumnExists indicates the column name is already attached.
	ErrColumnExists = errors.New("table: column already exists")
)

// Table holds records keyed by an integer foreign key. One key may occur
// on many records (many buildings joined to one street segment).
type Table struct {
	keys []int64
	cols map[string][]float64
}

// New creates a Table over the given foreign-key column. The slice is
// not copied; callers must not mutate it afterwards.
func New(keys []int64) *Table {
	return &Table{keys: keys, cols: make(map[string][]float64)}
}

// Len returns the number of records.
func (t *Table) Len() int {
	return len(t.keys)
}

// AddColumn attaches a named float64 column, index-aligned with the key
// column. NaN cells mark missing values.
func (t *Table) AddColumn(name string, vals []float64) error {
	if _, ok := t.cols[name]; ok {
		return fmt.Errorf("%w: %q", ErrColumnExists, name)
	}
	if len(vals) != len(t.keys) {
		return fmt.Errorf("%w: %q has %d rows, key column has %d", ErrColumnLength, name, len(vals), len(t.keys))
	}
	t.cols[name] = vals
	return nil
}

// HasColumn reports whether a named column is attached.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.cols[name]
	return ok
}

// CountByKey groups records by foreign key and returns per-key record
// counts. Complexity: O(rows).
func (t *Table) CountByKey() map[int64]int {
	counts := make(map[int64]int, len(t.keys))
	for _, k := range t.keys {
		counts[k]++
	}
	return counts
}

// CountIn returns the total number of records whose key is in keys.
// Complexity: O(rows).
func (t *Table) CountIn(keys map[int64]struct{}) int {
	n := 0
	for _, k := range t.keys {
		if _, ok := keys[k]; ok {
			n++
		}
	}
	return n
}

// Select returns the column values of every record whose key is in keys,
// in record order. Complexity: O(rows).
func (t *Table) Select(column string, keys map[int64]struct{}) ([]float64, error) {
	col, ok := t.cols[column]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, column)
	}
	var out []float64
	for i, k := range t.keys {
		if _, ok := keys[k]; ok {
			out = append(out, col[i])
		}
	}
	return out, nil
}

// SumBy groups the named column by foreign key, summing non-missing
// values per key. Keys whose every value is missing are absent from the
// result. Complexity: O(rows).
func (t *Table) SumBy(column string) (map[int64]float64, error) {
	col, ok := t.cols[column]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, column)
	}
	sums := make(map[int64]float64)
	for i, k := range t.keys {
		v := col[i]
		if !math.IsNaN(v) {
			sums[k] += v
		}
	}
	return sums, nil
}
