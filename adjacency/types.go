// Package adjacency defines the unit-universe graph type, its sentinel
// errors, and the UnitSet bitmap wrapper shared by all traversals.
package adjacency

import (
	"errors"

	"github.com/RoaringBitmap/roaring/v2"
)

// Sentinel errors for adjacency graph operations.
var (
	// ErrNilGraph indicates a nil *Graph was passed to an operation.
	ErrNilGraph = errors.New("adjacency: graph is nil")

	// ErrBadUniverse indicates a negative unit universe size.
	ErrBadUniverse = errors.New("adjacency: universe size must be non-negative")

	// ErrNeighborOutOfRange indicates the neighbor lists reference a unit
	// index outside the universe. The upstream spatial-weights matrix is
	// malformed; construction aborts rather than producing a partial graph.
	ErrNeighborOutOfRange = errors.New("adjacency: neighbor index outside unit universe")

	// ErrUnitOutOfRange indicates a query referenced a seed outside 0..N-1.
	ErrUnitOutOfRange = errors.New("adjacency: unit index outside unit universe")
)

// UnitSet is a set of unit indices backed by a 32-bit roaring bitmap.
// It is the currency of neighborhood expansion: membership, union, and
// ascending iteration are all sub-linear in the universe size.
type UnitSet struct {
	rb *roaring.Bitmap
}

// NewUnitSet creates an empty UnitSet.
func NewUnitSet() *UnitSet {
	return &UnitSet{rb: roaring.New()}
}

// Add inserts a unit index into the set. Duplicates are a no-op.
func (s *UnitSet) Add(unit int) {
	s.rb.Add(uint32(unit))
}

// Contains reports whether unit is in the set.
func (s *UnitSet) Contains(unit int) bool {
	return s.rb.Contains(uint32(unit))
}

// Cardinality returns the number of units in the set.
func (s *UnitSet) Cardinality() int {
	return int(s.rb.GetCardinality())
}

// IsEmpty reports whether the set holds no units.
func (s *UnitSet) IsEmpty() bool {
	return s.rb.IsEmpty()
}

// ForEach iterates units in ascending index order; fn returning false
// stops the iteration early.
func (s *UnitSet) ForEach(fn func(unit int) bool) {
	it := s.rb.Iterator()
	for it.HasNext() {
		if !fn(int(it.Next())) {
			return
		}
	}
}

// Members returns the units as a sorted ascending slice.
func (s *UnitSet) Members() []int {
	out := make([]int, 0, s.Cardinality())
	it := s.rb.Iterator()
	for it.HasNext() {
		out = append(out, int(it.Next()))
	}
	return out
}

// Or unions other into the receiver.
func (s *UnitSet) Or(other *UnitSet) {
	s.rb.Or(other.rb)
}

// Clone returns a deep copy of the set.
func (s *UnitSet) Clone() *UnitSet {
	return &UnitSet{rb: s.rb.Clone()}
}
