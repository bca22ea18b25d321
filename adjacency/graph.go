package adjacency

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// Graph is the immutable topological neighborhood graph over a unit
// universe of size N. Rows hold per-unit neighbor sets; a nil row means
// the unit has no neighbors. The graph never assumes symmetry: it only
// ever dereferences the row of the unit being processed.
type Graph struct {
	n    int
	rows []*roaring.Bitmap
}

// New builds a Graph over n units from a sparse neighbor mapping.
// Every key and every referenced neighbor must fall inside 0..n-1,
// otherwise ErrNeighborOutOfRange is returned. Self-loops are kept
// but deduplicated by the set representation.
// Complexity: O(N + E).
func New(n int, neighbors map[int][]int) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadUniverse, n)
	}
	g := &Graph{n: n, rows: make([]*roaring.Bitmap, n)}
	for unit, nbrs := range neighbors {
		if unit < 0 || unit >= n {
			return nil, fmt.Errorf("%w: row key %d, universe %d", ErrNeighborOutOfRange, unit, n)
		}
		if len(nbrs) == 0 {
			continue
		}
		row := roaring.New()
		for _, v := range nbrs {
			if v < 0 || v >= n {
				return nil, fmt.Errorf("%w: %d -> %d, universe %d", ErrNeighborOutOfRange, unit, v, n)
			}
			row.Add(uint32(v))
		}
		g.rows[unit] = row
	}
	return g, nil
}

// FromRows builds a Graph whose i-th neighbor list is rows[i].
// The universe size is len(rows).
func FromRows(rows [][]int) (*Graph, error) {
	m := make(map[int][]int, len(rows))
	for i, r := range rows {
		if len(r) > 0 {
			m[i] = r
		}
	}
	return New(len(rows), m)
}

// Len returns the unit universe size N.
func (g *Graph) Len() int {
	return g.n
}

// Degree returns the number of distinct neighbors of unit.
func (g *Graph) Degree(unit int) (int, error) {
	if err := g.check(unit); err != nil {
		return 0, err
	}
	if g.rows[unit] == nil {
		return 0, nil
	}
	return int(g.rows[unit].GetCardinality()), nil
}

// Neighborhood expands seed into its 1-hop neighborhood: the direct
// neighbor set, plus seed itself iff includeSelf. A unit with no
// neighbors and includeSelf=true still forms the singleton {seed}.
// The returned set is owned by the caller; the graph is not mutated.
// Complexity: O(degree(seed)).
func (g *Graph) Neighborhood(seed int, includeSelf bool) (*UnitSet, error) {
	if err := g.check(seed); err != nil {
		return nil, err
	}
	set := NewUnitSet()
	if row := g.rows[seed]; row != nil {
		set.rb.Or(row)
	}
	if includeSelf {
		set.Add(seed)
	}
	return set, nil
}

// ForEachNeighbor iterates the direct neighbors of unit in ascending
// order without allocating; fn returning false stops early.
func (g *Graph) ForEachNeighbor(unit int, fn func(neighbor int) bool) error {
	if err := g.check(unit); err != nil {
		return err
	}
	row := g.rows[unit]
	if row == nil {
		return nil
	}
	it := row.Iterator()
	for it.HasNext() {
		if !fn(int(it.Next())) {
			return nil
		}
	}
	return nil
}

func (g *Graph) check(unit int) error {
	if g == nil {
		return ErrNilGraph
	}
	if unit < 0 || unit >= g.n {
		return fmt.Errorf("%w: %d, universe %d", ErrUnitOutOfRange, unit, g.n)
	}
	return nil
}
