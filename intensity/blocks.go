package intensity

import (
	"github.com/woodywonge/momepy/adjacency"
	"github.com/woodywonge/momepy/aggregate"
)

// BlocksCount computes the weighted number of blocks around every unit
// of a morphological tessellation: the count of distinct block ids
// present in the unit's closed 1-hop neighborhood, divided by the
// neighborhood's summed area. This is a strictly local operation (one
// adjacency hop), not a transitive closure.
//
// blockIDs and areas are index-aligned with the unit universe. A
// neighborhood whose summed area is zero has no meaningful density and
// yields Undefined.
//
// Complexity: O(N + E).
func BlocksCount(g *adjacency.Graph, blockIDs []int64, areas []float64, opts ...Option) (aggregate.Series, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if len(blockIDs) != g.Len() || len(areas) != g.Len() {
		return nil, ErrLengthMismatch
	}

	series := make(aggregate.Series, g.Len())
	err = runUnits(o, g.Len(), func(i int) error {
		vicinity, nerr := g.Neighborhood(i, true)
		if nerr != nil {
			return nerr
		}
		blocks := make(map[int64]struct{}, vicinity.Cardinality())
		var area float64
		vicinity.ForEach(func(u int) bool {
			blocks[blockIDs[u]] = struct{}{}
			area += areas[u]
			return true
		})
		if area == 0 {
			series[i] = aggregate.Undefined()
			return nil
		}
		series[i] = aggregate.Defined(float64(len(blocks)) / area)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return series, nil
}
