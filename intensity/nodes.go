package intensity

import (
	"github.com/woodywonge/momepy/adjacency"
	"github.com/woodywonge/momepy/aggregate"
)

// NodeDensity computes, for every street network node, the density of
// nodes within its closed 1-hop neighborhood: node count divided by the
// cumulative length of the network inside the neighborhood. Only edges
// with both endpoints inside the neighborhood contribute length.
//
// With weighted=true the numerator is the sum of (degree-1) over the
// neighborhood's nodes instead of the plain node count; degrees is then
// required and index-aligned with the node universe. The minus one keeps
// the seed's own connections from being counted from both endpoints;
// treat it as a modelling choice rather than a derived identity.
//
// Isolated micro-networks are legitimate input: zero cumulative length
// yields Defined(0), never a division fault.
//
// Complexity: O(N·degree + N·edges); edge scans dominate on dense
// networks.
func NodeDensity(g *adjacency.Graph, edges []Edge, weighted bool, degrees []int, opts ...Option) (aggregate.Series, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if weighted {
		if degrees == nil {
			return nil, ErrMissingDegrees
		}
		if len(degrees) != g.Len() {
			return nil, ErrLengthMismatch
		}
	}

	series := make(aggregate.Series, g.Len())
	err = runUnits(o, g.Len(), func(i int) error {
		hood, nerr := g.Neighborhood(i, true)
		if nerr != nil {
			return nerr
		}

		var nodes float64
		if weighted {
			hood.ForEach(func(u int) bool {
				nodes += float64(degrees[u] - 1)
				return true
			})
		} else {
			nodes = float64(hood.Cardinality())
		}

		var length float64
		for _, e := range edges {
			if hood.Contains(e.Start) && hood.Contains(e.End) {
				length += e.Length
			}
		}

		if length > 0 {
			series[i] = aggregate.Defined(nodes / length)
		} else {
			series[i] = aggregate.Defined(0)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return series, nil
}
