package intensity

import (
	"fmt"

	"github.com/woodywonge/momepy/adjacency"
	"github.com/woodywonge/momepy/aggregate"
)

// Courtyards counts the enclosed interior courtyards of each joined
// building structure. Touching footprints are first merged into
// connected components over the adjacency graph; the dissolver then
// unions each component's footprints (buffered by the configured
// tolerance so corner-touching footprints stay in one part) exactly once
// per component, and every member unit receives the resulting interior
// ring count.
//
// A failing union degrades only its own component: those units are left
// Undefined and the failure comes back wrapped in ErrDissolve, joined
// with any other component failures, while the remaining components are
// still processed.
//
// WithWorkers(n) dissolves components in parallel; each component owns
// disjoint series slots. WithTolerance overrides DefaultTolerance.
//
// Complexity: O(N + E) for the closure plus one dissolver call per
// component; the dissolver dominates.
func Courtyards(g *adjacency.Graph, dis Dissolver, opts ...Option) (aggregate.Series, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if dis == nil {
		return nil, ErrNilDissolver
	}

	comps := g.Components()
	series := make(aggregate.Series, g.Len())
	compErrs := make([]error, len(comps))

	err = runUnits(o, len(comps), func(ci int) error {
		comp := comps[ci]
		dissolved, derr := dis.UnionWithBuffer(comp, o.Tolerance)
		if derr != nil {
			compErrs[ci] = fmt.Errorf("%w: units %v: %w", ErrDissolve, comp, derr)
			return nil
		}
		rings := aggregate.Defined(float64(dissolved.InteriorRingCount()))
		for _, u := range comp {
			series[u] = rings
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return series, joinUnitErrors(compErrs)
}
