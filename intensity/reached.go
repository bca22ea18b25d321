package intensity

import (
	"fmt"

	"github.com/woodywonge/momepy/adjacency"
	"github.com/woodywonge/momepy/aggregate"
	"github.com/woodywonge/momepy/table"
)

// Reached aggregates the secondary records reachable from every street
// network element (segment or node) within one topological step.
//
// leftIDs holds the network elements' external ids in universe order;
// right is the secondary record table whose foreign keys are those ids.
// g captures element adjacency; a nil graph means topological distance
// zero, i.e. each element reaches only its own records.
//
// mode aggregate.Count returns the total number of joined records in the
// neighborhood (records, not units: one segment may join many
// buildings). Sum, Mean and Std reduce the named column over the joined
// records; for area-based reach the caller materializes an area column
// beforehand. Mean/Std over an empty qualifying set yield Undefined.
//
// Complexity: O(N·(degree + rows)) for value modes, O(N·degree + rows)
// for Count.
func Reached(g *adjacency.Graph, leftIDs []int64, right *table.Table, column string, mode aggregate.Mode, opts ...Option) (aggregate.Series, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if right == nil {
		return nil, ErrNilTable
	}
	if g != nil && g.Len() != len(leftIDs) {
		return nil, ErrLengthMismatch
	}
	switch mode {
	case aggregate.Count, aggregate.Sum, aggregate.Mean, aggregate.Std:
	default:
		return nil, fmt.Errorf("%w: %d", aggregate.ErrUnknownMode, int(mode))
	}

	var counts map[int64]int
	if mode == aggregate.Count {
		counts = right.CountByKey()
	} else if !right.HasColumn(column) {
		return nil, fmt.Errorf("%w: %q", table.ErrColumnNotFound, column)
	}

	n := len(leftIDs)
	series := make(aggregate.Series, n)

	err = runUnits(o, n, func(i int) error {
		ids, rerr := reachedIDs(g, leftIDs, i)
		if rerr != nil {
			return rerr
		}
		if mode == aggregate.Count {
			total := 0
			for id := range ids {
				total += counts[id]
			}
			series[i] = aggregate.Defined(float64(total))
			return nil
		}
		vals, serr := right.Select(column, ids)
		if serr != nil {
			return serr
		}
		v, verr := aggregate.Reduce(mode, vals)
		if verr != nil {
			return verr
		}
		series[i] = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return series, nil
}

// reachedIDs resolves the external ids of element i's closed 1-hop
// neighborhood, or just its own id when no graph was supplied.
func reachedIDs(g *adjacency.Graph, leftIDs []int64, i int) (map[int64]struct{}, error) {
	ids := make(map[int64]struct{}, 4)
	if g == nil {
		ids[leftIDs[i]] = struct{}{}
		return ids, nil
	}
	hood, err := g.Neighborhood(i, true)
	if err != nil {
		return nil, err
	}
	hood.ForEach(func(u int) bool {
		ids[leftIDs[u]] = struct{}{}
		return true
	})
	return ids, nil
}
