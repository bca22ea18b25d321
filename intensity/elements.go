package intensity

import (
	"fmt"

	"github.com/woodywonge/momepy/aggregate"
)

// ElementsCount counts, for every aggregation unit (block, street
// segment, street node), the secondary records carrying that unit's id —
// e.g. buildings snapped to a street segment. With weighted=true the
// count is divided by the unit's area (polygons) or length (lines) to
// yield a relative value; geom may be nil when weighted=false.
//
// leftIDs holds the units' external ids in universe order; rightKeys
// holds one foreign key per secondary record. Units nothing joins to
// count 0.
//
// A unit whose geometry kind supports neither area nor length fails with
// ErrUnsupportedGeometry; a zero denominator fails with
// ErrZeroDenominator, never a silent infinity. Such failures leave the
// unit Undefined and come back joined in the returned error while the
// rest of the batch completes.
//
// Complexity: O(records + units).
func ElementsCount(leftIDs []int64, rightKeys []int64, weighted bool, geom Geometry, opts ...Option) (aggregate.Series, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if weighted && geom == nil {
		return nil, ErrNilGeometry
	}

	counts := make(map[int64]int, len(rightKeys))
	for _, k := range rightKeys {
		counts[k]++
	}

	n := len(leftIDs)
	series := make(aggregate.Series, n)
	unitErrs := make([]error, n)

	err = runUnits(o, n, func(i int) error {
		c := float64(counts[leftIDs[i]])
		if !weighted {
			series[i] = aggregate.Defined(c)
			return nil
		}
		denom, werr := weightDenominator(geom, i)
		if werr != nil {
			unitErrs[i] = werr
			return nil
		}
		series[i] = aggregate.Defined(c / denom)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return series, joinUnitErrors(unitErrs)
}

// weightDenominator resolves the weighting denominator for unit i from
// its geometry kind, refusing kinds without a measure and zero measures.
func weightDenominator(geom Geometry, i int) (float64, error) {
	kind, err := geom.Kind(i)
	if err != nil {
		return 0, fmt.Errorf("intensity: geometry kind of unit %d: %w", i, err)
	}
	var denom float64
	switch kind {
	case KindPolygon:
		denom, err = geom.Area(i)
	case KindLine:
		denom, err = geom.Length(i)
	default:
		return 0, fmt.Errorf("%w: unit %d", ErrUnsupportedGeometry, i)
	}
	if err != nil {
		return 0, fmt.Errorf("intensity: geometry measure of unit %d: %w", i, err)
	}
	if denom == 0 {
		return 0, fmt.Errorf("%w: unit %d", ErrZeroDenominator, i)
	}
	return denom, nil
}
