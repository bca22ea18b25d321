package intensity

import (
	"fmt"

	"github.com/woodywonge/momepy/aggregate"
	"github.com/woodywonge/momepy/table"
)

// CoveredAreaRatio computes, per covered unit (e.g. a land plot), the
// ratio of covering object area to the unit's own area: the summed
// areaColumn of right records joined on the unit's id, over
// leftAreas[i].
//
// Units nothing joins to are Undefined: there is no covering object,
// which is not the same as a ratio of zero. A unit with zero own area
// fails with ErrZeroDenominator; the failure is joined into the returned
// error and the rest of the batch completes.
//
// Complexity: O(rows + units).
func CoveredAreaRatio(leftIDs []int64, leftAreas []float64, right *table.Table, areaColumn string, opts ...Option) (aggregate.Series, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if right == nil {
		return nil, ErrNilTable
	}
	if len(leftIDs) != len(leftAreas) {
		return nil, ErrLengthMismatch
	}

	covering, err := right.SumBy(areaColumn)
	if err != nil {
		return nil, err
	}

	n := len(leftIDs)
	series := make(aggregate.Series, n)
	unitErrs := make([]error, n)

	err = runUnits(o, n, func(i int) error {
		sum, ok := covering[leftIDs[i]]
		if !ok {
			series[i] = aggregate.Undefined()
			return nil
		}
		if leftAreas[i] == 0 {
			unitErrs[i] = fmt.Errorf("%w: unit %d has zero area", ErrZeroDenominator, i)
			return nil
		}
		series[i] = aggregate.Defined(sum / leftAreas[i])
		return nil
	})
	if err != nil {
		return nil, err
	}
	return series, joinUnitErrors(unitErrs)
}

// FloorAreaRatio computes, per covered unit, the ratio of covering
// object floor area to the unit's own area. Identical mechanics to
// CoveredAreaRatio with floorAreaColumn holding per-record floor areas.
func FloorAreaRatio(leftIDs []int64, leftAreas []float64, right *table.Table, floorAreaColumn string, opts ...Option) (aggregate.Series, error) {
	return CoveredAreaRatio(leftIDs, leftAreas, right, floorAreaColumn, opts...)
}
