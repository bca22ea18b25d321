package aggregate

import (
	"fmt"
	"math"
)

// Reduce applies mode to the record values of one neighborhood.
// NaN entries are missing record values: Count counts every record,
// Sum/Mean/Std skip NaN. An empty qualifying set yields Defined(0) for
// Count and Sum, and Undefined for Mean and Std.
// Complexity: O(len(vals)), single pass.
func Reduce(mode Mode, vals []float64) (Value, error) {
	switch mode {
	case Count:
		return Defined(float64(len(vals))), nil
	case Sum:
		var sum float64
		for _, v := range vals {
			if !math.IsNaN(v) {
				sum += v
			}
		}
		return Defined(sum), nil
	case Mean:
		mean, n := nanMean(vals)
		if n == 0 {
			return Undefined(), nil
		}
		return Defined(mean), nil
	case Std:
		mean, n := nanMean(vals)
		if n == 0 {
			return Undefined(), nil
		}
		var ss float64
		for _, v := range vals {
			if !math.IsNaN(v) {
				d := v - mean
				ss += d * d
			}
		}
		return Defined(math.Sqrt(ss / float64(n))), nil
	default:
		return Undefined(), fmt.Errorf("%w: %d", ErrUnknownMode, int(mode))
	}
}

// nanMean returns the mean of non-NaN values and how many there were.
func nanMean(vals []float64) (float64, int) {
	var sum float64
	n := 0
	for _, v := range vals {
		if !math.IsNaN(v) {
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0, 0
	}
	return sum / float64(n), n
}
