package aggregate_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/woodywonge/momepy/aggregate"
)

// TestReduce_Count verifies that Count counts records, including ones
// whose value is missing.
func TestReduce_Count(t *testing.T) {
	v, err := aggregate.Reduce(aggregate.Count, []float64{1, math.NaN(), 3})
	assert.NoError(t, err)
	assert.Equal(t, aggregate.Defined(3), v, "NaN-valued records still count")

	v, err = aggregate.Reduce(aggregate.Count, nil)
	assert.NoError(t, err)
	assert.Equal(t, aggregate.Defined(0), v, "empty set counts zero")
}

// TestReduce_Sum verifies NaN skipping and the zero default for empty sets.
func TestReduce_Sum(t *testing.T) {
	v, err := aggregate.Reduce(aggregate.Sum, []float64{1, 2, math.NaN(), 4})
	assert.NoError(t, err)
	assert.Equal(t, aggregate.Defined(7), v)

	v, err = aggregate.Reduce(aggregate.Sum, nil)
	assert.NoError(t, err)
	assert.Equal(t, aggregate.Defined(0), v, "empty Sum is a legitimate zero, not Undefined")
}

// TestReduce_Mean verifies the arithmetic mean over non-missing values
// and the Undefined result for an empty qualifying set.
func TestReduce_Mean(t *testing.T) {
	v, err := aggregate.Reduce(aggregate.Mean, []float64{2, math.NaN(), 4})
	assert.NoError(t, err)
	assert.True(t, v.Valid)
	assert.InDelta(t, 3.0, v.Float64, 1e-12)

	v, err = aggregate.Reduce(aggregate.Mean, []float64{math.NaN(), math.NaN()})
	assert.NoError(t, err)
	assert.False(t, v.Valid, "all-missing Mean must be Undefined, not zero")

	v, err = aggregate.Reduce(aggregate.Mean, nil)
	assert.NoError(t, err)
	assert.False(t, v.Valid, "empty Mean must be Undefined, not zero")
}

// TestReduce_Std verifies the population standard deviation.
func TestReduce_Std(t *testing.T) {
	// mean 2.5, population variance 1.25
	v, err := aggregate.Reduce(aggregate.Std, []float64{1, 2, 3, 4})
	assert.NoError(t, err)
	assert.True(t, v.Valid)
	assert.InDelta(t, math.Sqrt(1.25), v.Float64, 1e-12)

	// single value has zero spread
	v, err = aggregate.Reduce(aggregate.Std, []float64{5})
	assert.NoError(t, err)
	assert.Equal(t, aggregate.Defined(0), v)

	v, err = aggregate.Reduce(aggregate.Std, nil)
	assert.NoError(t, err)
	assert.False(t, v.Valid, "empty Std must be Undefined")
}

// TestReduce_UnknownMode ensures out-of-range modes error.
func TestReduce_UnknownMode(t *testing.T) {
	_, err := aggregate.Reduce(aggregate.Mode(42), []float64{1})
	assert.ErrorIs(t, err, aggregate.ErrUnknownMode)
}

// TestModeRoundTrip covers String and ModeFromString.
func TestModeRoundTrip(t *testing.T) {
	for _, m := range []aggregate.Mode{aggregate.Count, aggregate.Sum, aggregate.Mean, aggregate.Std} {
		parsed, err := aggregate.ModeFromString(m.String())
		assert.NoError(t, err)
		assert.Equal(t, m, parsed)
	}
	_, err := aggregate.ModeFromString("median")
	assert.ErrorIs(t, err, aggregate.ErrUnknownMode)
}

// TestSeries_Float64s ensures undefined entries survive flattening as NaN.
func TestSeries_Float64s(t *testing.T) {
	s := aggregate.Series{aggregate.Defined(1.5), aggregate.Undefined(), aggregate.Defined(0)}
	out := s.Float64s()
	assert.Len(t, out, 3)
	assert.Equal(t, 1.5, out[0])
	assert.True(t, math.IsNaN(out[1]), "Undefined must flatten to NaN")
	assert.Equal(t, 0.0, out[2])
}
