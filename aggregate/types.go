package aggregate

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for aggregation.
var (
	// ErrUnknownMode indicates a Mode outside the defined enum.
	ErrUnknownMode = errors.New("aggregate: unknown mode")
)

// Mode selects the reduction applied to a neighborhood's record values.
type Mode int

const (
	// Count reduces to the number of qualifying records.
	Count Mode = iota
	// Sum reduces to the sum of non-missing record values.
	Sum
	// Mean reduces to the arithmetic mean of non-missing record values.
	Mean
	// Std reduces to the population standard deviation of non-missing
	// record values.
	Std
)

// String returns the lowercase mode name used in caller-facing configs.
func (m Mode) String() string {
	switch m {
	case Count:
		return "count"
	case Sum:
		return "sum"
	case Mean:
		return "mean"
	case Std:
		return "std"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ModeFromString parses a lowercase mode name into a Mode.
func ModeFromString(s string) (Mode, error) {
	switch s {
	case "count":
		return Count, nil
	case "sum":
		return Sum, nil
	case "mean":
		return Mean, nil
	case "std":
		return Std, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Value is an optional scalar. Valid=false signals an undefined
// aggregate (Mean/Std of an empty qualifying set) and must never be
// conflated with Defined(0).
type Value struct {
	Float64 float64
	Valid   bool
}

// Defined wraps f as a present Value.
func Defined(f float64) Value {
	return Value{Float64: f, Valid: true}
}

// Undefined returns the missing Value.
func Undefined() Value {
	return Value{}
}

// Series is an ordered sequence of per-unit results, index-aligned with
// the input unit universe. It is the only artifact returned to callers.
type Series []Value

// Float64s flattens the series to raw floats, substituting NaN for
// undefined entries so the missing marker survives the conversion.
func (s Series) Float64s() []float64 {
	out := make([]float64, len(s))
	for i, v := range s {
		if v.Valid {
			out[i] = v.Float64
		} else {
			out[i] = math.NaN()
		}
	}
	return out
}
