// Package intensity defines collaborator interfaces, sentinel errors,
// and functional options for the intensity operations.
package intensity

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for intensity operations.
var (
	// ErrNilGraph indicates a nil adjacency graph where one is required.
	ErrNilGraph = errors.New("intensity: adjacency graph is nil")

	// ErrNilGeometry indicates a nil geometry collaborator where weighting
	// or area lookups are required.
	ErrNilGeometry = errors.New("intensity: geometry collaborator is nil")

	// ErrNilDissolver indicates a nil dissolver collaborator.
	ErrNilDissolver = errors.New("intensity: dissolver collaborator is nil")

	// ErrNilTable indicates a nil secondary record table.
	ErrNilTable = errors.New("intensity: record table is nil")

	// ErrLengthMismatch indicates index-aligned inputs of differing lengths.
	ErrLengthMismatch = errors.New("intensity: input lengths do not match unit universe")

	// ErrUnsupportedGeometry indicates weighting was requested for a unit
	// whose geometry kind carries neither area nor length.
	ErrUnsupportedGeometry = errors.New("intensity: geometry kind does not support weighting")

	// ErrZeroDenominator indicates a weighting denominator of zero; the
	// result would be infinite and is refused instead.
	ErrZeroDenominator = errors.New("intensity: zero weighting denominator")

	// ErrDissolve indicates the geometry union of one connected component
	// failed; only that component's units are affected.
	ErrDissolve = errors.New("intensity: component dissolve failed")

	// ErrMissingDegrees indicates weighted node density was requested
	// without a degree column.
	ErrMissingDegrees = errors.New("intensity: weighted node density requires node degrees")

	// ErrOptionViolation indicates an invalid functional option.
	ErrOptionViolation = errors.New("intensity: invalid option supplied")
)

// Kind classifies a unit's geometry for weighting purposes.
type Kind int

const (
	// KindPolygon units weight by area.
	KindPolygon Kind = iota
	// KindLine units weight by length.
	KindLine
	// KindOther units cannot be weighted.
	KindOther
)

// Geometry exposes precomputed per-unit geometric scalars. Implementations
// live with the geometry/GIS collaborator; the engine never computes them.
type Geometry interface {
	// Area returns the unit's polygon area.
	Area(unit int) (float64, error)
	// Length returns the unit's line length.
	Length(unit int) (float64, error)
	// Kind returns the unit's geometry kind.
	Kind(unit int) (Kind, error)
}

// Dissolved is the result of a buffered union of one connected component.
type Dissolved interface {
	// InteriorRingCount returns the number of enclosed interior rings
	// (courtyards) of the unioned footprint.
	InteriorRingCount() int
}

// Dissolver unions the footprints of a connected component, buffering by
// a small positive tolerance first so footprints touching only at a
// corner do not fall apart into multi-part results. Each call may be
// slow; it is invoked exactly once per component.
type Dissolver interface {
	UnionWithBuffer(units []int, tolerance float64) (Dissolved, error)
}

// Edge is one street segment of a network edge table: its endpoint node
// indices and its geometric length.
type Edge struct {
	Start  int
	End    int
	Length float64
}

// DefaultTolerance is the buffer applied before a component union.
const DefaultTolerance = 0.01

// Options holds shared tunables for the intensity operations.
type Options struct {
	// Ctx allows cancellation between units.
	Ctx context.Context

	// Workers bounds the parallel unit map; 1 means synchronous.
	Workers int

	// Tolerance is the pre-union buffer distance for Courtyards.
	Tolerance float64

	// internal error recorded during option parsing
	err error
}

// Option configures an intensity operation via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation when
// the operation runs.
type Option func(*Options)

// DefaultOptions returns Options with a background context, a
// synchronous unit map, and DefaultTolerance.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Workers:   1,
		Tolerance: DefaultTolerance,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers runs the per-unit map on n goroutines. n must be >= 1.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be >= 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithTolerance sets the pre-union buffer distance. Must be positive.
func WithTolerance(t float64) Option {
	return func(o *Options) {
		if t <= 0 {
			o.err = fmt.Errorf("%w: Tolerance must be positive (%g)", ErrOptionViolation, t)
			return
		}
		o.Tolerance = t
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	return o, nil
}
