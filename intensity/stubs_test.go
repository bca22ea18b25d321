package intensity_test

import (
	"errors"
	"sync"

	"github.com/woodywonge/momepy/intensity"
)

// stubGeometry serves precomputed per-unit scalars the way the external
// GIS collaborator would.
type stubGeometry struct {
	kinds   []intensity.Kind
	areas   []float64
	lengths []float64
}

func (s *stubGeometry) Area(unit int) (float64, error)        { return s.areas[unit], nil }
func (s *stubGeometry) Length(unit int) (float64, error)      { return s.lengths[unit], nil }
func (s *stubGeometry) Kind(unit int) (intensity.Kind, error) { return s.kinds[unit], nil }

// polygons builds a stubGeometry of uniform polygon units.
func polygons(areas ...float64) *stubGeometry {
	kinds := make([]intensity.Kind, len(areas))
	return &stubGeometry{kinds: kinds, areas: areas, lengths: make([]float64, len(areas))}
}

var errBadFootprint = errors.New("degenerate footprint")

// stubDissolved carries a fixed interior ring count.
type stubDissolved int

func (d stubDissolved) InteriorRingCount() int { return int(d) }

// stubDissolver records every union call and serves per-component ring
// counts keyed by the component's smallest unit. Components listed in
// fail refuse to dissolve.
type stubDissolver struct {
	mu    sync.Mutex
	rings map[int]int
	fail  map[int]bool
	calls [][]int
	tols  []float64
}

func (d *stubDissolver) UnionWithBuffer(units []int, tolerance float64) (intensity.Dissolved, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls = append(d.calls, append([]int(nil), units...))
	d.tols = append(d.tols, tolerance)

	lead := units[0]
	for _, u := range units {
		if u < lead {
			lead = u
		}
	}
	if d.fail[lead] {
		return nil, errBadFootprint
	}
	return stubDissolved(d.rings[lead]), nil
}
