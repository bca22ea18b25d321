package table_test

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/woodywonge/momepy/table"
)

// TestCountByKey verifies grouped record counts, including repeated keys.
func TestCountByKey(t *testing.T) {
	tb := table.New([]int64{10, 10, 20})
	got := tb.CountByKey()
	want := map[int64]int{10: 2, 20: 1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CountByKey = %v; want %v", got, want)
	}
	if tb.Len() != 3 {
		t.Errorf("Len = %d; want 3", tb.Len())
	}
}

// TestCountIn verifies totals over a key set.
func TestCountIn(t *testing.T) {
	tb := table.New([]int64{10, 10, 20, 30})
	keys := map[int64]struct{}{10: {}, 20: {}}
	if got := tb.CountIn(keys); got != 3 {
		t.Errorf("CountIn = %d; want 3", got)
	}
	if got := tb.CountIn(map[int64]struct{}{}); got != 0 {
		t.Errorf("CountIn(empty) = %d; want 0", got)
	}
}

// TestColumns covers attachment rules and Select.
func TestColumns(t *testing.T) {
	tb := table.New([]int64{1, 2, 2})

	if err := tb.AddColumn("height", []float64{10, 20, 30}); err != nil {
		t.Fatalf("AddColumn failed: %v", err)
	}
	if err := tb.AddColumn("height", []float64{1, 2, 3}); !errors.Is(err, table.ErrColumnExists) {
		t.Errorf("duplicate column: want ErrColumnExists, got %v", err)
	}
	if err := tb.AddColumn("short", []float64{1}); !errors.Is(err, table.ErrColumnLength) {
		t.Errorf("short column: want ErrColumnLength, got %v", err)
	}
	if !tb.HasColumn("height") || tb.HasColumn("width") {
		t.Error("HasColumn misreports attachments")
	}

	vals, err := tb.Select("height", map[int64]struct{}{2: {}})
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if want := []float64{20, 30}; !reflect.DeepEqual(vals, want) {
		t.Errorf("Select = %v; want %v", vals, want)
	}

	if _, err := tb.Select("width", nil); !errors.Is(err, table.ErrColumnNotFound) {
		t.Errorf("missing column: want ErrColumnNotFound, got %v", err)
	}
}

// TestSumBy verifies per-key sums skip missing cells.
func TestSumBy(t *testing.T) {
	tb := table.New([]int64{1, 1, 2, 3})
	if err := tb.AddColumn("area", []float64{100, 50, math.NaN(), 7}); err != nil {
		t.Fatalf("AddColumn failed: %v", err)
	}

	sums, err := tb.SumBy("area")
	if err != nil {
		t.Fatalf("SumBy failed: %v", err)
	}
	// key 2 only had a missing cell and is absent entirely
	want := map[int64]float64{1: 150, 3: 7}
	if !reflect.DeepEqual(sums, want) {
		t.Errorf("SumBy = %v; want %v", sums, want)
	}

	if _, err := tb.SumBy("missing"); !errors.Is(err, table.ErrColumnNotFound) {
		t.Errorf("missing column: want ErrColumnNotFound, got %v", err)
	}
}
