package timeline

import (
	"testing"
	"time"
)

func TestIsDateLoaded_FailOpen(t *testing.T) {
	start := day(2024, 1, 1)
	for i := 0; i < 1000; i++ {
		d := start.AddDate(0, 0, i)
		if !IsDateLoaded(nil, d) {
			t.Fatalf("nil range: day %v should be loaded", d)
		}
	}
}

func TestLoadedRange_BoundarySlack(t *testing.T) {
	r := &LoadedRange{Start: day(2024, 1, 10), End: day(2024, 1, 20)}

	tests := []struct {
		name string
		d    time.Time
		want bool
	}{
		{"inside", day(2024, 1, 15), true},
		{"start boundary", day(2024, 1, 10), true},
		{"end boundary", day(2024, 1, 20), true},
		{"one day before start", day(2024, 1, 9), true},
		{"one day after end", day(2024, 1, 21), true},
		{"two days before start", day(2024, 1, 8), false},
		{"two days after end", day(2024, 1, 22), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsDateLoaded(r, tt.d); got != tt.want {
				t.Errorf("IsDateLoaded(%v): got %v, want %v", tt.d, got, tt.want)
			}
		})
	}
}

func TestLoadedRange_NormalizesInstants(t *testing.T) {
	r := &LoadedRange{
		Start: time.Date(2024, 1, 10, 22, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 1, 20, 1, 0, 0, 0, time.UTC),
	}
	if !r.Contains(time.Date(2024, 1, 9, 5, 0, 0, 0, time.UTC)) {
		t.Error("boundary slack should survive non-midnight instants")
	}
}
