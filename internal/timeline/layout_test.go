package timeline

import (
	"testing"
	"time"

	"github.com/stayboard/stayboard/internal/booking"
)

const (
	testCellWidth = 4
	testGap       = 1
)

func seg(start, end time.Time) booking.Booking {
	return booking.Booking{ID: "b1", ListingID: "L1", Start: start, End: end, Status: booking.StatusPaid}
}

func TestPlace(t *testing.T) {
	w := Window{Start: day(2024, 1, 1), End: day(2024, 1, 10)} // 10 days

	tests := []struct {
		name         string
		b            booking.Booking
		wantOK       bool
		wantLeft     int
		wantWidth    int
		partialStart bool
		partialEnd   bool
	}{
		{
			name:      "fully inside",
			b:         seg(day(2024, 1, 3), day(2024, 1, 5)),
			wantOK:    true,
			wantLeft:  2 * testCellWidth,
			wantWidth: 3*testCellWidth - testGap,
		},
		{
			name:         "clipped left",
			b:            seg(day(2023, 12, 27), day(2024, 1, 3)), // starts 5 days before window
			wantOK:       true,
			wantLeft:     0,
			wantWidth:    3*testCellWidth - testGap, // exactly 3 visible days
			partialStart: true,
		},
		{
			name:       "clipped right",
			b:          seg(day(2024, 1, 8), day(2024, 1, 15)),
			wantOK:     true,
			wantLeft:   7 * testCellWidth,
			wantWidth:  3*testCellWidth - testGap,
			partialEnd: true,
		},
		{
			name:         "spans whole window",
			b:            seg(day(2023, 12, 1), day(2024, 2, 1)),
			wantOK:       true,
			wantLeft:     0,
			wantWidth:    10*testCellWidth - testGap,
			partialStart: true,
			partialEnd:   true,
		},
		{
			name:      "same-day booking",
			b:         seg(day(2024, 1, 4), day(2024, 1, 4)),
			wantOK:    true,
			wantLeft:  3 * testCellWidth,
			wantWidth: testCellWidth - testGap,
		},
		{
			name:   "entirely before window",
			b:      seg(day(2023, 12, 22), day(2023, 12, 27)),
			wantOK: false,
		},
		{
			name:   "entirely after window",
			b:      seg(day(2024, 1, 20), day(2024, 1, 25)),
			wantOK: false,
		},
		{
			name:   "end before start",
			b:      seg(day(2024, 1, 5), day(2024, 1, 2)),
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			box, ok := Place(tt.b, w, testCellWidth, testGap)
			if ok != tt.wantOK {
				t.Fatalf("ok: got %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if box.Left != tt.wantLeft {
				t.Errorf("Left: got %d, want %d", box.Left, tt.wantLeft)
			}
			if box.Width != tt.wantWidth {
				t.Errorf("Width: got %d, want %d", box.Width, tt.wantWidth)
			}
			if box.PartialStart != tt.partialStart {
				t.Errorf("PartialStart: got %v, want %v", box.PartialStart, tt.partialStart)
			}
			if box.PartialEnd != tt.partialEnd {
				t.Errorf("PartialEnd: got %v, want %v", box.PartialEnd, tt.partialEnd)
			}
		})
	}
}

func TestPlace_EndToEnd(t *testing.T) {
	// Window 2024-01-01..2024-01-10, one booking Jan 3–5: one segment at
	// left 2*cellWidth spanning 3 days, unclipped on both sides.
	w := Window{Start: day(2024, 1, 1), End: day(2024, 1, 10)}
	box, ok := Place(seg(day(2024, 1, 3), day(2024, 1, 5)), w, testCellWidth, testGap)
	if !ok {
		t.Fatal("expected segment to render")
	}
	if box.Left != 2*testCellWidth {
		t.Errorf("Left: got %d, want %d", box.Left, 2*testCellWidth)
	}
	if box.Width != 3*testCellWidth-testGap {
		t.Errorf("Width: got %d, want %d", box.Width, 3*testCellWidth-testGap)
	}
	if box.PartialStart || box.PartialEnd {
		t.Errorf("expected no clipping, got PartialStart=%v PartialEnd=%v", box.PartialStart, box.PartialEnd)
	}
}

func TestIsWeekend(t *testing.T) {
	if !IsWeekend(day(2024, 1, 6)) || !IsWeekend(day(2024, 1, 7)) {
		t.Error("Jan 6/7 2024 are a weekend")
	}
	if IsWeekend(day(2024, 1, 8)) {
		t.Error("Jan 8 2024 is a Monday")
	}
}
