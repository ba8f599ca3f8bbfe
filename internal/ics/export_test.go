package ics

import (
	"strings"
	"testing"
	"time"

	"github.com/stayboard/stayboard/internal/booking"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestExport(t *testing.T) {
	listings := []booking.Listing{
		{ID: "L1", Name: "Garden Cabin"},
		{ID: "L2", Name: "River Loft"},
	}
	bookings := []booking.Booking{
		{ID: "b1", ListingID: "L1", Start: day(2024, 1, 3), End: day(2024, 1, 5), Title: "Mora", Status: booking.StatusPaid},
		{ID: "b2", ListingID: "L2", Start: day(2024, 2, 1), End: day(2024, 2, 1), Title: "Okafor", Status: booking.StatusCancelled},
		{ID: "orphan", ListingID: "LX", Start: day(2024, 1, 1), End: day(2024, 1, 2), Title: "nobody", Status: booking.StatusPaid},
		{ID: "corrupt", ListingID: "L1", Start: day(2024, 1, 9), End: day(2024, 1, 2), Title: "backwards", Status: booking.StatusPaid},
	}

	var buf strings.Builder
	if err := Export(&buf, listings, bookings); err != nil {
		t.Fatalf("Export: %v", err)
	}
	out := buf.String()

	if got := strings.Count(out, "BEGIN:VEVENT"); got != 2 {
		t.Errorf("VEVENT count: got %d, want 2 (orphan and corrupt bookings skipped)", got)
	}
	for _, want := range []string{
		"b1@stayboard",
		"Garden Cabin",
		"STATUS:CONFIRMED",
		"STATUS:CANCELLED",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Contains(out, "orphan@stayboard") {
		t.Error("booking with unknown listing must not be exported")
	}
}

func TestStatusFor_UnknownIsTentative(t *testing.T) {
	if got := statusFor(booking.Status("mystery")); got != "TENTATIVE" {
		t.Errorf("unknown status: got %q, want TENTATIVE", got)
	}
}
