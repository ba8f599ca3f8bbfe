// Package source supplies listings and bookings to the timeline. The engine
// only declares what date range it needs; a Provider owns the actual data.
// Fetch deduplication lives here too: the engine may request overlapping
// ranges and expects its host to filter them.
package source

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/stayboard/stayboard/internal/booking"
	"github.com/stayboard/stayboard/internal/timeline"
)

// Provider hands out listings and the bookings overlapping a date range.
type Provider interface {
	Listings() ([]booking.Listing, error)
	// Bookings returns every booking overlapping [from, to], inclusive at
	// day granularity.
	Bookings(from, to time.Time) ([]booking.Booking, error)
}

// document is the on-disk JSON shape of a booking data file.
type document struct {
	Listings []booking.Listing `json:"listings"`
	Bookings []booking.Booking `json:"bookings"`
}

// FileSource is a Provider backed by a single JSON document on disk. The
// file is read once at construction; Bookings filters in memory.
type FileSource struct {
	listings []booking.Listing
	bookings []booking.Booking
}

// NewFileSource loads path and validates the document. Bookings with
// end < start are dropped here rather than surfaced as errors: the grid
// promises to never render a corrupt segment, and a data file should not
// take the whole TUI down over one bad row.
func NewFileSource(path string) (*FileSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("source: read %q: %w", path, err)
	}
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("source: decode %q: %w", path, err)
	}

	kept := doc.Bookings[:0]
	for _, b := range doc.Bookings {
		if timeline.DiffDays(b.Start, b.End) < 0 {
			continue
		}
		kept = append(kept, b)
	}
	sort.SliceStable(kept, func(i, j int) bool { return kept[i].Start.Before(kept[j].Start) })

	return &FileSource{listings: doc.Listings, bookings: kept}, nil
}

// Listings returns the listings in file order.
func (s *FileSource) Listings() ([]booking.Listing, error) {
	out := make([]booking.Listing, len(s.listings))
	copy(out, s.listings)
	return out, nil
}

// Bookings returns the bookings overlapping [from, to] at day granularity.
func (s *FileSource) Bookings(from, to time.Time) ([]booking.Booking, error) {
	var out []booking.Booking
	for _, b := range s.bookings {
		if timeline.DiffDays(b.End, from) > 0 || timeline.DiffDays(to, b.Start) > 0 {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}
