// Package booking defines the domain types shared by the timeline engine,
// the data sources, and the TUI.
package booking

import "time"

// Status classifies a booking for display. Unknown values are tolerated
// everywhere and only fall back to a neutral color.
type Status string

const (
	StatusPending    Status = "pending"
	StatusPaid       Status = "paid"
	StatusCheckedIn  Status = "checked_in"
	StatusCheckedOut Status = "checked_out"
	StatusCancelled  Status = "cancelled"
)

// Known reports whether s is one of the recognized statuses.
func (s Status) Known() bool {
	switch s {
	case StatusPending, StatusPaid, StatusCheckedIn, StatusCheckedOut, StatusCancelled:
		return true
	}
	return false
}

// Listing is a bookable resource row. Caller-supplied order is preserved;
// rows never reorder themselves.
type Listing struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Booking is one reservation span on one listing. Start and End are both
// inclusive instants; a same-day booking has Start == End (after day
// normalization). A booking whose ListingID matches no listing is simply
// not rendered.
type Booking struct {
	ID        string    `json:"id"`
	ListingID string    `json:"listingId"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Title     string    `json:"title"`
	Status    Status    `json:"status"`
	GuestName string    `json:"guestName,omitempty"`
}
