package tui

import (
	"github.com/stayboard/stayboard/internal/booking"
	"github.com/stayboard/stayboard/internal/timeline"
)

// dataLoadedMsg carries the result of a range fetch from the provider.
type dataLoadedMsg struct {
	listings []booking.Listing
	bookings []booking.Booking
	covered  *timeline.LoadedRange
}

// dataErrMsg carries a provider failure; shown in the footer, never fatal.
type dataErrMsg struct{ err error }

// releaseSyncMsg returns the scroll synchronizer to Idle. Scheduled as a
// command immediately after a sync write, so it is processed on the next
// pass of the event loop, the one-frame deferral that breaks the
// re-entrant write cycle.
type releaseSyncMsg struct{}
