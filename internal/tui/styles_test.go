package tui

import (
	"testing"

	"github.com/stayboard/stayboard/internal/booking"
)

func TestStatusStyle_KnownStatuses(t *testing.T) {
	fallback := StatusStyle(booking.Status("no-such-status")).GetBackground()

	for _, s := range []booking.Status{
		booking.StatusPending,
		booking.StatusPaid,
		booking.StatusCheckedIn,
		booking.StatusCheckedOut,
		booking.StatusCancelled,
	} {
		t.Run(string(s), func(t *testing.T) {
			if StatusStyle(s).GetBackground() == fallback {
				t.Errorf("status %q should not use the fallback background", s)
			}
		})
	}
}

func TestStatusStyle_UnknownFallsBack(t *testing.T) {
	fallback := StatusStyle(booking.Status("no-such-status")).GetBackground()

	// Unrecognized statuses render with the neutral style instead of failing.
	for _, s := range []booking.Status{"", "bogus", "PAID", "confirmed"} {
		got := StatusStyle(s)
		if got.GetBackground() != fallback {
			t.Errorf("StatusStyle(%q) background = %v, want neutral fallback", s, got.GetBackground())
		}
		_ = got.Render("x") // must not panic
	}
}
