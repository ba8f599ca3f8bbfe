// Package ics exports the booking data as an iCalendar document, one
// all-day VEVENT per booking, so a timeline can be overlaid on any
// external calendar client.
package ics

import (
	"fmt"
	"io"
	"strings"

	ical "github.com/arran4/golang-ical"

	"github.com/stayboard/stayboard/internal/booking"
	"github.com/stayboard/stayboard/internal/timeline"
)

// prodID identifies the generator in exported calendars.
const prodID = "-//stayboard//booking timeline//EN"

// Export writes listings and bookings to w as an iCalendar document.
// Bookings referencing an unknown listing are skipped, matching the grid's
// rendering rule; bookings with end before start are skipped as corrupt.
func Export(w io.Writer, listings []booking.Listing, bookings []booking.Booking) error {
	byID := make(map[string]booking.Listing, len(listings))
	for _, l := range listings {
		byID[l.ID] = l
	}

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(prodID)

	for _, b := range bookings {
		listing, ok := byID[b.ListingID]
		if !ok {
			continue
		}
		if timeline.DiffDays(b.Start, b.End) < 0 {
			continue
		}

		ev := cal.AddEvent(fmt.Sprintf("%s@stayboard", b.ID))
		ev.SetSummary(summaryFor(b, listing))
		// All-day span: DTSTART on the first day, DTEND on the day after the
		// last (iCalendar DTEND is exclusive).
		ev.SetAllDayStartAt(timeline.StartOfDay(b.Start))
		ev.SetAllDayEndAt(timeline.StartOfDay(b.End).AddDate(0, 0, 1))
		ev.SetLocation(listing.Name)
		ev.SetProperty(ical.ComponentPropertyStatus, statusFor(b.Status))
	}

	return cal.SerializeTo(w)
}

// summaryFor builds the event title: listing, booking title, guest.
func summaryFor(b booking.Booking, l booking.Listing) string {
	parts := []string{l.Name}
	if b.Title != "" {
		parts = append(parts, b.Title)
	}
	if b.GuestName != "" && b.GuestName != b.Title {
		parts = append(parts, b.GuestName)
	}
	return strings.Join(parts, " - ")
}

// statusFor maps a booking status onto the closest iCalendar STATUS value.
// Unknown statuses export as TENTATIVE rather than being dropped.
func statusFor(s booking.Status) string {
	switch s {
	case booking.StatusPaid, booking.StatusCheckedIn, booking.StatusCheckedOut:
		return "CONFIRMED"
	case booking.StatusCancelled:
		return "CANCELLED"
	default:
		return "TENTATIVE"
	}
}
