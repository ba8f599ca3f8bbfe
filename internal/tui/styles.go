// Package tui provides the bubbletea + lipgloss terminal UI for the
// booking timeline grid.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/stayboard/stayboard/internal/booking"
)

// defaultAccentColor is the default accent color (teal).
const defaultAccentColor = "#2BB8A6"

// Color palette.
var (
	colorWhite  = lipgloss.Color("#FAFAFA")
	colorGray   = lipgloss.Color("#888888")
	colorDim    = lipgloss.Color("#444444")
	colorBlue   = lipgloss.Color("#5B9BD5")
	colorGreen  = lipgloss.Color("#6BCB77")
	colorYellow = lipgloss.Color("#FFD93D")
	colorRed    = lipgloss.Color("#FF6B6B")
)

// Styles used across the TUI. Accent-dependent styles (header bar, today
// column, focused borders) live on Theme and are computed from the
// configured accent color at creation.
var (
	footerStyle = lipgloss.NewStyle().
			Foreground(colorGray)

	loadingStyle = lipgloss.NewStyle().
			Foreground(colorYellow)
)

// StatusStyle returns the segment style for a booking status. Unrecognized
// statuses get a neutral gray rather than an error: a booking with a status
// this build has never heard of still renders.
func StatusStyle(s booking.Status) lipgloss.Style {
	switch s {
	case booking.StatusPaid:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#000000")).Background(colorGreen)
	case booking.StatusCheckedIn:
		return lipgloss.NewStyle().Foreground(colorWhite).Background(colorBlue)
	case booking.StatusCheckedOut:
		return lipgloss.NewStyle().Foreground(colorWhite).Background(colorGray)
	case booking.StatusPending:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#000000")).Background(colorYellow)
	case booking.StatusCancelled:
		return lipgloss.NewStyle().Foreground(colorWhite).Background(colorRed)
	default:
		return lipgloss.NewStyle().Foreground(colorWhite).Background(colorDim)
	}
}
