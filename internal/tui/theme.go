package tui

import "github.com/charmbracelet/lipgloss"

// Theme holds accent-color-derived styles. Non-accent styles (status
// colors, footer) are package-level in styles.go.
type Theme struct {
	headerBar   lipgloss.Style // header bar background
	todayColumn lipgloss.Style // "today" column tint
	weekend     lipgloss.Style // weekend column tint
	pendingCell lipgloss.Style // cells outside the loaded range
	cursor      lipgloss.Style // day cursor cell
	sidebarMark lipgloss.Style // selected listing marker
	monthLabel  lipgloss.Style // month-group label row
}

// NewTheme creates a Theme from a hex accent color string (e.g. "#2BB8A6").
// If accentColor is empty, the default accent color is used.
func NewTheme(accentColor string) Theme {
	color := defaultAccentColor
	if accentColor != "" {
		color = accentColor
	}
	c := lipgloss.Color(color)
	return Theme{
		headerBar: lipgloss.NewStyle().
			Background(c).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true),
		todayColumn: lipgloss.NewStyle().
			Foreground(c).
			Bold(true),
		weekend: lipgloss.NewStyle().
			Foreground(colorGray),
		pendingCell: lipgloss.NewStyle().
			Foreground(colorDim),
		cursor: lipgloss.NewStyle().
			Reverse(true),
		sidebarMark: lipgloss.NewStyle().
			Foreground(c).
			Bold(true),
		monthLabel: lipgloss.NewStyle().
			Foreground(colorWhite).
			Bold(true),
	}
}

// HeaderBarStyle returns the style for the top header bar.
func (t Theme) HeaderBarStyle() lipgloss.Style { return t.headerBar }

// TodayStyle returns the tint for the "today" column.
func (t Theme) TodayStyle() lipgloss.Style { return t.todayColumn }

// WeekendStyle returns the tint for weekend columns.
func (t Theme) WeekendStyle() lipgloss.Style { return t.weekend }

// PendingStyle returns the dimmed style for not-yet-loaded day cells.
func (t Theme) PendingStyle() lipgloss.Style { return t.pendingCell }

// CursorStyle returns the style for the day cursor.
func (t Theme) CursorStyle() lipgloss.Style { return t.cursor }
