package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/stayboard/stayboard/internal/booking"
	"github.com/stayboard/stayboard/internal/config"
	"github.com/stayboard/stayboard/internal/source"
	"github.com/stayboard/stayboard/internal/timeline"
	"github.com/stayboard/stayboard/internal/tui/panels"
)

// todayAutoScrollCells is how many cells from the viewport's left edge
// "today" lands after the initial auto-scroll.
const todayAutoScrollCells = 3

// Model is the root bubbletea model for the booking timeline.
type Model struct {
	// Data
	provider source.Provider
	dedup    *source.Dedup
	listings []booking.Listing
	bookings []booking.Booking
	loaded   *timeline.LoadedRange
	loading  bool
	dataErr  error

	// Window and geometry
	window    timeline.Window
	cellWidth int
	gap       int
	today     time.Time

	// Scroll state: one handle per pane, one synchronizer over all three
	header *pane
	side   *pane
	body   *pane
	sync   *timeline.Synchronizer

	// Cursor
	cursorRow int
	cursorDay int

	// Focus: grid (default) or the date strip
	stripFocused bool

	// Overlay
	detail panels.DetailPanel

	// Rendering
	theme   Theme
	palette panels.Palette
	layout  Layout
	width   int
	height  int

	autoScrolled bool
}

// New creates the timeline model. now anchors "today" and the initial
// window; cfg supplies geometry and growth parameters.
func New(provider source.Provider, cfg config.Config, now time.Time) Model {
	th := NewTheme(cfg.TUI.AccentColor)
	header := &pane{}
	side := &pane{}
	body := &pane{}

	window := timeline.New(now, cfg.Timeline.DaysBefore, cfg.Timeline.DaysAfter)

	m := Model{
		provider:  provider,
		dedup:     source.NewDedup(),
		window:    window,
		cellWidth: cfg.Timeline.CellWidth,
		gap:       cfg.Timeline.SegmentGap,
		today:     timeline.StartOfDay(now),
		header:    header,
		side:      side,
		body:      body,
		sync: timeline.NewSynchronizer(header, side, body,
			cfg.Timeline.EdgeThreshold*cfg.Timeline.CellWidth, cfg.Timeline.ExtendDays),
		cursorRow: 0,
		cursorDay: timeline.DiffDays(window.Start, now),
		theme:     th,
		detail:    panels.NewDetailPanel(40, 10),
		layout:    Calculate(80, 24),
		width:     80,
		height:    24,
	}
	m.palette = buildPalette(th)
	m.resizeContent()
	return m
}

// buildPalette assembles the shared cell-style palette from the theme and
// the status color table.
func buildPalette(th Theme) panels.Palette {
	segments := map[string]lipgloss.Style{
		"pending":     StatusStyle(booking.StatusPending),
		"paid":        StatusStyle(booking.StatusPaid),
		"checked_in":  StatusStyle(booking.StatusCheckedIn),
		"checked_out": StatusStyle(booking.StatusCheckedOut),
		"cancelled":   StatusStyle(booking.StatusCancelled),
	}
	return panels.NewPalette(
		lipgloss.NewStyle(),
		th.WeekendStyle(),
		th.TodayStyle(),
		th.PendingStyle(),
		th.monthLabel,
		th.CursorStyle(),
		segments,
		StatusStyle(booking.Status("unknown")),
	)
}

// Init fetches the initial data for the starting window.
func (m Model) Init() tea.Cmd {
	m.dedup.ShouldFetch(m.window.Start, m.window.End)
	covered := *m.dedup.Covered()
	return fetchCmd(m.provider, m.window.Start, m.window.End, covered)
}

// fetchCmd loads listings and the bookings overlapping [from, to]. The
// engine treats it as fire-and-forget; results come back as one message.
// covered is copied at scheduling time so the command goroutine never
// touches the dedup tracker.
func fetchCmd(p source.Provider, from, to time.Time, covered timeline.LoadedRange) tea.Cmd {
	return func() tea.Msg {
		listings, err := p.Listings()
		if err != nil {
			return dataErrMsg{err: err}
		}
		bookings, err := p.Bookings(from, to)
		if err != nil {
			return dataErrMsg{err: err}
		}
		return dataLoadedMsg{listings: listings, bookings: bookings, covered: &covered}
	}
}

// Update handles all incoming bubbletea messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case dataLoadedMsg:
		m.listings = msg.listings
		m.bookings = msg.bookings
		m.loaded = msg.covered
		m.loading = false
		m.dataErr = nil
		m.clampCursor()
		return m, nil
	case dataErrMsg:
		m.dataErr = msg.err
		m.loading = false
		// The scheduled fetch never delivered, so its range is not covered
		// after all; the next scroll into it retries.
		m.dedup.Rollback(m.loaded)
		return m, nil
	case releaseSyncMsg:
		m.sync.Release()
		return m, nil
	case panels.BookingSelectedMsg:
		return m.handleBookingSelected(msg)
	}
	return m, nil
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.layout = Calculate(msg.Width, msg.Height)
	if m.layout.TooSmall {
		return m, nil
	}
	m.resizeContent()
	m.detail = m.detail.SetSize(m.layout.Grid.Width-4, m.layout.Grid.Height-2)

	if !m.autoScrolled {
		m.autoScrolled = true
		m.scrollToToday()
	}
	return m, nil
}

// resizeContent refreshes the panes' content and client extents after any
// window growth or terminal resize. Content width is the full day axis.
func (m *Model) resizeContent() {
	contentW := m.window.TotalDays() * m.cellWidth
	m.header.contentW = contentW
	m.body.contentW = contentW
	m.header.clientW = m.layout.DateStrip.Width
	m.body.clientW = m.layout.Grid.Width
	m.body.clampX()
	m.header.clampX()
}

// scrollToToday positions the body so today sits a few cells inside the
// left edge, when today is within the window.
func (m *Model) scrollToToday() {
	if !m.window.Contains(m.today) {
		return
	}
	idx := timeline.DiffDays(m.window.Start, m.today)
	m.body.x = (idx - todayAutoScrollCells) * m.cellWidth
	m.body.clampX()
	m.header.x = m.body.x
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.detail.IsOpen() {
		switch msg.String() {
		case "esc", "q", "enter":
			m.detail = m.detail.Close()
			return m, nil
		}
		var cmd tea.Cmd
		m.detail, cmd = m.detail.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "tab":
		m.stripFocused = !m.stripFocused
		return m, nil
	case "t":
		m.scrollToToday()
		m.cursorDay = timeline.DiffDays(m.window.Start, m.today)
		return m.afterBodyScroll()
	case "enter":
		if b, ok := panels.BookingAt(m.listings, m.bookings, m.window, m.cursorRow, m.cursorDay); ok {
			return m, func() tea.Msg { return panels.BookingSelectedMsg{ID: b.ID} }
		}
		return m, nil
	}

	if m.stripFocused {
		return m.handleStripKey(msg)
	}
	return m.handleGridKey(msg)
}

// handleStripKey scrolls the date strip; the synchronizer mirrors the
// offset onto the body (header → body direction of the bidirectional
// channel).
func (m Model) handleStripKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "h":
		m.header.x -= m.cellWidth
		m.header.clampX()
	case "right", "l":
		m.header.x += m.cellWidth
		m.header.clampX()
	default:
		return m, nil
	}
	m.sync.HorizontalScroll(timeline.PaneHeader)
	w := m.sync.CheckEdges(m.window)
	cmd := m.applyWindow(w)
	return m, tea.Batch(releaseSync, cmd)
}

// handleGridKey moves the day cursor; the body scrolls as needed to keep
// the cursor visible, and every body scroll runs sync plus edge detection.
func (m Model) handleGridKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "h":
		m.cursorDay--
	case "right", "l":
		m.cursorDay++
	case "up", "k":
		m.cursorRow--
	case "down", "j":
		m.cursorRow++
	case "pgup", "ctrl+u":
		m.cursorRow -= m.layout.Grid.Height
	case "pgdown", "ctrl+d":
		m.cursorRow += m.layout.Grid.Height
	default:
		return m, nil
	}
	m.clampCursor()
	m.ensureCursorVisible()
	return m.afterBodyScroll()
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.detail.IsOpen() {
		var cmd tea.Cmd
		m.detail, cmd = m.detail.Update(msg)
		return m, cmd
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.body.y = max(0, m.body.y-1)
	case tea.MouseButtonWheelDown:
		m.body.y = min(m.maxYOffset(), m.body.y+1)
	case tea.MouseButtonWheelLeft:
		m.body.x -= m.cellWidth
		m.body.clampX()
	case tea.MouseButtonWheelRight:
		m.body.x += m.cellWidth
		m.body.clampX()
	default:
		return m, nil
	}
	return m.afterBodyScroll()
}

// afterBodyScroll is the per-event scroll pipeline: mirror offsets onto the
// header and sidebar, check edge proximity, grow the window, and kick off a
// fetch when the grown range is not yet covered.
func (m Model) afterBodyScroll() (tea.Model, tea.Cmd) {
	w := m.sync.BodyScrolled(m.window)
	cmd := m.applyWindow(w)
	return m, tea.Batch(releaseSync, cmd)
}

// applyWindow installs an extended window. Backward growth prepends days,
// which shifts every day index; the scroll offsets and cursor move by the
// same amount so the user keeps looking at the same days.
func (m *Model) applyWindow(w timeline.Window) tea.Cmd {
	if w == m.window {
		return nil
	}
	shift := timeline.DiffDays(w.Start, m.window.Start)
	if shift > 0 {
		m.body.x += shift * m.cellWidth
		m.header.x = m.body.x
		m.cursorDay += shift
	}
	m.window = w
	m.resizeContent()

	if !m.dedup.ShouldFetch(w.Start, w.End) {
		return nil
	}
	m.loading = true
	covered := *m.dedup.Covered()
	return fetchCmd(m.provider, w.Start, w.End, covered)
}

// releaseSync schedules the synchronizer's return to Idle on the next pass
// of the event loop.
func releaseSync() tea.Msg { return releaseSyncMsg{} }

func (m *Model) clampCursor() {
	if m.cursorRow < 0 {
		m.cursorRow = 0
	}
	if n := len(m.listings); n > 0 && m.cursorRow >= n {
		m.cursorRow = n - 1
	}
	if m.cursorDay < 0 {
		m.cursorDay = 0
	}
	if last := m.window.TotalDays() - 1; m.cursorDay > last {
		m.cursorDay = last
	}
}

// ensureCursorVisible scrolls the body the minimal distance that brings the
// cursor cell fully into view on both axes.
func (m *Model) ensureCursorVisible() {
	left := m.cursorDay * m.cellWidth
	right := left + m.cellWidth
	if left < m.body.x {
		m.body.x = left
	}
	if right > m.body.x+m.body.clientW {
		m.body.x = right - m.body.clientW
	}
	m.body.clampX()

	if m.cursorRow < m.body.y {
		m.body.y = m.cursorRow
	}
	if m.cursorRow >= m.body.y+m.layout.Grid.Height {
		m.body.y = m.cursorRow - m.layout.Grid.Height + 1
	}
}

func (m Model) maxYOffset() int {
	n := len(m.listings) - m.layout.Grid.Height
	if n < 0 {
		return 0
	}
	return n
}

func (m Model) handleBookingSelected(msg panels.BookingSelectedMsg) (tea.Model, tea.Cmd) {
	for _, b := range m.bookings {
		if b.ID != msg.ID {
			continue
		}
		var listing booking.Listing
		for _, l := range m.listings {
			if l.ID == b.ListingID {
				listing = l
				break
			}
		}
		m.detail = m.detail.Open(b, listing)
		return m, nil
	}
	return m, nil
}

// View renders the full timeline: header bar, date strip, sidebar + grid,
// footer. The detail overlay replaces the grid area while open.
func (m Model) View() string {
	if m.layout.TooSmall {
		msg := fmt.Sprintf("Terminal too small (%dx%d).\nPlease resize to at least 60x16.", m.width, m.height)
		return lipgloss.NewStyle().
			Width(m.width).
			Align(lipgloss.Center).
			Render(msg)
	}

	header := m.theme.HeaderBarStyle().Width(m.width).Render(
		fmt.Sprintf(" stayboard  │  %d listings  │  %d bookings", len(m.listings), len(m.bookings)))

	strip := panels.RenderDateStrip(panels.DateStripProps{
		Window:    m.window,
		Loaded:    m.loaded,
		Today:     m.today,
		CellWidth: m.cellWidth,
		XOffset:   m.header.x,
		Width:     m.layout.DateStrip.Width,
		Palette:   m.palette,
	})
	stripGutter := lipgloss.NewStyle().Width(m.layout.Sidebar.Width).Render("")

	sidebar := panels.RenderSidebar(panels.SidebarProps{
		Listings:  m.listings,
		YOffset:   m.side.y,
		Width:     m.layout.Sidebar.Width,
		Height:    m.layout.Sidebar.Height,
		CursorRow: m.cursorRow,
		NameStyle: lipgloss.NewStyle(),
		MarkStyle: m.theme.sidebarMark,
		EmptyText: "No listings",
	})

	var gridView string
	if m.detail.IsOpen() {
		gridView = lipgloss.NewStyle().
			Width(m.layout.Grid.Width).
			Height(m.layout.Grid.Height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(m.detail.View())
	} else {
		gridView = panels.RenderGrid(panels.GridProps{
			Listings:  m.listings,
			Bookings:  m.bookings,
			Window:    m.window,
			Loaded:    m.loaded,
			Today:     m.today,
			CellWidth: m.cellWidth,
			Gap:       m.gap,
			XOffset:   m.body.x,
			YOffset:   m.body.y,
			Width:     m.layout.Grid.Width,
			Height:    m.layout.Grid.Height,
			CursorRow: m.cursorRow,
			CursorDay: m.cursorDay,
			Palette:   m.palette,
			EmptyText: "No listings to display",
		})
	}

	footer := panels.RenderFooter(panels.FooterProps{
		Window:       m.window,
		Loading:      m.loading,
		DetailOpen:   m.detail.IsOpen(),
		StripFocused: m.stripFocused,
		Err:          m.dataErr,
		Style:        footerStyle,
		LoadingStyle: loadingStyle,
		Width:        m.layout.Footer.Width,
	})

	stripRows := lipgloss.JoinHorizontal(lipgloss.Top, stripGutter, strip)
	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, gridView)
	return lipgloss.JoinVertical(lipgloss.Left, header, stripRows, body, footer)
}
