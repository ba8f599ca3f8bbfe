package timeline

// Viewport is a non-owning handle to one independently scrollable pane.
// The synchronizer only reads and writes offsets through it; it never owns
// the pane's content.
type Viewport interface {
	// OffsetX returns the horizontal scroll offset in cell-width units.
	OffsetX() int
	// SetOffsetX writes the horizontal scroll offset.
	SetOffsetX(x int)
	// OffsetY returns the vertical scroll offset in rows.
	OffsetY() int
	// SetOffsetY writes the vertical scroll offset.
	SetOffsetY(y int)
	// ContentWidth returns the full scrollable width.
	ContentWidth() int
	// ClientWidth returns the visible width.
	ClientWidth() int
}

// syncState is the re-entrancy guard state of the Synchronizer.
type syncState int

const (
	syncIdle syncState = iota
	syncSyncing
)

// Pane identifies the source of a horizontal scroll event.
type Pane int

const (
	PaneHeader Pane = iota
	PaneBody
)

// Synchronizer keeps the header and body horizontal offsets and the sidebar
// and body vertical offsets numerically equal, and detects proximity to the
// body's horizontal edges to grow the window.
//
// One instance owns handles to all three panes and a single guard flag.
// Writing pane B's offset fires pane B's own scroll event, which would
// otherwise write back to pane A forever; while Syncing, incoming sync
// requests are dropped. The caller must call Release on the next frame to
// return to Idle; only the return to Idle is deferred, never the
// synchronization write itself.
type Synchronizer struct {
	header  Viewport
	sidebar Viewport
	body    Viewport

	state syncState

	// EdgeThreshold is the horizontal distance from a scroll boundary, in
	// cell-width units, within which the window is extended. ExtendDays is
	// the fixed chunk each extension adds.
	EdgeThreshold int
	ExtendDays    int

	// OnRangeChange fires after every window extension, with the new bounds.
	// Fire-and-forget: the synchronizer does not await, retry, or track the
	// host's fetch. Deduplication of redundant requests is the host's
	// contract.
	OnRangeChange func(w Window)
}

// NewSynchronizer wires a synchronizer to the three pane handles.
func NewSynchronizer(header, sidebar, body Viewport, edgeThreshold, extendDays int) *Synchronizer {
	return &Synchronizer{
		header:        header,
		sidebar:       sidebar,
		body:          body,
		EdgeThreshold: edgeThreshold,
		ExtendDays:    extendDays,
	}
}

// Syncing reports whether the guard is currently held.
func (s *Synchronizer) Syncing() bool { return s.state == syncSyncing }

// HorizontalScroll handles a horizontal scroll event originating on source,
// mirroring its offset onto the counterpart pane. While the guard is held
// the event is the echo of our own write and is dropped.
func (s *Synchronizer) HorizontalScroll(source Pane) {
	if s.state == syncSyncing {
		return
	}
	s.state = syncSyncing
	switch source {
	case PaneHeader:
		s.body.SetOffsetX(s.header.OffsetX())
	case PaneBody:
		s.header.SetOffsetX(s.body.OffsetX())
	}
}

// VerticalScroll mirrors the body's vertical offset onto the sidebar. The
// body is the sole source of truth on this axis; the sidebar has no
// independent vertical scroll affordance, so no guard is needed.
func (s *Synchronizer) VerticalScroll() {
	s.sidebar.SetOffsetY(s.body.OffsetY())
}

// Release returns the guard to Idle. Callers invoke it one frame after the
// sync write, which is the sole suspension point in the engine.
func (s *Synchronizer) Release() {
	s.state = syncIdle
}

// BodyScrolled processes a body scroll event end to end: horizontal and
// vertical sync plus edge detection against the current window. It returns
// the (possibly extended) window. Both edges may extend within one event
// after a very large jump; that is intentional. Repeated events inside the
// threshold re-extend every time; at worst the host sees redundant range
// requests, which it deduplicates.
func (s *Synchronizer) BodyScrolled(w Window) Window {
	s.HorizontalScroll(PaneBody)
	s.VerticalScroll()
	return s.CheckEdges(w)
}

// CheckEdges extends w when the body's horizontal offset is within
// EdgeThreshold of either content boundary, firing OnRangeChange for each
// extension.
func (s *Synchronizer) CheckEdges(w Window) Window {
	x := s.body.OffsetX()

	if x < s.EdgeThreshold {
		w = w.ExtendBackward(s.ExtendDays)
		if s.OnRangeChange != nil {
			s.OnRangeChange(w)
		}
	}
	if s.body.ContentWidth()-x-s.body.ClientWidth() < s.EdgeThreshold {
		w = w.ExtendForward(s.ExtendDays)
		if s.OnRangeChange != nil {
			s.OnRangeChange(w)
		}
	}
	return w
}
