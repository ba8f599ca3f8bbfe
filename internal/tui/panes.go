package tui

// pane is the scroll-offset handle for one viewport. The synchronizer
// holds all three as timeline.Viewport; the renderers read the offsets
// each frame. It queries and sets offsets only; it owns no content.
type pane struct {
	x, y     int
	contentW int
	clientW  int
}

func (p *pane) OffsetX() int      { return p.x }
func (p *pane) SetOffsetX(x int)  { p.x = x }
func (p *pane) OffsetY() int      { return p.y }
func (p *pane) SetOffsetY(y int)  { p.y = y }
func (p *pane) ContentWidth() int { return p.contentW }
func (p *pane) ClientWidth() int  { return p.clientW }

// clampX keeps the horizontal offset inside the scrollable range.
func (p *pane) clampX() {
	limit := p.contentW - p.clientW
	if limit < 0 {
		limit = 0
	}
	if p.x > limit {
		p.x = limit
	}
	if p.x < 0 {
		p.x = 0
	}
}
