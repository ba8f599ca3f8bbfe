package panels

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/stayboard/stayboard/internal/timeline"
)

func testFooterProps() FooterProps {
	return FooterProps{
		Window:       timeline.New(day(2025, time.March, 15), 5, 4),
		Style:        lipgloss.NewStyle(),
		LoadingStyle: lipgloss.NewStyle(),
		Width:        100,
	}
}

func TestRenderFooter_RangeLabel(t *testing.T) {
	out := RenderFooter(testFooterProps())
	if !strings.Contains(out, "Mar 10 2025") || !strings.Contains(out, "Mar 19 2025") {
		t.Errorf("footer should show the window range: %q", out)
	}
}

func TestRenderFooter_Loading(t *testing.T) {
	p := testFooterProps()
	p.Loading = true
	if out := RenderFooter(p); !strings.Contains(out, "loading") {
		t.Errorf("footer should show the loading indicator: %q", out)
	}
}

func TestRenderFooter_Error(t *testing.T) {
	p := testFooterProps()
	p.Err = errors.New("data file vanished")
	out := RenderFooter(p)
	if !strings.Contains(out, "data file vanished") {
		t.Errorf("footer should surface the error: %q", out)
	}
}

func TestRenderFooter_KeyHints(t *testing.T) {
	t.Run("grid focus", func(t *testing.T) {
		out := RenderFooter(testFooterProps())
		if !strings.Contains(out, "q quit") || !strings.Contains(out, "enter detail") {
			t.Errorf("grid hints: %q", out)
		}
	})

	t.Run("strip focus", func(t *testing.T) {
		p := testFooterProps()
		p.StripFocused = true
		if out := RenderFooter(p); !strings.Contains(out, "tab grid") {
			t.Errorf("strip hints: %q", out)
		}
	})

	t.Run("detail open", func(t *testing.T) {
		p := testFooterProps()
		p.DetailOpen = true
		out := RenderFooter(p)
		if !strings.Contains(out, "esc close") {
			t.Errorf("detail hints: %q", out)
		}
		if strings.Contains(out, "enter detail") {
			t.Errorf("detail hints should replace the grid hints: %q", out)
		}
	})
}
