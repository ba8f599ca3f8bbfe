package tui

import "testing"

func TestCalculate(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		height   int
		tooSmall bool
		sidebarW int
		gridW    int
		bodyH    int
	}{
		{
			name:  "80x24",
			width: 80, height: 24,
			tooSmall: false,
			sidebarW: 17, // 80*22/100 = 17 (in range)
			gridW:    63,
			bodyH:    20,
		},
		{
			name:  "120x40",
			width: 120, height: 40,
			tooSmall: false,
			sidebarW: 24, // 120*22/100 = 26 → clamped to max 24
			gridW:    96,
			bodyH:    36,
		},
		{
			name:  "60x16 minimum viable",
			width: 60, height: 16,
			tooSmall: false,
			sidebarW: 14, // 60*22/100 = 13 → clamped to min 14
			gridW:    46,
			bodyH:    12,
		},
		{
			name:  "200x50",
			width: 200, height: 50,
			tooSmall: false,
			sidebarW: 24, // 200*22/100 = 44 → clamped to max 24
			gridW:    176,
			bodyH:    46,
		},
		{
			name:  "59x16 too small (width)",
			width: 59, height: 16,
			tooSmall: true,
		},
		{
			name:  "60x15 too small (height)",
			width: 60, height: 15,
			tooSmall: true,
		},
		{
			name:  "0x0 too small",
			width: 0, height: 0,
			tooSmall: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := Calculate(tt.width, tt.height)
			if l.TooSmall != tt.tooSmall {
				t.Errorf("TooSmall: got %v, want %v", l.TooSmall, tt.tooSmall)
				return
			}
			if tt.tooSmall {
				return // no further assertions for too-small layouts
			}

			// Header
			if l.Header.Y != 0 || l.Header.Width != tt.width || l.Header.Height != 1 {
				t.Errorf("Header: got %+v", l.Header)
			}

			// Footer
			if l.Footer.Y != tt.height-1 || l.Footer.Width != tt.width || l.Footer.Height != 1 {
				t.Errorf("Footer: got %+v", l.Footer)
			}

			// Sidebar
			if l.Sidebar.X != 0 || l.Sidebar.Y != 3 {
				t.Errorf("Sidebar position: got %+v", l.Sidebar)
			}
			if l.Sidebar.Width != tt.sidebarW {
				t.Errorf("Sidebar.Width: got %d, want %d", l.Sidebar.Width, tt.sidebarW)
			}
			if l.Sidebar.Height != tt.bodyH {
				t.Errorf("Sidebar.Height: got %d, want %d", l.Sidebar.Height, tt.bodyH)
			}

			// Date strip sits above the grid and shares its horizontal origin
			if l.DateStrip.X != tt.sidebarW || l.DateStrip.Y != 1 || l.DateStrip.Height != 2 {
				t.Errorf("DateStrip: got %+v", l.DateStrip)
			}
			if l.DateStrip.Width != tt.gridW {
				t.Errorf("DateStrip.Width: got %d, want %d", l.DateStrip.Width, tt.gridW)
			}

			// Grid
			if l.Grid.X != tt.sidebarW || l.Grid.Y != 3 {
				t.Errorf("Grid position: got %+v", l.Grid)
			}
			if l.Grid.Width != tt.gridW {
				t.Errorf("Grid.Width: got %d, want %d", l.Grid.Width, tt.gridW)
			}
			if l.Grid.Height != tt.bodyH {
				t.Errorf("Grid.Height: got %d, want %d", l.Grid.Height, tt.bodyH)
			}

			// Sidebar and grid tile the full width
			if l.Sidebar.Width+l.Grid.Width != tt.width {
				t.Errorf("sidebar %d + grid %d != width %d", l.Sidebar.Width, l.Grid.Width, tt.width)
			}
		})
	}
}

func TestCalculate_SidebarClamp(t *testing.T) {
	t.Run("narrow terminal clamps sidebar to min 14", func(t *testing.T) {
		l := Calculate(60, 16)
		if l.Sidebar.Width < 14 {
			t.Errorf("sidebar width %d is below minimum 14", l.Sidebar.Width)
		}
	})

	t.Run("wide terminal clamps sidebar to max 24", func(t *testing.T) {
		l := Calculate(200, 30)
		if l.Sidebar.Width > 24 {
			t.Errorf("sidebar width %d exceeds maximum 24", l.Sidebar.Width)
		}
	})
}
