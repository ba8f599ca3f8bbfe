// Package config parses stayboard.toml project configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultAccentColor is the default TUI accent color (teal).
const DefaultAccentColor = "#2BB8A6"

// hexColorRe matches a 6-digit hex color string like "#2BB8A6".
var hexColorRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Config is the top-level stayboard.toml configuration.
type Config struct {
	Timeline TimelineConfig `toml:"timeline"`
	TUI      TUIConfig      `toml:"tui"`
	Data     DataConfig     `toml:"data"`
}

// TimelineConfig controls the date-window engine geometry and growth.
type TimelineConfig struct {
	CellWidth     int `toml:"cell_width"`     // terminal columns per day cell
	SegmentGap    int `toml:"segment_gap"`    // inset so adjacent segments never touch
	EdgeThreshold int `toml:"edge_threshold"` // cells from a scroll boundary that trigger extension
	ExtendDays    int `toml:"extend_days"`    // days added per edge extension
	DaysBefore    int `toml:"days_before"`    // initial window: days before today
	DaysAfter     int `toml:"days_after"`     // initial window: days after today
}

// TUIConfig controls the terminal UI appearance.
type TUIConfig struct {
	AccentColor string `toml:"accent_color"`
}

// DataConfig points at the booking data document.
type DataConfig struct {
	File string `toml:"file"`
}

// Validate checks the configuration for issues that would cause confusing
// runtime failures. It returns all found issues joined together.
func (c *Config) Validate() error {
	var errs []error

	if c.Timeline.CellWidth < 2 {
		errs = append(errs, fmt.Errorf("timeline.cell_width must be >= 2"))
	}
	if c.Timeline.SegmentGap < 0 {
		errs = append(errs, fmt.Errorf("timeline.segment_gap must be >= 0"))
	}
	if c.Timeline.SegmentGap >= c.Timeline.CellWidth {
		errs = append(errs, fmt.Errorf("timeline.segment_gap must be smaller than cell_width (a one-day booking must stay visible)"))
	}
	if c.Timeline.EdgeThreshold < 1 {
		errs = append(errs, fmt.Errorf("timeline.edge_threshold must be >= 1"))
	}
	if c.Timeline.ExtendDays < 1 {
		errs = append(errs, fmt.Errorf("timeline.extend_days must be >= 1"))
	}
	if c.Timeline.DaysBefore < 0 {
		errs = append(errs, fmt.Errorf("timeline.days_before must be >= 0"))
	}
	if c.Timeline.DaysAfter < 0 {
		errs = append(errs, fmt.Errorf("timeline.days_after must be >= 0"))
	}
	if c.TUI.AccentColor != "" && !hexColorRe.MatchString(c.TUI.AccentColor) {
		errs = append(errs, fmt.Errorf("tui.accent_color must be a hex color (e.g. \"#2BB8A6\")"))
	}

	return errors.Join(errs...)
}

// Defaults returns a Config with the standard grid geometry.
func Defaults() Config {
	return Config{
		Timeline: TimelineConfig{
			CellWidth:     4,
			SegmentGap:    1,
			EdgeThreshold: 8,
			ExtendDays:    30,
			DaysBefore:    7,
			DaysAfter:     60,
		},
		TUI: TUIConfig{
			AccentColor: DefaultAccentColor,
		},
		Data: DataConfig{
			File: "bookings.json",
		},
	}
}

// Load reads stayboard.toml from the given path. If path is empty, it walks
// up from the current working directory looking for stayboard.toml. Returns
// an error if the file contains unknown keys (likely typos).
func Load(path string) (*Config, error) {
	if path == "" {
		found, err := findConfig()
		if err != nil {
			return nil, err
		}
		path = found
	}

	cfg := Defaults()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("config: unknown keys in %s: %s (possible typos?)", path, strings.Join(keys, ", "))
	}

	return &cfg, nil
}

// findConfig walks up from the current directory looking for stayboard.toml.
func findConfig() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("config: get working directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, "stayboard.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("config: stayboard.toml not found (searched up from %s)", dir)
		}
		dir = parent
	}
}

// InitFile writes a default stayboard.toml template to the given directory.
func InitFile(dir string) (string, error) {
	path := filepath.Join(dir, "stayboard.toml")
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("config: stayboard.toml already exists at %s", path)
	}

	content := `# stayboard.toml: booking timeline configuration
# Place this file in the root of your project.

[timeline]
cell_width = 4      # terminal columns per day cell
segment_gap = 1     # inset so adjacent segments never touch
edge_threshold = 8  # cells from a scroll boundary that trigger window extension
extend_days = 30    # days added per extension
days_before = 7     # initial window: days before today
days_after = 60     # initial window: days after today

[tui]
accent_color = "#2BB8A6" # hex color for the header bar and focused borders

[data]
file = "bookings.json" # JSON document with listings and bookings
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("config: write %s: %w", path, err)
	}
	return path, nil
}
