package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/stayboard/stayboard/internal/config"
	"github.com/stayboard/stayboard/internal/ics"
	"github.com/stayboard/stayboard/internal/source"
	"github.com/stayboard/stayboard/internal/tui"
)

// loadSetup resolves config and data source for the run and export commands.
func loadSetup(configPath, dataOverride string) (*config.Config, *source.FileSource, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	dataPath := cfg.Data.File
	if dataOverride != "" {
		dataPath = dataOverride
	}
	src, err := source.NewFileSource(dataPath)
	if err != nil {
		return nil, nil, err
	}
	return cfg, src, nil
}

// runTimeline starts the interactive booking grid.
func runTimeline(configPath, dataOverride string) error {
	cfg, src, err := loadSetup(configPath, dataOverride)
	if err != nil {
		return err
	}

	model := tui.New(src, *cfg, time.Now())
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run timeline: %w", err)
	}
	return nil
}

// runInit scaffolds stayboard.toml and a sample data file in dir.
func runInit(cmd *cobra.Command, dir string) error {
	created, err := config.ScaffoldProject(dir)
	if err != nil {
		return err
	}
	if len(created) == 0 {
		cmd.Println("All files already exist, nothing to create.")
		return nil
	}
	for _, path := range created {
		cmd.Printf("Created %s\n", path)
	}
	return nil
}

// runExport writes the full booking document as an iCalendar file.
func runExport(cmd *cobra.Command, configPath, dataOverride, outPath string) error {
	_, src, err := loadSetup(configPath, dataOverride)
	if err != nil {
		return err
	}

	listings, err := src.Listings()
	if err != nil {
		return err
	}
	// The whole document: export is not windowed.
	bookings, err := src.Bookings(time.Time{}, time.Date(9999, 1, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		return err
	}

	if outPath == "" {
		return ics.Export(cmd.OutOrStdout(), listings, bookings)
	}
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", outPath, err)
	}
	defer f.Close()
	if err := ics.Export(f, listings, bookings); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	cmd.Printf("Exported %d bookings to %s\n", len(bookings), outPath)
	return nil
}
