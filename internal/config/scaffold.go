package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ScaffoldProject creates the files a fresh stayboard project needs:
// stayboard.toml and a sample bookings.json seeded around today. Existing
// files are left untouched. Returns the paths that were created.
func ScaffoldProject(dir string) ([]string, error) {
	var created []string

	tomlPath := filepath.Join(dir, "stayboard.toml")
	if _, err := os.Stat(tomlPath); os.IsNotExist(err) {
		if _, initErr := InitFile(dir); initErr != nil {
			return created, initErr
		}
		created = append(created, tomlPath)
	}

	dataPath := filepath.Join(dir, "bookings.json")
	if _, err := os.Stat(dataPath); os.IsNotExist(err) {
		if writeErr := os.WriteFile(dataPath, []byte(sampleData(time.Now())), 0644); writeErr != nil {
			return created, fmt.Errorf("scaffold: write %s: %w", dataPath, writeErr)
		}
		created = append(created, dataPath)
	}

	return created, nil
}

// sampleData renders a small demo document: three listings and a handful of
// bookings placed relative to now so the grid has content on first launch.
func sampleData(now time.Time) string {
	day := func(offset int) string {
		return now.AddDate(0, 0, offset).Format("2006-01-02T00:00:00Z07:00")
	}
	return fmt.Sprintf(`{
  "listings": [
    {"id": "cabin-1", "name": "Garden Cabin"},
    {"id": "loft-2", "name": "River Loft"},
    {"id": "suite-3", "name": "Harbor Suite"}
  ],
  "bookings": [
    {"id": "bk-1001", "listingId": "cabin-1", "start": %q, "end": %q, "title": "Mora", "status": "checked_in", "guestName": "D. Mora"},
    {"id": "bk-1002", "listingId": "cabin-1", "start": %q, "end": %q, "title": "Okafor", "status": "paid", "guestName": "A. Okafor"},
    {"id": "bk-1003", "listingId": "loft-2", "start": %q, "end": %q, "title": "Lindqvist", "status": "pending", "guestName": "S. Lindqvist"},
    {"id": "bk-1004", "listingId": "suite-3", "start": %q, "end": %q, "title": "Tanaka", "status": "checked_out", "guestName": "K. Tanaka"},
    {"id": "bk-1005", "listingId": "suite-3", "start": %q, "end": %q, "title": "Beaumont", "status": "cancelled", "guestName": "R. Beaumont"}
  ]
}
`,
		day(-2), day(1),
		day(3), day(7),
		day(1), day(4),
		day(-6), day(-1),
		day(10), day(14),
	)
}
