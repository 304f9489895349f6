// Package export writes server-provided CSV and PDF blobs to the download
// directory, keeping the filename patterns the browser UI used.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

type Saver struct {
	dir string
}

func NewSaver(dir string) *Saver {
	return &Saver{dir: dir}
}

// Save writes data under the download directory and returns the full path.
func (s *Saver) Save(name string, data []byte) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create download directory: %w", err)
	}
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", name, err)
	}
	return path, nil
}

func BatchFilename(batch int) string {
	return fmt.Sprintf("batch_%d_giftcards.csv", batch)
}

func UserStatsFilename(period string, now time.Time) string {
	return fmt.Sprintf("users_%s_%s.csv", period, now.UTC().Format(time.RFC3339))
}

func PurchaseStatsFilename(period string, now time.Time) string {
	return fmt.Sprintf("purchases_%s_%s.csv", period, now.UTC().Format(time.RFC3339))
}

func CreditStatsFilename(kind string, now time.Time) string {
	return fmt.Sprintf("credit_%s_%s.csv", kind, now.UTC().Format(time.RFC3339))
}

func ReportFilename(name string) string {
	return name + ".pdf"
}
