// Package export writes the stopwatch/countdown run log to CSV or JSON.
package export

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/sadopc/watchface/internal/store"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// ParseFormat accepts "csv" or "json" in any case.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatCSV:
		return FormatCSV, nil
	case FormatJSON:
		return FormatJSON, nil
	}
	return "", fmt.Errorf("unknown export format %q (want csv or json)", s)
}

// DefaultPath names an export file in dir, stamped with the given day.
func DefaultPath(dir string, f Format, day time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("watchface-runs-%s.%s", day.Format("2006-01-02"), f))
}

// Write dispatches to ToCSV or ToJSON.
func Write(f Format, runs []store.Run, path string) error {
	switch f {
	case FormatCSV:
		return ToCSV(runs, path)
	case FormatJSON:
		return ToJSON(runs, path)
	}
	return fmt.Errorf("unknown export format %q", f)
}
