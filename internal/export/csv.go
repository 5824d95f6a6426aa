package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"github.com/sadopc/watchface/internal/store"
)

func ToCSV(runs []store.Run, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	// Header
	if err := w.Write([]string{"ID", "Kind", "Started", "Duration (ms)", "Duration", "Completed"}); err != nil {
		return err
	}

	for _, r := range runs {
		row := []string{
			fmt.Sprintf("%d", r.ID),
			string(r.Kind),
			r.StartedAt.Local().Format(time.RFC3339),
			fmt.Sprintf("%d", r.DurationMS),
			formatDuration(r.DurationMS),
			fmt.Sprintf("%t", r.Completed),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func formatDuration(ms int64) string {
	h := ms / 3600000
	m := (ms % 3600000) / 60000
	s := (ms % 60000) / 1000
	cs := (ms % 1000) / 10
	return fmt.Sprintf("%02d:%02d:%02d.%02d", h, m, s, cs)
}
