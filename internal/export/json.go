package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sadopc/watchface/internal/store"
)

type jsonExport struct {
	ExportedAt string    `json:"exported_at"`
	Count      int       `json:"count"`
	Runs       []jsonRun `json:"runs"`
}

type jsonRun struct {
	ID         int64  `json:"id"`
	Kind       string `json:"kind"`
	StartedAt  string `json:"started_at"`
	DurationMS int64  `json:"duration_ms"`
	Duration   string `json:"duration"`
	Completed  bool   `json:"completed"`
}

func ToJSON(runs []store.Run, path string) error {
	export := jsonExport{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Count:      len(runs),
		Runs:       []jsonRun{},
	}

	for _, r := range runs {
		export.Runs = append(export.Runs, jsonRun{
			ID:         r.ID,
			Kind:       string(r.Kind),
			StartedAt:  r.StartedAt.Local().Format(time.RFC3339),
			DurationMS: r.DurationMS,
			Duration:   formatDuration(r.DurationMS),
			Completed:  r.Completed,
		})
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}
