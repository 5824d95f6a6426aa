package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/sadopc/watchface/internal/export"
	"github.com/sadopc/watchface/internal/store"
)

func newExportCmd(opts *options) *cobra.Command {
	var (
		format string
		out    string
		kind   string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the stopwatch and countdown run history",
		Example: `  watchface export --format csv
  watchface export --format json --out runs.json --kind countdown`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}
			filter := store.RunFilter{}
			switch kind {
			case "":
			case string(store.RunStopwatch), string(store.RunCountdown):
				filter.Kind = store.RunKind(kind)
			default:
				return fmt.Errorf("unknown run kind %q (want stopwatch or countdown)", kind)
			}

			s, err := opts.openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			runs, err := s.ListRuns(filter)
			if err != nil {
				return err
			}

			path := out
			if path == "" {
				home, err := os.UserHomeDir()
				if err != nil {
					return fmt.Errorf("resolve home dir: %w", err)
				}
				path = export.DefaultPath(home, f, time.Now())
			}
			if err := export.Write(f, runs, path); err != nil {
				return err
			}

			logger.Info("exported runs", "count", len(runs), "path", path)
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d runs to %s\n", len(runs), path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "csv", "output format: csv or json")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default: ~/watchface-runs-<date>.<format>)")
	cmd.Flags().StringVar(&kind, "kind", "", "only export runs of this kind (stopwatch or countdown)")
	return cmd
}
