package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/sadopc/watchface/internal/config"
	"github.com/sadopc/watchface/internal/prefs"
	"github.com/sadopc/watchface/internal/store"
	"github.com/sadopc/watchface/internal/tone"
	"github.com/sadopc/watchface/internal/tui"
)

var version = "dev"

// SetVersion sets the version shown by --version. main passes the value
// injected with -ldflags at build time.
func SetVersion(v string) {
	version = v
}

// options holds the persistent flags shared by every command.
type options struct {
	dbPath     string
	configPath string
	logPath    string
	verbose    bool

	logFile io.Closer
}

// Execute runs the watchface CLI and returns an error if any command fails.
func Execute() error {
	opts := &options{}
	defer opts.closeLog()
	return newRootCmd(opts).ExecuteContext(context.Background())
}

func newRootCmd(opts *options) *cobra.Command {
	root := &cobra.Command{
		Use:          "watchface",
		Short:        "A decorative watch for the terminal",
		Long:         `watchface shows a digital clock, an analog face, neon digits, a stopwatch, a countdown timer and a weather card. Swipe with the mouse or use the arrow keys to move between screens.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := opts.openLogger()
			if err != nil {
				return err
			}
			cmd.SetContext(withLogger(cmd.Context(), logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd.Context(), opts)
		},
	}

	root.PersistentFlags().StringVar(&opts.dbPath, "db", "", "database path (default: user config dir)")
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file path (default: user config dir)")
	root.PersistentFlags().StringVar(&opts.logPath, "log", "", "log file path (default: next to the database)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newExportCmd(opts))
	root.AddCommand(newThemesCmd(opts))

	return root
}

func (o *options) resolveDBPath() (string, error) {
	if o.dbPath != "" {
		return o.dbPath, nil
	}
	return store.DefaultDBPath()
}

func (o *options) openLogger() (*charmlog.Logger, error) {
	level := charmlog.InfoLevel
	if o.verbose {
		level = charmlog.DebugLevel
	}

	path := o.logPath
	if path == "" {
		dbPath, err := o.resolveDBPath()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(filepath.Dir(dbPath), "watchface.log")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	o.logFile = f
	return newLogger(f, level), nil
}

// closeLog closes the log file opened by openLogger, if any. It runs on every
// exit path; cobra skips post-run hooks when a command fails.
func (o *options) closeLog() {
	if o.logFile != nil {
		o.logFile.Close()
		o.logFile = nil
	}
}

func (o *options) loadConfig() (config.Config, error) {
	path := o.configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return config.Config{}, err
		}
		path = p
	}
	return config.Load(path)
}

func (o *options) openStore() (*store.Store, error) {
	path, err := o.resolveDBPath()
	if err != nil {
		return nil, err
	}
	s, err := store.New(path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

func runWatch(ctx context.Context, opts *options) error {
	logger := loggerFromContext(ctx)

	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}
	s, err := opts.openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	player := tone.NewPlayer(tone.NewSpeakerSink(tone.DefaultSampleRate), logger)
	app := tui.NewApp(tui.Options{
		Store:  s,
		Prefs:  prefs.New(s, cfg.Themes, logger),
		Player: player,
		Config: cfg,
		Logger: logger,
	})

	logger.Info("watch started", "themes", len(cfg.Themes.Names()))
	p := tea.NewProgram(app,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run watch: %w", err)
	}
	logger.Info("watch stopped")
	return nil
}
