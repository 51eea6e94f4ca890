package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/misterclayt0n/glowup/internal/config"
	"github.com/misterclayt0n/glowup/internal/storage"
	"github.com/misterclayt0n/glowup/internal/tracker"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	dbFlag  string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:          "glowup",
	Short:        "Personal fitness tracker: profile, daily progress, levels and achievements",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if dbFlag != "" {
			loaded.DB.ConnectionString = dbFlag
		}
		cfg = loaded
		setupLogging(cfg.Log.Level)
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&dbFlag, "db", "", "database path or libsql URL (overrides config)")
}

func setupLogging(level string) {
	logLevel := slog.LevelWarn
	switch strings.ToLower(level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "error":
		logLevel = slog.LevelError
	}
	if verbose {
		logLevel = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}

// openTracker opens the configured store and loads the engine on top of it.
// The returned func closes the store.
func openTracker() (*tracker.Tracker, func(), error) {
	slog.Debug("opening database", "connection", cfg.DB.ConnectionString)
	st, err := storage.Open(cfg.DB.ConnectionString, cfg.DB.AuthToken)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() {
		if err := st.Close(); err != nil {
			slog.Error("error closing database", "error", err)
		}
	}

	tr, err := tracker.New(st)
	if err != nil {
		closeFn()
		return nil, nil, err
	}
	return tr, closeFn, nil
}

// requireSession fails unless someone is logged in.
func requireSession(tr *tracker.Tracker) error {
	if !tr.Profiles.LoggedIn() {
		return fmt.Errorf("Not logged in. Run `glowup login` first")
	}
	if _, ok := tr.Profile(); !ok {
		return fmt.Errorf("No profile found. Run `glowup login` first")
	}
	return nil
}
