// main is the entry point of the students-board client.
//
// STARTUP SEQUENCE (show, the default command):
//  1. Load configuration from a YAML file
//  2. Initialise the logger
//  3. Open the SQLite snapshot archive
//  4. Build the student store and attach its subscribers
//  5. Run the loader once
//
// RUNNING:
//
//	go run ./cmd/students-board --config=config/local.yaml
//
// or (with the environment variable):
//
//	CONFIG_PATH=config/local.yaml go run ./cmd/students-board
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aanand-mishra/students-board/internal/config"
	"github.com/aanand-mishra/students-board/internal/storage/sqlite"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "students-board",
	Short: "Fetch and display the student list",
	Long: `students-board fetches the student list from the students API,
publishes it into an in-memory store and renders it as a table.

Every list it loads is archived in a local SQLite file; use the history
and snapshot commands to look at earlier loads.`,
	SilenceUsage: true,
	RunE:         runShow,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"path to the configuration YAML file (falls back to CONFIG_PATH)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// bootstrap loads the config and sets up the logger. Every command starts
// here.
func bootstrap(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}

	log := setupLogger(cfg.Env, cmd.ErrOrStderr())
	slog.SetDefault(log)

	return cfg, log, nil
}

// openArchive opens the snapshot archive, creating its directory first.
func openArchive(cfg *config.Config, log *slog.Logger) (*sqlite.SQLite, error) {
	if dir := filepath.Dir(cfg.StoragePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}

	archive, err := sqlite.New(cfg)
	if err != nil {
		return nil, err
	}

	log.Debug("storage initialised", slog.String("path", cfg.StoragePath))
	return archive, nil
}

// setupLogger returns a *slog.Logger configured for the given environment.
//
// Development (dev): human-readable text output at DEBUG level, which
// includes the raw payload dump from the loader.
// Production (prod): machine-readable JSON output at INFO level.
//
// Logs go to w (stderr) so they never mix with the rendered table.
func setupLogger(env string, w io.Writer) *slog.Logger {
	switch env {
	case "prod":
		return slog.New(
			slog.NewJSONHandler(w, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	case "staging":
		return slog.New(
			slog.NewJSONHandler(w, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default: // "dev" and anything unrecognised
		return slog.New(
			slog.NewTextHandler(w, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	}
}
