package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aanand-mishra/students-board/internal/loader"
	"github.com/aanand-mishra/students-board/internal/storage"
	"github.com/aanand-mishra/students-board/internal/store"
	"github.com/aanand-mishra/students-board/internal/view"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Load the student list once and render it",
	Long: `Load the student list from the configured endpoint and render it.

The table is drawn as soon as the store exists (empty) and again once the
load completes. A failed load is reported and exits non-zero; nothing is
retried.

This is also what runs when no command is given.`,
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, log, err := bootstrap(cmd)
	if err != nil {
		return err
	}

	archive, err := openArchive(cfg, log)
	if err != nil {
		return err
	}
	defer archive.Close()

	// the store is built here and handed to its consumers explicitly
	students := store.NewStudentList()

	detachTable := view.NewTable(cmd.OutOrStdout(), log).Attach(students)
	defer detachTable()

	stopRecording := students.Subscribe(storage.Recorder(archive, log))
	defer stopRecording()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	l := loader.New(students,
		loader.WithEndpoint(cfg.Endpoint),
		loader.WithLogger(log),
	)

	log.Info("loading students", slog.String("endpoint", l.Endpoint()))

	if err := l.Load(ctx); err != nil {
		log.Error("failed to load students", slog.String("error", err.Error()))
		return fmt.Errorf("load students: %w", err)
	}

	log.Info("students loaded", slog.Int("count", len(students.Get())))
	return nil
}
