package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/aanand-mishra/students-board/internal/store"
	"github.com/aanand-mishra/students-board/internal/view"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot <id>",
	Short: "Render one archived student list",
	Args:  cobra.ExactArgs(1),
	RunE:  runSnapshot,
}

func init() {
	rootCmd.AddCommand(snapshotCmd)
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg, log, err := bootstrap(cmd)
	if err != nil {
		return err
	}

	archive, err := openArchive(cfg, log)
	if err != nil {
		return err
	}
	defer archive.Close()

	snap, students, err := archive.SnapshotByID(args[0])
	if err != nil {
		return fmt.Errorf("get snapshot: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "snapshot %s taken %s\n", snap.ID, snap.TakenAt.Local().Format(time.DateTime))

	// render through the store rather than the table directly, so the
	// output is exactly what show would have drawn after that load
	list := store.NewStudentList()
	list.Set(students)
	detach := view.NewTable(cmd.OutOrStdout(), log).Attach(list)
	detach()

	return nil
}
