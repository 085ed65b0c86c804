package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List archived student snapshots",
	Long: `List the student lists archived by earlier show runs, newest first.

Example:
  students-board history -c config/local.yaml --limit 5`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntVar(&historyLimit, "limit", 10, "maximum number of snapshots to list (0 for all)")
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, log, err := bootstrap(cmd)
	if err != nil {
		return err
	}

	archive, err := openArchive(cfg, log)
	if err != nil {
		return err
	}
	defer archive.Close()

	snaps, err := archive.Snapshots(historyLimit)
	if err != nil {
		return fmt.Errorf("list snapshots: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(snaps) == 0 {
		fmt.Fprintln(out, "no snapshots")
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTAKEN AT\tSTUDENTS")
	for _, s := range snaps {
		fmt.Fprintf(tw, "%s\t%s\t%d\n", s.ID, s.TakenAt.Local().Format(time.DateTime), s.Count)
	}
	return tw.Flush()
}
