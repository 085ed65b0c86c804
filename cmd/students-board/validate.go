package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aanand-mishra/students-board/internal/theme"
)

// validateCmd validates the config and theme without touching the network.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the config and theme files",
	Long: `Validate the students-board configuration and its theme file
without contacting the students API.

Exit codes:
  0 - Config and theme are valid
  1 - Something is invalid (error details printed to stderr)

Example:
  students-board validate -c config/local.yaml`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, _, err := bootstrap(cmd)
	if err != nil {
		return err
	}

	th, err := theme.Load(cfg.ThemePath)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Config is valid!\n")
	fmt.Fprintf(out, "  Env:       %s\n", cfg.Env)
	fmt.Fprintf(out, "  Endpoint:  %s\n", cfg.Endpoint)
	fmt.Fprintf(out, "  Storage:   %s\n", cfg.StoragePath)
	fmt.Fprintf(out, "  Theme:     main=%s secondary=%s (%d content patterns)\n",
		th.Colors.Main, th.Colors.Secondary, len(th.Content))

	return nil
}
