package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root cobra command.
// Running cashflowctl with no arguments executes the full setup sequence.
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cashflowctl",
		Short: "Bootstrap a local development environment for the CashFlow backend",
		Long: `cashflowctl bootstraps a local development environment for the CashFlow backend.

It checks the installed Python version, scaffolds the backend's package
directories, provisions a virtual environment with all dependencies and the
spaCy language model, materializes .env from its template, and writes the
deployment Procfile. Every step is idempotent, so the tool is safe to re-run.`,
		Version:      fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSetup(cmd, ".", false, false)
		},
	}

	// Add subcommands
	rootCmd.AddCommand(newSetupCmd())
	rootCmd.AddCommand(newDoctorCmd())

	return rootCmd
}
