package cli

import (
	"github.com/spf13/cobra"

	"cashflow.dev/cashflowctl/internal/actions"
	"cashflow.dev/cashflowctl/internal/runtime"
)

// newSetupCmd creates the setup command
func newSetupCmd() *cobra.Command {
	var (
		projectRoot   string
		skipInstall   bool
		noInteractive bool
	)

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Run the full environment bootstrap sequence",
		Long: `Run the full bootstrap sequence for the CashFlow backend:

  1. Verify the installed Python version meets the minimum
  2. Create the backend's package directories and markers
  3. Provision the virtual environment (venv, pip upgrade, requirements, spaCy model)
  4. Materialize .env from .env.example and scan for placeholders
  5. Write the deployment Procfile
  6. Print the remaining manual steps

The sequence is fail-fast: the first failing step aborts the run. Every
filesystem-producing step is idempotent.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSetup(cmd, projectRoot, skipInstall, noInteractive)
		},
	}

	cmd.Flags().StringVar(&projectRoot, "project-root", ".", "Directory containing the CashFlow backend")
	cmd.Flags().BoolVar(&skipInstall, "skip-install", false, "Skip virtual environment provisioning (scaffolding and config only)")
	cmd.Flags().BoolVar(&noInteractive, "no-interactive", false, "Disable interactive prompts")

	return cmd
}

// runSetup is shared between the bare root invocation and the setup subcommand
func runSetup(cmd *cobra.Command, projectRoot string, skipInstall, noInteractive bool) error {
	rt, err := runtime.GetContext(projectRoot)
	if err != nil {
		return err
	}
	defer rt.Splog.Close()

	if noInteractive {
		rt.Interactive = false
	}

	return actions.Setup(cmd.Context(), rt, actions.SetupOptions{
		SkipInstall: skipInstall,
	})
}
