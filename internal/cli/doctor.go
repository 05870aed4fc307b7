package cli

import (
	"github.com/spf13/cobra"

	"cashflow.dev/cashflowctl/internal/actions/doctor"
	"cashflow.dev/cashflowctl/internal/runtime"
)

// newDoctorCmd creates the doctor command
func newDoctorCmd() *cobra.Command {
	var (
		fix           bool
		projectRoot   string
		noInteractive bool
	)

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose common issues with your development environment",
		Long: `Run diagnostic checks on the CashFlow backend development environment.

The doctor command checks:
  - Environment: Python version and virtual environment presence
  - Project layout: package directories, requirements manifest, and Procfile
  - Configuration: .env presence and leftover placeholder values`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := runtime.GetContext(projectRoot)
			if err != nil {
				return err
			}
			defer rt.Splog.Close()

			if noInteractive {
				rt.Interactive = false
			}

			return doctor.Action(cmd.Context(), rt, doctor.Options{
				Fix: fix,
			})
		},
	}

	cmd.Flags().BoolVar(&fix, "fix", false, "Attempt to automatically fix any issues found")
	cmd.Flags().StringVar(&projectRoot, "project-root", ".", "Directory containing the CashFlow backend")
	cmd.Flags().BoolVar(&noInteractive, "no-interactive", false, "Disable interactive prompts")

	return cmd
}
