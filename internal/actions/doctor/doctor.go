// Package doctor provides diagnostic functionality for checking the CashFlow backend development environment.
package doctor

import (
	"context"
	"fmt"

	"cashflow.dev/cashflowctl/internal/runtime"
	"cashflow.dev/cashflowctl/internal/tui"
)

// Options contains options for the doctor command
type Options struct {
	Fix bool
}

// Action runs diagnostic checks on the development environment and project layout
func Action(ctx context.Context, rt *runtime.Context, opts Options) error {
	splog := rt.Splog

	if opts.Fix {
		splog.Info("Running cashflowctl doctor with --fix...")
	} else {
		splog.Info("Running cashflowctl doctor...")
	}
	splog.Newline()

	var warnings []string
	var errors []string

	splog.Info("Environment:")
	warnings, errors = checkEnvironment(ctx, rt, warnings, errors)

	splog.Newline()

	splog.Info("Project layout:")
	warnings, errors = checkLayout(rt, warnings, errors)

	splog.Newline()

	splog.Info("Configuration:")
	warnings, errors = checkConfiguration(rt, warnings, errors)

	if opts.Fix {
		splog.Newline()
		if err := applyFixes(rt); err != nil {
			return err
		}
	}

	// Summary
	splog.Newline()
	switch {
	case len(errors) > 0:
		splog.Warn("Doctor found %d error(s) and %d warning(s).", len(errors), len(warnings))
		for _, err := range errors {
			splog.Error("  %s", tui.ColorRed(err))
		}
		for _, warn := range warnings {
			splog.Warn("  %s", tui.ColorYellow(warn))
		}
		return fmt.Errorf("doctor found %d error(s)", len(errors))
	case len(warnings) > 0:
		if opts.Fix {
			splog.Info("Doctor found %d warning(s), some of which may have been fixed.", len(warnings))
		} else {
			splog.Info("Doctor found %d warning(s). Your environment is mostly healthy.", len(warnings))
		}
		for _, warn := range warnings {
			splog.Warn("  %s", tui.ColorYellow(warn))
		}
	default:
		splog.Info(tui.ColorGreen("✅ All checks passed. Your environment is healthy."))
	}

	return nil
}

// applyFixes re-runs the idempotent scaffolding steps. When attached to a
// terminal the operator is asked first; --no-interactive applies them
// without confirmation.
func applyFixes(rt *runtime.Context) error {
	if rt.Interactive {
		confirmed, err := tui.Confirm("Re-run scaffolding and configuration materialization?", true)
		if err != nil {
			return err
		}
		if !confirmed {
			rt.Splog.Info("Skipping fixes")
			return nil
		}
	}
	return fixLayout(rt)
}
