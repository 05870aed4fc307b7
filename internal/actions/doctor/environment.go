package doctor

import (
	"context"
	"errors"
	"fmt"

	cferrors "cashflow.dev/cashflowctl/internal/errors"
	"cashflow.dev/cashflowctl/internal/pyexec"
	"cashflow.dev/cashflowctl/internal/runtime"
	"cashflow.dev/cashflowctl/internal/venv"
)

// checkEnvironment performs interpreter and virtual environment checks
func checkEnvironment(ctx context.Context, rt *runtime.Context, warnings []string, errs []string) ([]string, []string) {
	splog := rt.Splog

	interp, err := pyexec.FindInterpreter(ctx)
	switch {
	case err != nil:
		errs = append(errs, "Python 3 is not installed or not in PATH")
		splog.Error("  Python 3 is not installed or not in PATH")
	default:
		rt.Python = interp
		if verr := interp.Preflight(); verr != nil {
			msg := verr.Error()
			if errors.Is(verr, cferrors.ErrInterpreterTooOld) {
				msg = fmt.Sprintf("Python %s found at %s, but %s or higher is required", interp.Version, interp.Path, pyexec.MinimumVersion)
			}
			errs = append(errs, msg)
			splog.Error("  %s", msg)
		} else {
			splog.Info("  ✅ Python %s (%s)", interp.Version, interp.Path)
		}
	}

	if venv.Exists(rt.ProjectRoot) {
		splog.Info("  ✅ virtual environment present (%s)", venv.DirName)
	} else {
		warnings = append(warnings, "virtual environment missing; run 'cashflowctl setup'")
		splog.Warn("  virtual environment missing; run 'cashflowctl setup'")
	}

	return warnings, errs
}
