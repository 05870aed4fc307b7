package doctor

import (
	"os"
	"path/filepath"

	"cashflow.dev/cashflowctl/internal/envfile"
	"cashflow.dev/cashflowctl/internal/runtime"
	"cashflow.dev/cashflowctl/internal/scaffold"
	"cashflow.dev/cashflowctl/internal/venv"
)

// checkLayout verifies the backend's expected filesystem layout
func checkLayout(rt *runtime.Context, warnings []string, errs []string) ([]string, []string) {
	splog := rt.Splog

	missing := 0
	for _, dir := range scaffold.PackageDirs {
		marker := filepath.Join(rt.ProjectRoot, dir, scaffold.MarkerFileName)
		if _, err := os.Stat(marker); err != nil {
			missing++
			warnings = append(warnings, "package directory "+dir+" is missing or has no "+scaffold.MarkerFileName)
			splog.Warn("  package directory %s is missing or has no %s", dir, scaffold.MarkerFileName)
		}
	}
	if missing == 0 {
		splog.Info("  ✅ package directories present")
	}

	manifest := filepath.Join(rt.ProjectRoot, venv.RequirementsFile)
	if _, err := os.Stat(manifest); err != nil {
		errs = append(errs, venv.RequirementsFile+" not found; dependency installation will fail")
		splog.Error("  %s not found; dependency installation will fail", venv.RequirementsFile)
	} else {
		splog.Info("  ✅ %s present", venv.RequirementsFile)
	}

	if scaffold.HasProcfile(rt.ProjectRoot) {
		splog.Info("  ✅ %s present", scaffold.ProcfileName)
	} else {
		warnings = append(warnings, scaffold.ProcfileName+" missing; deployment will not have a process declaration")
		splog.Warn("  %s missing; deployment will not have a process declaration", scaffold.ProcfileName)
	}

	return warnings, errs
}

// fixLayout re-runs the idempotent scaffolding and configuration steps
func fixLayout(rt *runtime.Context) error {
	splog := rt.Splog

	if err := scaffold.EnsurePackageDirs(rt.ProjectRoot); err != nil {
		return err
	}
	splog.Info("📁 Package directories ensured")

	created, err := scaffold.EnsureProcfile(rt.ProjectRoot)
	if err != nil {
		return err
	}
	if created {
		splog.Info("🚢 Created %s", scaffold.ProcfileName)
	}

	// Materializing .env only works when the template is present; a missing
	// template was already surfaced as a warning.
	if _, err := os.Stat(filepath.Join(rt.ProjectRoot, envfile.TemplateName)); err == nil {
		created, err := envfile.Materialize(rt.ProjectRoot)
		if err != nil {
			return err
		}
		if created {
			splog.Info("📝 Created %s from %s", envfile.FileName, envfile.TemplateName)
		}
	}

	return nil
}
