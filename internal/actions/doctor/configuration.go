package doctor

import (
	"os"
	"path/filepath"

	"cashflow.dev/cashflowctl/internal/envfile"
	"cashflow.dev/cashflowctl/internal/runtime"
)

// checkConfiguration verifies the .env file and the placeholder scan
func checkConfiguration(rt *runtime.Context, warnings []string, errs []string) ([]string, []string) {
	splog := rt.Splog

	template := filepath.Join(rt.ProjectRoot, envfile.TemplateName)
	if _, err := os.Stat(template); err != nil {
		warnings = append(warnings, envfile.TemplateName+" missing; setup cannot materialize a fresh .env")
		splog.Warn("  %s missing; setup cannot materialize a fresh .env", envfile.TemplateName)
	}

	if !envfile.Exists(rt.ProjectRoot) {
		warnings = append(warnings, envfile.FileName+" missing; run 'cashflowctl setup' to create it")
		splog.Warn("  %s missing; run 'cashflowctl setup' to create it", envfile.FileName)
		return warnings, errs
	}

	found, err := envfile.HasPlaceholders(rt.ProjectRoot)
	if err != nil {
		errs = append(errs, err.Error())
		splog.Error("  %v", err)
		return warnings, errs
	}

	if found {
		warnings = append(warnings, envfile.FileName+" still contains placeholder values")
		splog.Warn("  %s still contains placeholder values", envfile.FileName)
	} else {
		splog.Info("  ✅ %s configured", envfile.FileName)
	}

	return warnings, errs
}
