package actions

import (
	"context"
	"fmt"

	"cashflow.dev/cashflowctl/internal/envfile"
	"cashflow.dev/cashflowctl/internal/pyexec"
	"cashflow.dev/cashflowctl/internal/runtime"
	"cashflow.dev/cashflowctl/internal/scaffold"
	"cashflow.dev/cashflowctl/internal/venv"
)

// SetupOptions contains options for the setup command
type SetupOptions struct {
	// SkipInstall skips virtual environment provisioning entirely,
	// leaving only scaffolding and configuration. Useful offline.
	SkipInstall bool
}

// Setup runs the full bootstrap sequence for the CashFlow backend:
// preflight, scaffolding, provisioning, configuration, Procfile, report.
// The sequence is strictly linear and short-circuits on the first error.
func Setup(ctx context.Context, rt *runtime.Context, opts SetupOptions) error {
	splog := rt.Splog

	splog.Info("🚀 CashFlow Backend Setup")
	splog.Newline()

	// Preflight: no side effect may happen before this passes
	if err := preflight(ctx, rt); err != nil {
		return err
	}

	// The rotating log file is only opened once the gate has cleared
	if err := splog.AttachFile(runtime.LogFilePath()); err != nil {
		splog.Debug("file logging unavailable: %v", err)
	}

	if err := scaffoldProject(rt); err != nil {
		return err
	}

	if err := provision(ctx, rt, opts); err != nil {
		return err
	}

	if err := materializeConfig(rt); err != nil {
		return err
	}

	if err := writeProcfile(rt); err != nil {
		return err
	}

	report(splog)
	return nil
}

// preflight resolves the system interpreter and enforces the minimum version
func preflight(ctx context.Context, rt *runtime.Context) error {
	splog := rt.Splog

	if err := rt.ResolvePython(ctx); err != nil {
		splog.Error("Python 3 was not found on PATH. Install Python %s or higher and re-run.", pyexec.MinimumVersion)
		return err
	}

	if err := rt.Python.Preflight(); err != nil {
		splog.Error("%v", err)
		return err
	}

	splog.Info("✅ Python %s detected (%s)", rt.Python.Version, rt.Python.Path)
	return nil
}

// scaffoldProject creates the backend's package directories and markers
func scaffoldProject(rt *runtime.Context) error {
	if err := scaffold.EnsurePackageDirs(rt.ProjectRoot); err != nil {
		return err
	}
	rt.Splog.Info("📁 Package directories ready (agents, services, models, utils)")
	return nil
}

// provision creates the venv and installs the dependency set into it
func provision(ctx context.Context, rt *runtime.Context, opts SetupOptions) error {
	splog := rt.Splog

	if opts.SkipInstall {
		splog.Info("⏭️  Skipping virtual environment provisioning (--skip-install)")
		return nil
	}

	env, created, err := venv.Ensure(ctx, rt.ProjectRoot, rt.Python)
	if err != nil {
		return err
	}
	if created {
		splog.Info("🐍 Virtual environment created at %s", venv.DirName)
	} else {
		splog.Info("🐍 Virtual environment already exists, reusing it")
	}

	splog.Info("⬆️  Upgrading pip...")
	if err := env.UpgradePip(ctx); err != nil {
		return fmt.Errorf("failed to upgrade pip: %w", err)
	}

	splog.Info("📦 Installing dependencies from %s...", venv.RequirementsFile)
	if err := env.InstallRequirements(ctx); err != nil {
		return fmt.Errorf("failed to install dependencies: %w", err)
	}

	splog.Info("🧠 Downloading spaCy language model %s...", venv.LanguageModel)
	if err := env.DownloadLanguageModel(ctx); err != nil {
		return fmt.Errorf("failed to download language model: %w", err)
	}

	return nil
}

// materializeConfig copies .env from its template and runs the placeholder scan
func materializeConfig(rt *runtime.Context) error {
	splog := rt.Splog

	created, err := envfile.Materialize(rt.ProjectRoot)
	if err != nil {
		return err
	}

	if created {
		splog.Info("📝 Created %s from %s", envfile.FileName, envfile.TemplateName)
		splog.Warn("You must edit %s and fill in:", envfile.FileName)
		for _, category := range envfile.RequiredCategories {
			splog.Warn("  - %s", category)
		}
	} else {
		splog.Info("📝 %s already exists, skipping", envfile.FileName)
	}

	found, err := envfile.HasPlaceholders(rt.ProjectRoot)
	if err != nil {
		return err
	}
	if found {
		splog.Warn("%s still contains placeholder values — the backend will not start until they are configured", envfile.FileName)
	} else {
		splog.Info("✅ Configuration looks good")
	}

	return nil
}

// writeProcfile writes the deployment stub if absent
func writeProcfile(rt *runtime.Context) error {
	created, err := scaffold.EnsureProcfile(rt.ProjectRoot)
	if err != nil {
		return err
	}
	if created {
		rt.Splog.Info("🚢 Created %s", scaffold.ProcfileName)
	}
	return nil
}
