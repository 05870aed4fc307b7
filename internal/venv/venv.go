// Package venv provisions the project's isolated Python environment.
//
// Activation is modeled explicitly: Env carries the venv's own interpreter and
// pip paths, and every install step is invoked through them rather than through
// ambient shell state.
package venv

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"cashflow.dev/cashflowctl/internal/pyexec"
)

// DirName is the virtual environment directory under the project root
const DirName = "venv"

// RequirementsFile is the dependency manifest consumed by pip
const RequirementsFile = "requirements.txt"

// LanguageModel is the spaCy model the NLP service loads at startup
const LanguageModel = "en_core_web_sm"

// Env describes a provisioned virtual environment
type Env struct {
	Root   string // absolute or project-relative venv directory
	Python string // interpreter inside the venv
	Pip    string // pip inside the venv

	runner *pyexec.CommandRunner
}

// envFor builds the Env paths for a venv rooted at dir
func envFor(projectRoot string) *Env {
	root := filepath.Join(projectRoot, DirName)
	binDir := "bin"
	if runtime.GOOS == "windows" {
		binDir = "Scripts"
	}
	return &Env{
		Root:   root,
		Python: filepath.Join(root, binDir, "python"),
		Pip:    filepath.Join(root, binDir, "pip"),
		runner: pyexec.NewCommandRunner(projectRoot),
	}
}

// Exists reports whether the venv directory is present
func Exists(projectRoot string) bool {
	info, err := os.Stat(filepath.Join(projectRoot, DirName))
	return err == nil && info.IsDir()
}

// Ensure creates the virtual environment if it does not exist and returns its Env.
// Returns created=false when the venv was already present.
func Ensure(ctx context.Context, projectRoot string, interp *pyexec.Interpreter) (*Env, bool, error) {
	env := envFor(projectRoot)

	if Exists(projectRoot) {
		return env, false, nil
	}

	runner := pyexec.NewCommandRunner(projectRoot)
	if _, err := runner.Run(ctx, interp.Path, "-m", "venv", DirName); err != nil {
		return nil, false, fmt.Errorf("failed to create virtual environment: %w", err)
	}
	return env, true, nil
}

// UpgradePip upgrades the package installer inside the venv to its latest version
func (e *Env) UpgradePip(ctx context.Context) error {
	return e.runner.RunStreaming(ctx, e.Python, "-m", "pip", "install", "--upgrade", "pip")
}

// InstallRequirements installs the dependency manifest into the venv.
// A missing manifest surfaces as the pip invocation's failure.
func (e *Env) InstallRequirements(ctx context.Context) error {
	return e.runner.RunStreaming(ctx, e.Pip, "install", "-r", RequirementsFile)
}

// DownloadLanguageModel fetches the spaCy model through its own downloader subcommand
func (e *Env) DownloadLanguageModel(ctx context.Context) error {
	return e.runner.RunStreaming(ctx, e.Python, "-m", "spacy", "download", LanguageModel)
}
