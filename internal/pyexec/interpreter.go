package pyexec

import (
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	goversion "github.com/hashicorp/go-version"

	cferrors "cashflow.dev/cashflowctl/internal/errors"
)

// MinimumVersion is the lowest Python version the backend supports
const MinimumVersion = "3.8"

// interpreterCandidates are tried in order when locating the system Python
var interpreterCandidates = []string{"python3", "python"}

var versionPattern = regexp.MustCompile(`Python (\d+(?:\.\d+)*)`)

// Interpreter represents a resolved Python interpreter on the system
type Interpreter struct {
	Path    string
	Version string
}

// FindInterpreter locates a Python interpreter on PATH and queries its version.
// python3 is preferred; python is accepted as a fallback.
func FindInterpreter(ctx context.Context) (*Interpreter, error) {
	for _, candidate := range interpreterCandidates {
		path, err := exec.LookPath(candidate)
		if err != nil {
			continue
		}

		version, err := QueryVersion(ctx, path)
		if err != nil {
			continue
		}

		return &Interpreter{Path: path, Version: version}, nil
	}
	return nil, cferrors.ErrInterpreterNotFound
}

// QueryVersion runs `<python> --version` and parses the reported version.
// Older interpreters print the banner on stderr, so both streams are read.
func QueryVersion(ctx context.Context, pythonPath string) (string, error) {
	runner := &CommandRunner{}
	out, err := runner.RunCombined(ctx, pythonPath, "--version")
	if err != nil {
		return "", err
	}
	return ParseVersionOutput(out)
}

// ParseVersionOutput extracts the version number from a `python --version` banner
func ParseVersionOutput(out string) (string, error) {
	m := versionPattern.FindStringSubmatch(strings.TrimSpace(out))
	if m == nil {
		return "", fmt.Errorf("could not parse interpreter version from %q", out)
	}
	return m[1], nil
}

// CheckMinimum compares an installed version against a required minimum using
// version-aware ordering. Returns a VersionError when installed < required.
func CheckMinimum(installed, required string) error {
	have, err := goversion.NewVersion(installed)
	if err != nil {
		return fmt.Errorf("invalid installed version %q: %w", installed, err)
	}
	want, err := goversion.NewVersion(required)
	if err != nil {
		return fmt.Errorf("invalid required version %q: %w", required, err)
	}

	if have.LessThan(want) {
		return cferrors.NewVersionError(installed, required)
	}
	return nil
}

// Preflight verifies that the interpreter meets the minimum supported version
func (i *Interpreter) Preflight() error {
	return CheckMinimum(i.Version, MinimumVersion)
}
