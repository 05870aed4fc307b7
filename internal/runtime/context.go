// Package runtime provides a context type that holds the interpreter and logger
// for use throughout the application. This avoids passing multiple parameters.
package runtime

import (
	"context"
	"os"
	"path/filepath"

	"cashflow.dev/cashflowctl/internal/pyexec"
	"cashflow.dev/cashflowctl/internal/tui"
)

// Context provides access to the resolved interpreter and output for commands
type Context struct {
	Splog       *tui.Splog
	ProjectRoot string
	Python      *pyexec.Interpreter
	Interactive bool
}

// NewContext creates a new context rooted at projectRoot.
// Output starts console-only; the rotating log file is attached by commands
// once their preflight gate clears, so a failed preflight leaves the
// filesystem untouched.
func NewContext(projectRoot string) *Context {
	return &Context{
		Splog:       tui.NewSplog(),
		ProjectRoot: projectRoot,
		Interactive: tui.IsInteractive(),
	}
}

// GetContext resolves the project root and builds a context for commands.
// The interpreter is resolved lazily by the preflight step, not here, so that
// no side effect or external invocation happens before preflight runs.
func GetContext(projectRoot string) (*Context, error) {
	if projectRoot == "" {
		projectRoot = "."
	}

	abs, err := filepath.Abs(projectRoot)
	if err != nil {
		return nil, err
	}

	return NewContext(abs), nil
}

// ResolvePython locates the system interpreter and records it on the context
func (c *Context) ResolvePython(ctx context.Context) error {
	interp, err := pyexec.FindInterpreter(ctx)
	if err != nil {
		return err
	}
	c.Python = interp
	return nil
}

// LogFilePath returns the default log file location, or "" when the home
// directory cannot be determined.
func LogFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".cashflowctl", "logs", "cashflowctl.log")
}
