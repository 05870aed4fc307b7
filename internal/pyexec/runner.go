// Package pyexec provides a wrapper around Python interpreter and pip command execution.
package pyexec

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"
	"time"

	cferrors "cashflow.dev/cashflowctl/internal/errors"
)

// DefaultCommandTimeout is the default timeout for external commands.
// Dependency installation can legitimately take several minutes.
const DefaultCommandTimeout = 10 * time.Minute

// CommandRunner handles execution of external commands for provisioning
type CommandRunner struct {
	workingDir string
}

// NewCommandRunner creates a new CommandRunner rooted at workingDir
func NewCommandRunner(workingDir string) *CommandRunner {
	return &CommandRunner{workingDir: workingDir}
}

// Run executes a command with the given context and returns the trimmed stdout
func (r *CommandRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	return r.runInternal(ctx, name, true, false, args...)
}

// RunStreaming executes a command with stdout/stderr connected to the terminal.
// Used for long install steps where the operator wants to see progress.
func (r *CommandRunner) RunStreaming(ctx context.Context, name string, args ...string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultCommandTimeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, name, args...)
	if r.workingDir != "" {
		cmd.Dir = r.workingDir
	}
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return cferrors.NewCommandError(name, args, "", "", ctx.Err())
		}
		return cferrors.NewCommandError(name, args, "", "", err)
	}
	return nil
}

// RunCombined executes a command and returns trimmed stdout and stderr joined.
// Some interpreters print their version banner on stderr.
func (r *CommandRunner) RunCombined(ctx context.Context, name string, args ...string) (string, error) {
	return r.runInternal(ctx, name, true, true, args...)
}

// runInternal is the internal implementation that handles timeout and capture
func (r *CommandRunner) runInternal(ctx context.Context, name string, trim, combined bool, args ...string) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	// If no timeout/deadline is set in the context, add the default one
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultCommandTimeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, name, args...)
	if r.workingDir != "" {
		cmd.Dir = r.workingDir
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", cferrors.NewCommandError(name, args, stdout.String(), stderr.String(), ctx.Err())
		}
		return "", cferrors.NewCommandError(name, args, stdout.String(), stderr.String(), err)
	}

	out := stdout.String()
	if combined {
		out = stdout.String() + stderr.String()
	}
	if trim {
		return strings.TrimSpace(out), nil
	}
	return out, nil
}
