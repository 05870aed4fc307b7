// Package errors provides sentinel errors and custom error types for the cashflowctl application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrInterpreterNotFound indicates that no Python interpreter is on PATH
	ErrInterpreterNotFound = errors.New("python interpreter not found")

	// ErrInterpreterTooOld indicates that the installed Python is below the required minimum
	ErrInterpreterTooOld = errors.New("python interpreter too old")

	// ErrTemplateMissing indicates that the configuration template file does not exist
	ErrTemplateMissing = errors.New("configuration template missing")
)

// VersionError represents an interpreter version below the required minimum
type VersionError struct {
	Installed string
	Required  string
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("Python %s or higher is required (found %s)", e.Required, e.Installed)
}

// Is returns true if the target error is ErrInterpreterTooOld
func (e *VersionError) Is(target error) bool {
	return target == ErrInterpreterTooOld
}

// NewVersionError creates a new VersionError
func NewVersionError(installed, required string) *VersionError {
	return &VersionError{Installed: installed, Required: required}
}

// CommandError represents an error from an external command execution
type CommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// NewCommandError creates a new CommandError
func NewCommandError(command string, args []string, stdout, stderr string, err error) *CommandError {
	return &CommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}
