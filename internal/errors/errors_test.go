package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVersionError(t *testing.T) {
	t.Parallel()

	t.Run("formats actual vs required", func(t *testing.T) {
		t.Parallel()
		err := NewVersionError("3.7.9", "3.8")
		require.Equal(t, "Python 3.8 or higher is required (found 3.7.9)", err.Error())
	})

	t.Run("matches ErrInterpreterTooOld via errors.Is", func(t *testing.T) {
		t.Parallel()
		var err error = NewVersionError("3.6.0", "3.8")
		require.ErrorIs(t, err, ErrInterpreterTooOld)
	})

	t.Run("recovered via errors.As", func(t *testing.T) {
		t.Parallel()
		wrapped := fmt.Errorf("preflight: %w", NewVersionError("3.7.0", "3.8"))
		var verr *VersionError
		require.ErrorAs(t, wrapped, &verr)
		require.Equal(t, "3.7.0", verr.Installed)
		require.Equal(t, "3.8", verr.Required)
	})
}

func TestCommandError(t *testing.T) {
	t.Parallel()

	t.Run("includes command, args and stderr", func(t *testing.T) {
		t.Parallel()
		err := NewCommandError("pip", []string{"install", "-r", "requirements.txt"}, "", "no such file", errors.New("exit status 1"))
		require.Contains(t, err.Error(), "command failed: pip")
		require.Contains(t, err.Error(), "requirements.txt")
		require.Contains(t, err.Error(), "stderr: no such file")
	})

	t.Run("unwraps the cause", func(t *testing.T) {
		t.Parallel()
		cause := errors.New("exit status 2")
		err := NewCommandError("python3", []string{"-m", "venv", "venv"}, "", "", cause)
		require.ErrorIs(t, err, cause)
	})
}
