package pyexec

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	cferrors "cashflow.dev/cashflowctl/internal/errors"
)

func TestCommandRunner_Run(t *testing.T) {
	t.Parallel()

	t.Run("returns trimmed stdout", func(t *testing.T) {
		t.Parallel()
		runner := NewCommandRunner("")
		out, err := runner.Run(context.Background(), "sh", "-c", "echo '  hello  '")
		require.NoError(t, err)
		require.Equal(t, "hello", out)
	})

	t.Run("runs in the configured working directory", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		runner := NewCommandRunner(dir)
		out, err := runner.Run(context.Background(), "pwd")
		require.NoError(t, err)
		require.Contains(t, out, dir)
	})

	t.Run("non-zero exit produces a CommandError with stderr", func(t *testing.T) {
		t.Parallel()
		runner := NewCommandRunner("")
		_, err := runner.Run(context.Background(), "sh", "-c", "echo boom >&2; exit 3")
		require.Error(t, err)

		var cmdErr *cferrors.CommandError
		require.ErrorAs(t, err, &cmdErr)
		require.Equal(t, "sh", cmdErr.Command)
		require.Contains(t, cmdErr.Stderr, "boom")
	})

	t.Run("missing binary produces a CommandError", func(t *testing.T) {
		t.Parallel()
		runner := NewCommandRunner("")
		_, err := runner.Run(context.Background(), "definitely-not-a-real-binary-xyz")
		require.Error(t, err)

		var cmdErr *cferrors.CommandError
		require.ErrorAs(t, err, &cmdErr)
	})

	t.Run("context deadline aborts the command", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		runner := NewCommandRunner("")
		_, err := runner.Run(ctx, "sleep", "10")
		require.Error(t, err)
	})
}

func TestCommandRunner_RunCombined(t *testing.T) {
	t.Parallel()

	runner := NewCommandRunner("")
	out, err := runner.RunCombined(context.Background(), "sh", "-c", "echo out; echo err >&2")
	require.NoError(t, err)
	require.Contains(t, out, "out")
	require.Contains(t, out, "err")
}
