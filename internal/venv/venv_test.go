package venv

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExists(t *testing.T) {
	t.Parallel()

	t.Run("false for an empty project", func(t *testing.T) {
		t.Parallel()
		require.False(t, Exists(t.TempDir()))
	})

	t.Run("true when the venv directory is present", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, DirName), 0755))
		require.True(t, Exists(dir))
	})

	t.Run("false when venv is a plain file", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, DirName), []byte("x"), 0644))
		require.False(t, Exists(dir))
	})
}

func TestEnvPaths(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	env := envFor(dir)

	require.Equal(t, filepath.Join(dir, DirName), env.Root)

	binDir := "bin"
	if runtime.GOOS == "windows" {
		binDir = "Scripts"
	}
	require.Equal(t, filepath.Join(dir, DirName, binDir, "python"), env.Python)
	require.Equal(t, filepath.Join(dir, DirName, binDir, "pip"), env.Pip)
}
