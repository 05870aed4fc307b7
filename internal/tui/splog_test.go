package tui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplogAttachFile(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "logs", "cashflowctl.log")

	splog := NewSplog()

	// Console-only construction must not touch the filesystem
	_, err := os.Stat(filepath.Join(dir, "logs"))
	require.True(t, os.IsNotExist(err))

	require.NoError(t, splog.AttachFile(logPath))
	splog.Info("provisioning started")
	require.NoError(t, splog.Close())

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(content), "provisioning started")
}

func TestSplogAttachFileTwiceIsNoOp(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.log")
	second := filepath.Join(dir, "second.log")

	splog := NewSplog()
	require.NoError(t, splog.AttachFile(first))
	require.NoError(t, splog.AttachFile(second))
	splog.Info("hello")
	require.NoError(t, splog.Close())

	_, err := os.Stat(second)
	require.True(t, os.IsNotExist(err))
}

func TestSplogAttachFileEmptyPath(t *testing.T) {
	splog := NewSplog()
	require.NoError(t, splog.AttachFile(""))
	splog.Info("console only")
	require.NoError(t, splog.Close())
}
