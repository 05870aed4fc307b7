package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"cashflow.dev/cashflowctl/testhelpers"
)

func TestSetupCommand(t *testing.T) {
	t.Run("bootstraps a fresh project", func(t *testing.T) {
		testhelpers.FakePython(t, "3.11.4")
		scene := testhelpers.NewScene(t, nil)

		rootCmd := NewRootCmd("test", "none", "unknown")
		rootCmd.SetArgs([]string{"setup", "--project-root", scene.Dir, "--skip-install"})
		require.NoError(t, rootCmd.Execute())

		require.Equal(t, testhelpers.DefaultTemplate, scene.ReadFile(t, ".env"))
		require.Equal(t, "web: gunicorn app:app\n", scene.ReadFile(t, "Procfile"))

		for _, pkg := range []string{"agents", "services", "models", "utils"} {
			_, err := os.Stat(filepath.Join(scene.Dir, pkg, "__init__.py"))
			require.NoError(t, err)
		}
	})

	t.Run("fails on an interpreter below the minimum", func(t *testing.T) {
		testhelpers.FakePython(t, "3.7.0")
		scene := testhelpers.NewScene(t, nil)

		rootCmd := NewRootCmd("test", "none", "unknown")
		rootCmd.SetArgs([]string{"setup", "--project-root", scene.Dir, "--skip-install"})
		require.Error(t, rootCmd.Execute())

		// No scaffolding may have happened
		_, err := os.Stat(filepath.Join(scene.Dir, "agents"))
		require.True(t, os.IsNotExist(err))
	})

	t.Run("rejects positional arguments", func(t *testing.T) {
		rootCmd := NewRootCmd("test", "none", "unknown")
		rootCmd.SetArgs([]string{"setup", "unexpected"})
		require.Error(t, rootCmd.Execute())
	})

	t.Run("accepts --no-interactive", func(t *testing.T) {
		testhelpers.FakePython(t, "3.11.4")
		scene := testhelpers.NewScene(t, nil)

		rootCmd := NewRootCmd("test", "none", "unknown")
		rootCmd.SetArgs([]string{"setup", "--project-root", scene.Dir, "--skip-install", "--no-interactive"})
		require.NoError(t, rootCmd.Execute())

		require.Equal(t, "web: gunicorn app:app\n", scene.ReadFile(t, "Procfile"))
	})
}

func TestDoctorCommand(t *testing.T) {
	t.Run("healthy after setup", func(t *testing.T) {
		testhelpers.FakePython(t, "3.11.4")
		scene := testhelpers.NewScene(t, nil)

		rootCmd := NewRootCmd("test", "none", "unknown")
		rootCmd.SetArgs([]string{"setup", "--project-root", scene.Dir, "--skip-install"})
		require.NoError(t, rootCmd.Execute())

		// Provisioning was skipped, so doctor still warns about the venv,
		// but warnings alone do not fail the command.
		doctorCmd := NewRootCmd("test", "none", "unknown")
		doctorCmd.SetArgs([]string{"doctor", "--project-root", scene.Dir})
		require.NoError(t, doctorCmd.Execute())
	})

	t.Run("reports errors on an empty directory", func(t *testing.T) {
		testhelpers.FakePython(t, "3.11.4")
		dir := t.TempDir()

		rootCmd := NewRootCmd("test", "none", "unknown")
		rootCmd.SetArgs([]string{"doctor", "--project-root", dir})
		require.Error(t, rootCmd.Execute())
	})

	t.Run("--fix --no-interactive scaffolds without prompting", func(t *testing.T) {
		testhelpers.FakePython(t, "3.11.4")
		scene := testhelpers.NewScene(t, nil)

		rootCmd := NewRootCmd("test", "none", "unknown")
		rootCmd.SetArgs([]string{"doctor", "--project-root", scene.Dir, "--fix", "--no-interactive"})
		require.NoError(t, rootCmd.Execute())

		require.Equal(t, "web: gunicorn app:app\n", scene.ReadFile(t, "Procfile"))
		_, err := os.Stat(filepath.Join(scene.Dir, "agents", "__init__.py"))
		require.NoError(t, err)
	})
}
