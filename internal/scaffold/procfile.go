package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
)

// ProcfileName is the deployment declaration file read by hosting platforms
const ProcfileName = "Procfile"

// ProcfileContent is the single process declaration for the backend
const ProcfileContent = "web: gunicorn app:app\n"

// EnsureProcfile writes the process declaration if the Procfile does not exist.
// An existing Procfile is never modified. Returns true when the file was created.
func EnsureProcfile(projectRoot string) (bool, error) {
	path := filepath.Join(projectRoot, ProcfileName)
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("failed to stat %s: %w", ProcfileName, err)
	}

	if err := os.WriteFile(path, []byte(ProcfileContent), 0644); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", ProcfileName, err)
	}
	return true, nil
}

// HasProcfile reports whether the Procfile exists
func HasProcfile(projectRoot string) bool {
	_, err := os.Stat(filepath.Join(projectRoot, ProcfileName))
	return err == nil
}
