// Package scaffold creates the fixed project layout the CashFlow backend expects:
// importable package directories with marker files, and the deployment Procfile.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
)

// PackageDirs is the fixed set of Python package directories the backend imports from
var PackageDirs = []string{"agents", "services", "models", "utils"}

// MarkerFileName is the empty file whose presence makes a directory an importable package
const MarkerFileName = "__init__.py"

// EnsurePackageDirs creates each package directory and its marker file if absent.
// Existing directories and markers are left untouched.
func EnsurePackageDirs(projectRoot string) error {
	for _, dir := range PackageDirs {
		dirPath := filepath.Join(projectRoot, dir)
		if err := os.MkdirAll(dirPath, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}

		markerPath := filepath.Join(dirPath, MarkerFileName)
		if _, err := os.Stat(markerPath); os.IsNotExist(err) {
			if err := os.WriteFile(markerPath, []byte{}, 0644); err != nil {
				return fmt.Errorf("failed to create %s: %w", filepath.Join(dir, MarkerFileName), err)
			}
		}
	}
	return nil
}

// HasPackageDirs reports whether every package directory and marker file exists
func HasPackageDirs(projectRoot string) bool {
	for _, dir := range PackageDirs {
		markerPath := filepath.Join(projectRoot, dir, MarkerFileName)
		if _, err := os.Stat(markerPath); err != nil {
			return false
		}
	}
	return true
}
