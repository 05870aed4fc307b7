// Package testhelpers provides shared fixtures for cashflowctl tests.
package testhelpers

import (
	"os"
	"path/filepath"
	"testing"
)

// DefaultTemplate is the .env.example fixture written into every scene.
// It carries the same placeholder convention as the real template.
const DefaultTemplate = `SECRET_KEY=your_secret_key_here
DEBUG=True
MONGODB_URI=your_mongodb_uri_here
MONGODB_DATABASE=cashflow
OPENAI_API_KEY=your_openai_api_key_here
TWILIO_ACCOUNT_SID=your_twilio_account_sid_here
TWILIO_AUTH_TOKEN=your_twilio_auth_token_here
TWILIO_WHATSAPP_NUMBER=whatsapp:+14155238886
`

// DefaultRequirements is the dependency manifest fixture
const DefaultRequirements = `flask==3.0.0
flask-cors==4.0.0
python-dotenv==1.0.0
pymongo==4.6.0
openai==1.12.0
twilio==8.13.0
spacy==3.7.2
gunicorn==21.2.0
`

// Scene represents a test scene: a temporary project directory seeded with the
// backend's checked-in files (requirements manifest and config template).
type Scene struct {
	Dir string
}

// SceneSetup is a function type for customizing a scene before the test runs.
type SceneSetup func(*Scene) error

// NewScene creates a new test scene. Cleanup is automatic via t.TempDir.
func NewScene(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()

	scene := &Scene{Dir: t.TempDir()}

	if err := scene.writeDefaultFixtures(); err != nil {
		t.Fatalf("Failed to write fixture files: %v", err)
	}

	if setup != nil {
		if err := setup(scene); err != nil {
			t.Fatalf("Setup failed: %v", err)
		}
	}

	return scene
}

// writeDefaultFixtures writes the files a fresh backend checkout would contain
func (s *Scene) writeDefaultFixtures() error {
	if err := os.WriteFile(filepath.Join(s.Dir, "requirements.txt"), []byte(DefaultRequirements), 0644); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.Dir, ".env.example"), []byte(DefaultTemplate), 0644)
}

// WriteFile writes a file inside the scene directory
func (s *Scene) WriteFile(t *testing.T, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(s.Dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
}

// ReadFile reads a file inside the scene directory
func (s *Scene) ReadFile(t *testing.T, name string) string {
	t.Helper()
	content, err := os.ReadFile(filepath.Join(s.Dir, name))
	if err != nil {
		t.Fatalf("Failed to read %s: %v", name, err)
	}
	return string(content)
}

// FakePython installs a stub python3 on PATH that reports the given version.
// HOME is redirected as well so runs never log into the real home directory.
func FakePython(t *testing.T, version string) {
	t.Helper()
	binDir := t.TempDir()
	script := "#!/bin/sh\necho \"Python " + version + "\"\n"
	if err := os.WriteFile(filepath.Join(binDir, "python3"), []byte(script), 0755); err != nil {
		t.Fatalf("Failed to write fake python: %v", err)
	}
	t.Setenv("PATH", binDir)
	t.Setenv("HOME", t.TempDir())
}
