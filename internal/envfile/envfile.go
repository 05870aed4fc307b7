// Package envfile materializes the backend's .env configuration from its
// checked-in template and performs the placeholder scan.
package envfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	cferrors "cashflow.dev/cashflowctl/internal/errors"
)

// FileName is the working configuration file read by the backend at startup
const FileName = ".env"

// TemplateName is the checked-in configuration template
const TemplateName = ".env.example"

// PlaceholderSubstring marks template values the operator has not filled in yet.
// This is a pure substring check, not semantic validation.
const PlaceholderSubstring = "your_"

// RequiredCategories are the value groups the operator must supply by hand
var RequiredCategories = []string{
	"MongoDB Atlas connection string (MONGODB_URI)",
	"OpenAI API key (OPENAI_API_KEY)",
	"Twilio WhatsApp credentials (TWILIO_ACCOUNT_SID, TWILIO_AUTH_TOKEN, TWILIO_WHATSAPP_NUMBER)",
}

// Materialize copies the template to the working configuration file if one does
// not already exist. An existing file is never overwritten. Returns true when
// the file was created from the template.
func Materialize(projectRoot string) (bool, error) {
	envPath := filepath.Join(projectRoot, FileName)
	if _, err := os.Stat(envPath); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("failed to stat %s: %w", FileName, err)
	}

	templatePath := filepath.Join(projectRoot, TemplateName)
	content, err := os.ReadFile(templatePath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, fmt.Errorf("%w: %s", cferrors.ErrTemplateMissing, TemplateName)
		}
		return false, fmt.Errorf("failed to read %s: %w", TemplateName, err)
	}

	if err := os.WriteFile(envPath, content, 0600); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", FileName, err)
	}
	return true, nil
}

// HasPlaceholders reports whether the working configuration still contains the
// placeholder substring. An absent file counts as having no placeholders.
func HasPlaceholders(projectRoot string) (bool, error) {
	content, err := os.ReadFile(filepath.Join(projectRoot, FileName))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read %s: %w", FileName, err)
	}
	return strings.Contains(string(content), PlaceholderSubstring), nil
}

// Exists reports whether the working configuration file is present
func Exists(projectRoot string) bool {
	_, err := os.Stat(filepath.Join(projectRoot, FileName))
	return err == nil
}
