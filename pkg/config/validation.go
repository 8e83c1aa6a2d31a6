package config

import (
	"errors"
	"fmt"

	"github.com/Lambdaspire/action-substitute-secrets-in-file/pkg/format"
)

// ErrMissing is wrapped by validation errors about absent inputs.
var ErrMissing = errors.New("missing required input")

// ValidateRequired validates that a required value is not empty.
func ValidateRequired(value string, fieldName string) error {
	if value == "" {
		return fmt.Errorf("%w: %s cannot be empty", ErrMissing, fieldName)
	}
	return nil
}

// ValidateSecretsSource validates that exactly one secrets source is set.
func ValidateSecretsSource(secretsJSON string, secretsFile string) error {
	if secretsJSON == "" && secretsFile == "" {
		return fmt.Errorf("%w: secrets json or secrets file must be set", ErrMissing)
	}
	if secretsJSON != "" && secretsFile != "" {
		return errors.New("secrets json and secrets file are mutually exclusive")
	}
	return nil
}

// ParseMaxFileSize parses a human-readable size string (e.g., "500MB", "1GB") into bytes.
func ParseMaxFileSize(sizeStr string) (int64, error) {
	size, err := format.ParseHumanSize(sizeStr)
	if err != nil {
		return 0, fmt.Errorf("failed to parse max file size: %w", err)
	}
	if size < 0 {
		return 0, fmt.Errorf("max file size must not be negative, got %s", sizeStr)
	}
	return size, nil
}
