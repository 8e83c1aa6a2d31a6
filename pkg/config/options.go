// Package config provides the configuration type and validation helpers for a substitution run.
package config

// SubstituteOptions holds the inputs of a single substitution run.
type SubstituteOptions struct {
	// File is the path of the file to scan
	File string
	// Output is where the result is written, defaults to File
	Output string
	// TokenPattern is the literal pattern containing the TOKEN placeholder, e.g. "${TOKEN}"
	TokenPattern string
	// SecretsJSON is a JSON object mapping token names to values
	SecretsJSON string
	// SecretsFile is a JSON or YAML file holding the mapping, alternative to SecretsJSON
	SecretsFile string
	// MaxFileSize is a human-readable upper bound for File, empty means unlimited
	MaxFileSize string
	// DryRun skips writing the output
	DryRun bool
}

// DefaultSubstituteOptions returns the defaults used by the CLI.
func DefaultSubstituteOptions() SubstituteOptions {
	return SubstituteOptions{
		MaxFileSize: "",
		DryRun:      false,
	}
}

// OutputPath returns Output, or File when no output was given.
func (o SubstituteOptions) OutputPath() string {
	if o.Output != "" {
		return o.Output
	}
	return o.File
}

// Validate checks that every required input is present. It performs no file I/O.
func (o SubstituteOptions) Validate() error {
	if err := ValidateRequired(o.File, "file"); err != nil {
		return err
	}
	if err := ValidateRequired(o.TokenPattern, "token pattern"); err != nil {
		return err
	}
	return ValidateSecretsSource(o.SecretsJSON, o.SecretsFile)
}

// MaxFileSizeBytes returns the parsed MaxFileSize, 0 when unlimited.
func (o SubstituteOptions) MaxFileSizeBytes() (int64, error) {
	if o.MaxFileSize == "" {
		return 0, nil
	}
	return ParseMaxFileSize(o.MaxFileSize)
}
