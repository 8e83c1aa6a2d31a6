// Package substitute replaces placeholder tokens in a file with secret values.
//
// A run compiles a token pattern such as "${TOKEN}" into an expression,
// collects the distinct placeholders found in the file, replaces those with a
// secret entry and writes the result.
package substitute

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"github.com/Lambdaspire/action-substitute-secrets-in-file/pkg/config"
	"github.com/Lambdaspire/action-substitute-secrets-in-file/pkg/format"
	"github.com/Lambdaspire/action-substitute-secrets-in-file/pkg/secrets"
	"github.com/rs/zerolog/log"
)

// Result describes a finished run.
type Result struct {
	// Matches are the distinct placeholders in first-occurrence order.
	Matches []Match
	// Resolved are the matches that had a secret.
	Resolved []Match
	// Missing are the matches left in place.
	Missing []Match
	// Contents is the substituted file content.
	Contents string
	// Written is false for dry runs.
	Written bool
}

// Run reads opts.File, substitutes every placeholder matching opts.TokenPattern
// that has an entry in the secrets mapping and writes the result to the output
// path. Unresolved placeholders are reported and left untouched. Every returned
// error wraps one of the package's Err values and means nothing was written.
func Run(opts config.SubstituteOptions) (*Result, error) {
	if err := opts.Validate(); err != nil {
		if errors.Is(err, config.ErrMissing) {
			return nil, fmt.Errorf("%w: %w", ErrInputMissing, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidOption, err)
	}

	maxSize, err := opts.MaxFileSizeBytes()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOption, err)
	}

	pattern, err := CompilePattern(opts.TokenPattern)
	if err != nil {
		return nil, err
	}

	reportOpts := ReportOptions{
		Pattern: opts.TokenPattern,
		File:    opts.File,
		Output:  opts.OutputPath(),
	}
	ReportStart(reportOpts)

	contents, mode, err := readInput(opts.File, maxSize)
	if err != nil {
		return nil, err
	}

	mapping, err := loadSecrets(opts)
	if err != nil {
		return nil, err
	}
	log.Debug().Int("count", len(mapping)).Msg("Loaded secrets")

	result := Substitute(contents, pattern, mapping)
	ReportMatches(result.Matches, reportOpts)
	ReportMissing(result.Missing, reportOpts)

	if opts.DryRun {
		log.Info().Str("output", reportOpts.Output).Msg("Dry run, output not written")
	} else {
		if err := WriteOutput(reportOpts.Output, result.Contents, mode); err != nil {
			return nil, err
		}
		result.Written = true
	}

	ReportFinished(result, reportOpts)
	return result, nil
}

// Substitute runs match, partition and replacement on in-memory contents.
func Substitute(contents string, pattern *regexp.Regexp, mapping secrets.Map) *Result {
	matches := FindMatches(contents, pattern)
	resolved, missing := Partition(matches, mapping)

	return &Result{
		Matches:  matches,
		Resolved: resolved,
		Missing:  missing,
		Contents: Apply(contents, resolved, mapping),
	}
}

func readInput(path string, maxSize int64) (string, os.FileMode, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", 0, fmt.Errorf("%w: %w", ErrFileRead, err)
	}
	if info.IsDir() {
		return "", 0, fmt.Errorf("%w: %s is a directory", ErrFileRead, path)
	}
	if maxSize > 0 && info.Size() > maxSize {
		return "", 0, fmt.Errorf("%w: %s is %s, limit is %s", ErrFileTooLarge, path, format.HumanSize(info.Size()), format.HumanSize(maxSize))
	}

	// #nosec G304 - path is supplied by the user via --file
	data, err := os.ReadFile(path)
	if err != nil {
		return "", 0, fmt.Errorf("%w: %w", ErrFileRead, err)
	}

	log.Debug().Str("file", path).Str("size", format.HumanSize(int64(len(data)))).Msg("Read input file")
	return string(data), info.Mode().Perm(), nil
}

func loadSecrets(opts config.SubstituteOptions) (secrets.Map, error) {
	if opts.SecretsFile == "" {
		mapping, err := secrets.ParseJSON(opts.SecretsJSON)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedSecrets, err)
		}
		return mapping, nil
	}

	mapping, err := secrets.LoadFile(opts.SecretsFile)
	if err != nil {
		if errors.Is(err, secrets.ErrMalformed) {
			return nil, fmt.Errorf("%w: %s: %w", ErrMalformedSecrets, opts.SecretsFile, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrFileRead, err)
	}
	return mapping, nil
}
