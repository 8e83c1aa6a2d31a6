package substitute

import (
	"github.com/rs/zerolog/log"
)

// ReportOptions carries the context logged with every diagnostic of a run.
type ReportOptions struct {
	Pattern string
	File    string
	Output  string
}

// ReportStart logs which pattern is applied to which file.
func ReportStart(opts ReportOptions) {
	log.Info().
		Str("pattern", opts.Pattern).
		Str("file", opts.File).
		Str("output", opts.Output).
		Msg("Substituting tokens")
}

// ReportMatches logs the distinct tokens found.
func ReportMatches(matches []Match, opts ReportOptions) {
	log.Info().
		Str("file", opts.File).
		Int("count", len(matches)).
		Strs("tokens", Tokens(matches)).
		Msg("Found tokens")

	for _, m := range matches {
		log.Debug().Str("target", m.Target).Str("token", m.Token).Msg("Token")
	}
}

// ReportMissing warns about matches without a secret. Nothing is logged when
// every match resolved.
func ReportMissing(missing []Match, opts ReportOptions) {
	if len(missing) == 0 {
		return
	}

	log.Warn().
		Str("file", opts.File).
		Int("count", len(missing)).
		Strs("missing", Targets(missing)).
		Msg("Missing secrets")
}

// ReportFinished logs the end of a run. Secret values are never logged.
func ReportFinished(result *Result, opts ReportOptions) {
	event := log.Info().
		Str("output", opts.Output).
		Int("replaced", len(result.Resolved)).
		Bool("written", result.Written)
	if !result.Written {
		event = event.Bool("dryRun", true)
	}
	event.Msg("Finished substituting")
}
