package substitute

import "regexp"

// Match is one distinct placeholder occurrence found in a file.
type Match struct {
	// Target is the complete matched text, e.g. "${API_KEY}".
	Target string
	// Token is the captured name, e.g. "API_KEY".
	Token string
}

// FindMatches returns every distinct match of pattern in contents, ordered by
// first occurrence. Later matches with an already seen Target are dropped.
func FindMatches(contents string, pattern *regexp.Regexp) []Match {
	matches := make([]Match, 0)
	seen := make(map[string]struct{})

	for _, m := range pattern.FindAllStringSubmatch(contents, -1) {
		target := m[0]
		if _, ok := seen[target]; ok {
			continue
		}
		seen[target] = struct{}{}

		token := ""
		if len(m) > 1 {
			token = m[1]
		}
		matches = append(matches, Match{Target: target, Token: token})
	}

	return matches
}

// Targets returns the Target of each match.
func Targets(matches []Match) []string {
	targets := make([]string, 0, len(matches))
	for _, m := range matches {
		targets = append(targets, m.Target)
	}
	return targets
}

// Tokens returns the Token of each match.
func Tokens(matches []Match) []string {
	tokens := make([]string, 0, len(matches))
	for _, m := range matches {
		tokens = append(tokens, m.Token)
	}
	return tokens
}
