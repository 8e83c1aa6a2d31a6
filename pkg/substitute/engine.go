package substitute

import (
	"strings"

	"github.com/Lambdaspire/action-substitute-secrets-in-file/pkg/secrets"
)

// Partition splits matches into those with a secret for their token and those without.
// Both slices keep the order of matches.
func Partition(matches []Match, mapping secrets.Map) (resolved []Match, missing []Match) {
	resolved = make([]Match, 0, len(matches))
	missing = make([]Match, 0)
	for _, m := range matches {
		if mapping.Has(m.Token) {
			resolved = append(resolved, m)
		} else {
			missing = append(missing, m)
		}
	}
	return resolved, missing
}

// Apply replaces every occurrence of each resolved target with its secret value,
// one target after another. Each step works on the output of the previous step,
// so a secret value containing a later target's text is rewritten as well.
// Values are inserted literally.
func Apply(contents string, resolved []Match, mapping secrets.Map) string {
	out := contents
	for _, m := range resolved {
		value, ok := mapping.Lookup(m.Token)
		if !ok {
			continue
		}
		out = strings.ReplaceAll(out, m.Target, value)
	}
	return out
}
