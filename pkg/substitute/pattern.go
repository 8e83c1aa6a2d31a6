package substitute

import (
	"fmt"
	"regexp"
	"strings"
)

// Placeholder is the marker inside a token pattern that stands for the token name.
const Placeholder = "TOKEN"

// tokenCapture matches the token name lazily and never spans a newline.
const tokenCapture = "(.*?)"

// Escape backslash-escapes regex metacharacters (plus , # - and ASCII
// whitespace) so the result matches s literally.
func Escape(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 2)
	for _, r := range s {
		if needsEscape(r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func needsEscape(r rune) bool {
	switch r {
	case '-', '[', ']', '{', '}', '(', ')', '*', '+', '?', '.', ',', '\\', '^', '$', '|', '#':
		return true
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// CompilePattern turns a literal token pattern such as "${TOKEN}" into a
// multi-line expression whose first group captures the token name. Only the
// first TOKEN becomes a capture, later ones stay literal text.
func CompilePattern(tokenPattern string) (*regexp.Regexp, error) {
	escaped := Escape(tokenPattern)
	if !strings.Contains(escaped, Placeholder) {
		return nil, fmt.Errorf("%w: %q", ErrNoPlaceholder, tokenPattern)
	}

	expr := "(?m)" + strings.Replace(escaped, Placeholder, tokenCapture, 1)
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: compiling token pattern %q: %w", ErrInvalidOption, tokenPattern, err)
	}

	return re, nil
}
