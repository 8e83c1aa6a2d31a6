// Package secrets parses the mapping from token names to replacement values.
package secrets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

// ErrMalformed is wrapped by every parse failure of a secrets payload.
var ErrMalformed = errors.New("malformed secrets")

// Map associates token names with replacement values.
type Map map[string]string

// Lookup returns the value for token and whether the token has an entry.
func (m Map) Lookup(token string) (string, bool) {
	v, ok := m[token]
	return v, ok
}

// Has reports whether token has an entry, even an empty one.
func (m Map) Has(token string) bool {
	_, ok := m[token]
	return ok
}

// Keys returns the token names of the map in no particular order.
func (m Map) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// ParseJSON parses a JSON object payload. String values are used as is, any
// other value by its raw JSON text. Duplicate keys resolve to the last one.
func ParseJSON(payload string) (Map, error) {
	if !gjson.Valid(payload) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrMalformed)
	}

	root := gjson.Parse(payload)
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: expected a JSON object, got %s", ErrMalformed, describe(root))
	}

	m := make(Map)
	root.ForEach(func(key, value gjson.Result) bool {
		if value.Type == gjson.String {
			m[key.String()] = value.String()
		} else {
			m[key.String()] = value.Raw
		}
		return true
	})

	return m, nil
}

func describe(r gjson.Result) string {
	if r.IsArray() {
		return "array"
	}
	return strings.ToLower(r.Type.String())
}

// ParseYAML parses a YAML mapping of scalars. Scalar values are used by their
// literal text. An empty document yields an empty map.
func ParseYAML(data []byte) (Map, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	m := make(Map)
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return m, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: expected a YAML mapping", ErrMalformed)
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		if value.Kind == yaml.AliasNode && value.Alias != nil {
			value = value.Alias
		}
		if value.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%w: value of %q is not a scalar", ErrMalformed, key.Value)
		}
		m[key.Value] = value.Value
	}

	return m, nil
}

// LoadFile reads a secrets file. Files ending in .yml or .yaml are parsed as
// YAML, everything else as JSON.
func LoadFile(path string) (Map, error) {
	// #nosec G304 - path is supplied by the user via --secrets-file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return ParseYAML(data)
	default:
		return ParseJSON(string(data))
	}
}
