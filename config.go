package logenv

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/magiconair/properties"
)

// Config is the final property set handed to the logging backend.
type Config struct {
	// Properties maps backend keys to non-blank values.
	Properties map[string]string

	// Provenance names the source of every key in Properties.
	Provenance *Provenance

	// Defaulted reports whether no source contributed and the default set was used.
	Defaulted bool
}

// Keys returns the property keys in sorted order.
func (c *Config) Keys() []string {
	keys := make([]string, 0, len(c.Properties))
	for k := range c.Properties {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// WriteTo serializes the properties as UTF-8 "key=value" lines in key order.
// Keys that cannot be written unambiguously are rejected (see checkKey).
// Any failure is fatal for the consumer and is reported as ErrConfiguration.
func (c *Config) WriteTo(w io.Writer) (int64, error) {
	p := properties.NewProperties()
	p.DisableExpansion = true
	p.WriteSeparator = "="

	for _, key := range c.Keys() {
		if err := checkKey(key); err != nil {
			return 0, err
		}
		if _, _, err := p.Set(key, c.Properties[key]); err != nil {
			return 0, fmt.Errorf("%w: set %s: %w", ErrConfiguration, key, err)
		}
	}

	n, err := p.Write(w, properties.UTF8)
	if err != nil {
		return int64(n), fmt.Errorf("%w: write properties: %w", ErrConfiguration, err)
	}
	return int64(n), nil
}

// checkKey rejects keys the property writer leaves ambiguous: the writer
// escapes spaces and colons only, so an empty key, a key containing "=", or a
// key starting with a comment marker would not load back as written.
func checkKey(key string) error {
	switch {
	case key == "":
		return fmt.Errorf("%w: empty property key", ErrConfiguration)
	case strings.Contains(key, "="):
		return fmt.Errorf("%w: property key %q contains '='", ErrConfiguration, key)
	case strings.HasPrefix(key, "#"), strings.HasPrefix(key, "!"):
		return fmt.Errorf("%w: property key %q starts with a comment marker", ErrConfiguration, key)
	}
	return nil
}

// Bytes returns the serialized form produced by WriteTo.
func (c *Config) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := c.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// PropertiesFromMap returns m as a property set with ${} expansion disabled.
func PropertiesFromMap(m map[string]string) *properties.Properties {
	p := properties.NewProperties()
	p.DisableExpansion = true

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		p.MustSet(k, m[k])
	}
	return p
}
