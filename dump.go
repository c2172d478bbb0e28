package logenv

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// DumpOption configures dump behavior using the functional options pattern.
type DumpOption func(*dumpConfig)

// dumpFormat selects the DumpEffective output encoding.
type dumpFormat int

const (
	formatText dumpFormat = iota
	formatJSON
	formatYAML
	formatTOML
)

// dumpConfig holds options for DumpEffective.
type dumpConfig struct {
	withSources bool       // Include source attribution for each key
	format      dumpFormat // Output encoding
	indent      string     // Indentation for JSON output (default: "  ")
}

// WithSources includes source attribution for each key in the output.
func WithSources() DumpOption {
	return func(cfg *dumpConfig) {
		cfg.withSources = true
	}
}

// AsJSON outputs the properties as a JSON object.
func AsJSON() DumpOption {
	return func(cfg *dumpConfig) {
		cfg.format = formatJSON
	}
}

// AsYAML outputs the properties as a YAML mapping.
func AsYAML() DumpOption {
	return func(cfg *dumpConfig) {
		cfg.format = formatYAML
	}
}

// AsTOML outputs the properties as a TOML table with quoted dotted keys.
func AsTOML() DumpOption {
	return func(cfg *dumpConfig) {
		cfg.format = formatTOML
	}
}

// WithIndent sets the indentation for JSON output.
// Default is two spaces ("  ").
func WithIndent(indent string) DumpOption {
	return func(cfg *dumpConfig) {
		cfg.indent = indent
	}
}

// sourcedValue is a property value with its source, used when WithSources is set.
type sourcedValue struct {
	Value  string `json:"value" yaml:"value" toml:"value"`
	Source string `json:"source" yaml:"source" toml:"source"`
}

// DumpEffective writes a human-readable representation of cfg's properties in key order.
// Unlike Config.WriteTo, the output is meant for inspection, not for the backend.
// Returns an error if encoding or writing fails.
func DumpEffective(w io.Writer, cfg *Config, opts ...DumpOption) error {
	if cfg == nil {
		return fmt.Errorf("%w: config is nil", ErrInvalidArgument)
	}

	config := dumpConfig{
		indent: "  ",
	}
	for _, opt := range opts {
		opt(&config)
	}

	switch config.format {
	case formatJSON:
		return dumpAsJSON(w, cfg, config)
	case formatYAML:
		return dumpEncoded(w, cfg, config, yaml.Marshal)
	case formatTOML:
		return dumpEncoded(w, cfg, config, toml.Marshal)
	default:
		return dumpAsText(w, cfg, config)
	}
}

// dumpAsText outputs properties in text format (key: "value").
func dumpAsText(w io.Writer, cfg *Config, config dumpConfig) error {
	for _, key := range cfg.Keys() {
		line := fmt.Sprintf("%s: %q", key, cfg.Properties[key])
		if config.withSources {
			if source := cfg.Provenance.SourceOf(key); source != "" {
				line += fmt.Sprintf(" (source: %s)", source)
			}
		}
		line += "\n"

		if _, err := io.WriteString(w, line); err != nil {
			return fmt.Errorf("write error: %w", err)
		}
	}

	return nil
}

// dumpAsJSON outputs properties as a JSON object.
func dumpAsJSON(w io.Writer, cfg *Config, config dumpConfig) error {
	result := buildStructure(cfg, config)

	var data []byte
	var err error
	if config.indent != "" {
		data, err = json.MarshalIndent(result, "", config.indent)
	} else {
		data, err = json.Marshal(result)
	}
	if err != nil {
		return fmt.Errorf("json marshal error: %w", err)
	}

	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write error: %w", err)
	}
	return nil
}

// dumpEncoded outputs properties through a marshal function (YAML, TOML).
func dumpEncoded(w io.Writer, cfg *Config, config dumpConfig, marshal func(any) ([]byte, error)) error {
	data, err := marshal(buildStructure(cfg, config))
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write error: %w", err)
	}
	return nil
}

// buildStructure returns the properties as a map, with sources attached when requested.
func buildStructure(cfg *Config, config dumpConfig) any {
	if !config.withSources {
		result := make(map[string]string, len(cfg.Properties))
		for k, v := range cfg.Properties {
			result[k] = v
		}
		return result
	}

	result := make(map[string]sourcedValue, len(cfg.Properties))
	for k, v := range cfg.Properties {
		result[k] = sourcedValue{Value: v, Source: cfg.Provenance.SourceOf(k)}
	}
	return result
}
