// Package config holds the settings of the logenv command itself.
//
// These settings only shape how the command runs and prints. The logging
// properties it renders always come from system properties and APP_LOGGING_*
// variables.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Output formats accepted by the render command.
const (
	FormatProperties = "properties"
	FormatText       = "text"
	FormatJSON       = "json"
	FormatYAML       = "yaml"
	FormatTOML       = "toml"
)

// Formats lists every accepted output format.
var Formats = []string{FormatProperties, FormatText, FormatJSON, FormatYAML, FormatTOML}

// ErrUnknownFormat is returned for an output format not in Formats.
var ErrUnknownFormat = errors.New("config: unknown output format")

// Settings configures the logenv command.
type Settings struct {
	// LogLevel of the command's own diagnostics on stderr.
	// Env: LOGENV_LOG_LEVEL
	LogLevel string `env:"LOGENV_LOG_LEVEL" envDefault:"warn"`

	// Format of the rendered property set.
	// Env: LOGENV_FORMAT
	Format string `env:"LOGENV_FORMAT" envDefault:"properties"`
}

// Load reads Settings from the environment and validates them.
func Load() (*Settings, error) {
	settings, err := env.ParseAs[Settings]()
	if err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	if err := ValidateFormat(settings.Format); err != nil {
		return nil, err
	}
	return &settings, nil
}

// ValidateFormat reports whether format is one of Formats.
func ValidateFormat(format string) error {
	if !slices.Contains(Formats, format) {
		return fmt.Errorf("%w: %q (supported: %s)", ErrUnknownFormat, format, strings.Join(Formats, ", "))
	}
	return nil
}
