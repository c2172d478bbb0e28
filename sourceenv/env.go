package sourceenv

import (
	"context"
	"os"
	"strings"

	"github.com/Azhovan/logenv"
)

// SourceName identifies the environment in provenance (e.g., "env:APP_LOGGING_STATUS").
const SourceName = "env"

// Options configures environment source behavior.
type Options struct {
	// Environ returns "KEY=value" pairs. Default: os.Environ.
	Environ func() []string

	// Prefix keeps only variables starting with Prefix (case-insensitive), without stripping it.
	// Empty = all variables. logenv applies its own prefix after sanitization, so this only
	// trims the snapshot.
	Prefix string
}

type envSource struct {
	opts Options
}

// New creates an environment variable source.
func New(opts Options) logenv.Source {
	if opts.Environ == nil {
		opts.Environ = os.Environ
	}
	return &envSource{opts: opts}
}

// Load takes a fresh snapshot of the environment.
func (e *envSource) Load(ctx context.Context) (map[string]string, error) {
	result := make(map[string]string)

	for _, env := range e.opts.Environ() {
		key, value, ok := strings.Cut(env, "=")
		if !ok || key == "" {
			continue
		}

		if e.opts.Prefix != "" && !strings.HasPrefix(strings.ToUpper(key), strings.ToUpper(e.opts.Prefix)) {
			continue
		}

		result[key] = value
	}

	return result, nil
}

// Name returns SourceName.
func (e *envSource) Name() string {
	return SourceName
}
