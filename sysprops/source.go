package sysprops

import (
	"context"

	"github.com/Azhovan/logenv"
)

// SourceName identifies system properties in provenance (e.g., "sysprops:app.logging.status").
const SourceName = "sysprops"

// Options configures the system-property source.
type Options struct {
	// Store to read. Default: the process-wide Store.
	Store *Store
}

type propSource struct {
	store *Store
}

// New creates a source reading a snapshot of the Store on every Load.
func New(opts Options) logenv.Source {
	if opts.Store == nil {
		opts.Store = defaultStore
	}
	return &propSource{store: opts.Store}
}

// Load returns a snapshot of the store.
func (p *propSource) Load(ctx context.Context) (map[string]string, error) {
	return p.store.Snapshot(), nil
}

// Name returns SourceName.
func (p *propSource) Name() string {
	return SourceName
}
