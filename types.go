package logenv

import (
	"context"
)

// Source provides raw key/value pairs (environment variables, system properties).
// Load is called on every Build; sources must not cache on logenv's behalf.
type Source interface {
	// Load returns the full key/value set. A source with no entries returns an empty map.
	Load(ctx context.Context) (map[string]string, error)

	// Name identifies the source in provenance and errors (e.g., "env").
	Name() string
}

// PropertySource is a read-only view of a property set.
// *properties.Properties from github.com/magiconair/properties satisfies it.
type PropertySource interface {
	Keys() []string
	Get(key string) (string, bool)
}

// ValueResolver returns the value to use for key, which is known to exist in src.
// Implementations may ignore src entirely, e.g. to substitute a decrypted value.
type ValueResolver func(src PropertySource, key string) string

// LookupValue is the default ValueResolver: a direct lookup in src.
func LookupValue(src PropertySource, key string) string {
	v, _ := src.Get(key)
	return v
}
