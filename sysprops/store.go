package sysprops

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/magiconair/properties"
)

// ErrInvalidDefinition is returned when a "key=value" definition has no key.
var ErrInvalidDefinition = errors.New("sysprops: invalid property definition")

// Store is a concurrency-safe property set.
type Store struct {
	mu    sync.RWMutex
	props *properties.Properties
}

// NewStore creates an empty Store. Values are stored verbatim (no ${} expansion).
func NewStore() *Store {
	p := properties.NewProperties()
	p.DisableExpansion = true
	return &Store{props: p}
}

// Set stores value under key and returns the previous value, if any.
func (s *Store) Set(key, value string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.props.MustSet(key, value)
}

// Get returns the value stored under key.
func (s *Store) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.props.Get(key)
}

// Delete removes key.
func (s *Store) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.props.Delete(key)
}

// Len returns the number of stored properties.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.props.Len()
}

// Snapshot returns a copy of all properties.
func (s *Store) Snapshot() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.props.Map()
}

// Define stores a "key=value" definition. A definition without "=" sets an empty value.
// Surrounding whitespace of the key is trimmed; the value is kept as-is.
func (s *Store) Define(def string) error {
	key, value, _ := strings.Cut(def, "=")
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("%w: %q", ErrInvalidDefinition, def)
	}
	s.Set(key, value)
	return nil
}

var defaultStore = NewStore()

// Default returns the process-wide Store.
func Default() *Store {
	return defaultStore
}

// Set stores value under key in the process-wide Store.
func Set(key, value string) (string, bool) {
	return defaultStore.Set(key, value)
}

// Get returns the value of key in the process-wide Store.
func Get(key string) (string, bool) {
	return defaultStore.Get(key)
}

// Delete removes key from the process-wide Store.
func Delete(key string) {
	defaultStore.Delete(key)
}

// Define stores a "key=value" definition in the process-wide Store.
func Define(def string) error {
	return defaultStore.Define(def)
}
