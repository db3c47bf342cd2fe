// Package requestctx carries request-scoped key-value state on a
// context.Context.
//
// API wrappers use the store both for runtime metadata seeded from the
// process environment (service name, version, instance id) and as a
// per-request cache for values fetched over RPC. Each request gets its own
// Store; a Store is safe for concurrent use.
package requestctx

import (
	"context"
	"strings"
	"sync"
)

// Store is a mutable string-to-string map scoped to a single request.
type Store struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{values: make(map[string]string)}
}

// NewStoreFromEnviron creates a store seeded from environment entries in
// "KEY=value" form, as returned by os.Environ. Malformed entries are
// skipped.
func NewStoreFromEnviron(environ []string) *Store {
	s := NewStore()
	for _, entry := range environ {
		idx := strings.Index(entry, "=")
		if idx < 1 {
			continue
		}
		s.values[entry[:idx]] = entry[idx+1:]
	}
	return s
}

// Get returns the value for key, or the empty string when absent.
func (s *Store) Get(key string) string {
	v, _ := s.Lookup(key)
	return v
}

// GetDefault returns the value for key, or def when absent.
func (s *Store) GetDefault(key, def string) string {
	if v, ok := s.Lookup(key); ok {
		return v
	}
	return def
}

// Lookup returns the value for key and whether it is present.
func (s *Store) Lookup(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

// Put sets the value for key.
func (s *Store) Put(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

// Items returns a copy of the store's contents.
func (s *Store) Items() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make(map[string]string, len(s.values))
	for k, v := range s.values {
		items[k] = v
	}
	return items
}

// Clear removes all entries.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = make(map[string]string)
}

type contextKey struct{}

// WithStore returns a context carrying the store.
func WithStore(ctx context.Context, s *Store) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext returns the store carried by ctx, or nil when none is
// attached.
func FromContext(ctx context.Context) *Store {
	s, _ := ctx.Value(contextKey{}).(*Store)
	return s
}
