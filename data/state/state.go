// Package state provides the shared store that carries parameters derived
// from the training split (label vocabularies, class counts) to the
// validation, test and predict splits of the same logical dataset.
//
// The store is written once, sequentially, before any concurrent consumption
// begins, and is read-only thereafter; access is guarded anyway so that
// late-constructed splits on other goroutines observe a consistent view.
package state

import "sync"

// Store is a thread-safe map of named state values shared across the splits
// of one logical dataset.
type Store struct {
	mu     sync.RWMutex
	states map[string]any
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{states: make(map[string]any)}
}

// Set stores a state value under the given key, replacing any previous value.
func (s *Store) Set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[key] = value
}

// Get returns the state value stored under the given key.
func (s *Store) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.states[key]
	return v, ok
}

// Keys returns the keys currently present in the store.
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.states))
	for k := range s.states {
		keys = append(keys, k)
	}
	return keys
}

// Reset removes all stored state.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states = make(map[string]any)
}

// snapshot returns a copy of the underlying map for persistence.
func (s *Store) snapshot() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]any, len(s.states))
	for k, v := range s.states {
		out[k] = v
	}
	return out
}

// restore replaces the store contents.
func (s *Store) restore(states map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states = states
}
