package params

import (
	"fmt"
	"math"
	"sync"
)

// Source supplies the current coefficients. Readers take one snapshot per frame.
type Source interface {
	Snapshot() Params
}

// Store is the shared parameter record. Writers (console, config reload) and the frame
// loop may run on different goroutines; readers only ever see whole snapshots.
type Store struct {
	mu      sync.RWMutex
	current Params
	version uint64
}

// NewStore returns a store holding the sanitised initial values.
func NewStore(initial Params) *Store {
	return &Store{current: initial.Sanitize()}
}

// Snapshot returns a copy of the current record. Params holds only values, so the
// returned struct shares nothing with the store.
func (s *Store) Snapshot() Params {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Version increases on every successful change.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Get returns the current value of key.
func (s *Store) Get(key string) (float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.current.Get(key)
	if !ok {
		return 0, fmt.Errorf("unknown parameter %q", key)
	}
	return v, nil
}

// Set stores v under key, clamped to the key's range, and returns the applied value.
// NaN or infinite values reset the key to its default.
func (s *Store) Set(key string, v float64) (float64, error) {
	r, ok := Lookup(key)
	if !ok {
		return 0, fmt.Errorf("unknown parameter %q", key)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		def := Defaults()
		v = *def.field(r.Key)
	}
	v = r.Clamp(v)

	s.mu.Lock()
	defer s.mu.Unlock()
	*s.current.field(r.Key) = v
	s.version++
	return v, nil
}

// Reset restores key to its default; an empty key restores every value.
func (s *Store) Reset(key string) error {
	def := Defaults()
	if key == "" {
		s.Replace(def)
		return nil
	}
	r, ok := Lookup(key)
	if !ok {
		return fmt.Errorf("unknown parameter %q", key)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	*s.current.field(r.Key) = *def.field(r.Key)
	s.version++
	return nil
}

// Replace swaps in a whole record after sanitising it.
func (s *Store) Replace(p Params) {
	p = p.Sanitize()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = p
	s.version++
}
