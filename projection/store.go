// SPDX-License-Identifier: MIT

package projection

import "sync"

// Store holds computed vectors. Implementations must be safe for concurrent
// use. The Cache never mutates a slice after saving it and never hands a
// stored slice to callers.
type Store interface {
	Load(k Key) ([]float64, bool)
	Save(k Key, v []float64)
}

// MapStore is the default Store: a map guarded by an RWMutex.
type MapStore struct {
	mu sync.RWMutex
	m  map[Key][]float64
}

// NewMapStore returns an empty MapStore.
func NewMapStore() *MapStore {
	return &MapStore{m: make(map[Key][]float64)}
}

// Load returns the vector stored under k.
func (s *MapStore) Load(k Key) ([]float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.m[k]

	return v, ok
}

// Save stores v under k, replacing any previous vector.
func (s *MapStore) Save(k Key, v []float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[k] = v
}

// Len reports the number of stored keys.
func (s *MapStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.m)
}
