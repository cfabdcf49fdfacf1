// Package memory provides in-memory storage adapters for tests and
// ephemeral runs.
package memory

import (
	"sync"

	"github.com/m-kupiec/music-app/internal/core/domain"
	"github.com/m-kupiec/music-app/internal/core/ports/driven"
)

// Ensure StateStore implements the interface.
var _ driven.StateStore = (*StateStore)(nil)

// StateStore is a mutex-guarded map implementation of driven.StateStore.
type StateStore struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewStateStore creates an empty in-memory state store.
func NewStateStore() *StateStore {
	return &StateStore{
		data: make(map[string]string),
	}
}

// Get returns the value for key, or false when absent.
func (s *StateStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.data[key]
	return value, ok
}

// Set stores value under key.
func (s *StateStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = value
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (s *StateStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)
	return nil
}

// Pop returns the value for key and removes it in the same step.
func (s *StateStore) Pop(key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, ok := s.data[key]
	if !ok {
		return "", domain.ErrNotFound
	}
	delete(s.data, key)
	return value, nil
}
