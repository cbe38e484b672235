// Package memory provides an in-memory key-value store for tests and
// ephemeral runs.
package memory

import (
	"context"
	"sync"
)

// Store is a mutex-guarded map implementing the persistence contract. The
// error hooks let tests exercise adapter-failure paths.
type Store struct {
	mu     sync.RWMutex
	values map[string]string

	// When set, the corresponding operation fails with the given error.
	GetErr    error
	SetErr    error
	RemoveErr error
}

// NewStore constructs an empty Store.
func NewStore() *Store {
	return &Store{values: make(map[string]string)}
}

// Get returns the value stored under key, with ok=false when absent.
func (s *Store) Get(_ context.Context, key string) (string, bool, error) {
	if s.GetErr != nil {
		return "", false, s.GetErr
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.values[key]
	return value, ok, nil
}

// Set writes value under key.
func (s *Store) Set(_ context.Context, key, value string) error {
	if s.SetErr != nil {
		return s.SetErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

// Remove deletes the value under key. Removing an absent key is not an error.
func (s *Store) Remove(_ context.Context, key string) error {
	if s.RemoveErr != nil {
		return s.RemoveErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

// Len reports how many keys are stored.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.values)
}
