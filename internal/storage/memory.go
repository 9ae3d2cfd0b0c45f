// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"context"
	"sync"
)

// MemoryStore keeps flags in a map for the lifetime of the process.
type MemoryStore struct {
	mu     sync.RWMutex
	flags  map[string]bool
	closed bool
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{flags: make(map[string]bool)}
}

func (s *MemoryStore) Get(_ context.Context, key string) (bool, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return false, false, &StoreError{Op: "get", Key: key, Err: ErrClosed}
	}
	v, ok := s.flags[key]
	return v, ok, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return &StoreError{Op: "set", Key: key, Err: ErrClosed}
	}
	s.flags[key] = value
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return &StoreError{Op: "delete", Key: key, Err: ErrClosed}
	}
	delete(s.flags, key)
	return nil
}

func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
