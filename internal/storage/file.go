// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/einarsolbakken/juleroerbord/internal/util"
)

// fileFormatVersion is written into every flag document.
const fileFormatVersion = 1

// flagDocument is the on-disk layout of a FileStore.
type flagDocument struct {
	Version   int             `json:"version"`
	Flags     map[string]bool `json:"flags"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// FileStore keeps flags in a JSON file. Every write replaces the file
// atomically with mode 0600.
type FileStore struct {
	mu     sync.Mutex
	path   string
	closed bool
	now    func() time.Time
}

// NewFileStore returns a FileStore backed by path. The file is created on
// the first write.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, &StoreError{Op: "open", Err: ErrEmptyPath}
	}
	return &FileStore{path: path, now: time.Now}, nil
}

// Path returns the backing file.
func (s *FileStore) Path() string {
	return s.path
}

// Get reads key. A corrupt file reads as "not found", the same way Set
// and Delete overwrite it; a corrupt flag only costs re-entering the code.
func (s *FileStore) Get(_ context.Context, key string) (bool, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false, false, &StoreError{Op: "get", Key: key, Err: ErrClosed}
	}

	doc, err := s.load()
	if errors.Is(err, ErrCorrupt) {
		return false, false, nil
	}
	if err != nil {
		return false, false, &StoreError{Op: "get", Key: key, Err: err}
	}
	v, ok := doc.Flags[key]
	return v, ok, nil
}

func (s *FileStore) Set(_ context.Context, key string, value bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return &StoreError{Op: "set", Key: key, Err: ErrClosed}
	}

	doc, err := s.load()
	if err != nil && !errors.Is(err, ErrCorrupt) {
		return &StoreError{Op: "set", Key: key, Err: err}
	}
	// A corrupt file is overwritten rather than blocking the write.
	if doc.Flags == nil {
		doc.Flags = make(map[string]bool)
	}
	doc.Flags[key] = value
	if err := s.save(doc); err != nil {
		return &StoreError{Op: "set", Key: key, Err: err}
	}
	return nil
}

func (s *FileStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return &StoreError{Op: "delete", Key: key, Err: ErrClosed}
	}

	doc, err := s.load()
	if err != nil && !errors.Is(err, ErrCorrupt) {
		return &StoreError{Op: "delete", Key: key, Err: err}
	}
	if _, ok := doc.Flags[key]; !ok && err == nil {
		return nil
	}
	if doc.Flags == nil {
		doc.Flags = make(map[string]bool)
	}
	delete(doc.Flags, key)
	if err := s.save(doc); err != nil {
		return &StoreError{Op: "delete", Key: key, Err: err}
	}
	return nil
}

func (s *FileStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// load reads the document. A missing file yields an empty document.
func (s *FileStore) load() (flagDocument, error) {
	doc := flagDocument{Version: fileFormatVersion, Flags: make(map[string]bool)}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return doc, nil
		}
		return doc, fmt.Errorf("failed to read flag file: %w", err)
	}
	if len(data) == 0 {
		return doc, nil
	}

	var onDisk flagDocument
	if err := json.Unmarshal(data, &onDisk); err != nil {
		return doc, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	for k, v := range onDisk.Flags {
		doc.Flags[k] = v
	}
	return doc, nil
}

func (s *FileStore) save(doc flagDocument) error {
	doc.Version = fileFormatVersion
	doc.UpdatedAt = s.now().UTC()
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode flag file: %w", err)
	}
	return util.AtomicWriteFile(s.path, data, 0600)
}
