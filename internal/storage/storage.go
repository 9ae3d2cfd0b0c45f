// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Backend names accepted by Open and the storage.backend config key.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Default file names under the data directory.
const (
	DefaultFileName   = "state.json"
	DefaultSQLiteName = "state.db"
)

// Store is a key/boolean store. All backends are last-write-wins.
type Store interface {
	Get(ctx context.Context, key string) (value bool, found bool, err error)
	Set(ctx context.Context, key string, value bool) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Backends lists the valid backend names.
func Backends() []string {
	return []string{BackendFile, BackendSQLite, BackendMemory}
}

// DefaultPath returns the default location for backend inside dataDir.
// The memory backend has no path.
func DefaultPath(backend, dataDir string) string {
	switch backend {
	case BackendSQLite:
		return filepath.Join(dataDir, DefaultSQLiteName)
	case BackendFile:
		return filepath.Join(dataDir, DefaultFileName)
	default:
		return ""
	}
}

// Open returns the Store for backend. path is ignored by the memory
// backend and may start with "~/".
func Open(backend, path string) (Store, error) {
	switch backend {
	case BackendMemory:
		return NewMemoryStore(), nil
	case BackendFile, "":
		p, err := expandPath(path)
		if err != nil {
			return nil, err
		}
		return NewFileStore(p)
	case BackendSQLite:
		p, err := expandPath(path)
		if err != nil {
			return nil, err
		}
		return NewSQLiteStore(p)
	default:
		return nil, &StoreError{Op: "open", Key: backend, Err: ErrUnknownBackend}
	}
}

func expandPath(path string) (string, error) {
	if path == "" {
		return "", &StoreError{Op: "open", Err: ErrEmptyPath}
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home directory: %w", err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path, nil
}
