// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// sqliteSchema holds the flags table.
const sqliteSchema = `
CREATE TABLE IF NOT EXISTS flags (
    key TEXT PRIMARY KEY,
    value INTEGER NOT NULL,
    updated_at INTEGER NOT NULL -- Unix timestamp
) WITHOUT ROWID;
`

// SQLiteStore keeps flags in a SQLite database.
type SQLiteStore struct {
	db   *sql.DB
	path string

	mu     sync.RWMutex
	closed bool
}

// NewSQLiteStore opens (and if needed creates) the database at path.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if path == "" {
		return nil, &StoreError{Op: "open", Err: ErrEmptyPath}
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite has a single writer; one connection also keeps :memory: stable.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &SQLiteStore{db: db, path: path}, nil
}

// Path returns the database file.
func (s *SQLiteStore) Path() string {
	return s.path
}

func (s *SQLiteStore) Get(ctx context.Context, key string) (bool, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return false, false, &StoreError{Op: "get", Key: key, Err: ErrClosed}
	}

	var v int64
	err := s.db.QueryRowContext(ctx, "SELECT value FROM flags WHERE key = ?", key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return false, false, nil
	}
	if err != nil {
		return false, false, &StoreError{Op: "get", Key: key, Err: err}
	}
	return v != 0, true, nil
}

func (s *SQLiteStore) Set(ctx context.Context, key string, value bool) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return &StoreError{Op: "set", Key: key, Err: ErrClosed}
	}

	v := 0
	if value {
		v = 1
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO flags (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, v, time.Now().Unix())
	if err != nil {
		return &StoreError{Op: "set", Key: key, Err: err}
	}
	return nil
}

func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return &StoreError{Op: "delete", Key: key, Err: ErrClosed}
	}

	if _, err := s.db.ExecContext(ctx, "DELETE FROM flags WHERE key = ?", key); err != nil {
		return &StoreError{Op: "delete", Key: key, Err: err}
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}
