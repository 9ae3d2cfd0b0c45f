// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage persists juleroerbord's boolean flags, most importantly
// the gate's "access granted" flag.
//
// # Backends
//
//   - FileStore: a small JSON document written atomically (default)
//   - SQLiteStore: a single-table SQLite database (modernc.org/sqlite)
//   - MemoryStore: process-local, used by --ephemeral and tests
//
// # Usage
//
//	store, err := storage.Open(storage.BackendFile, "~/.juleroerbord/state.json")
//	if err != nil {
//		return err
//	}
//	defer store.Close()
//
//	granted, found, err := store.Get(ctx, "access_granted")
//
// # Storage Location
//
// Flags are stored under ~/.juleroerbord/ unless storage.path says
// otherwise.
package storage
