// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

// backends returns a fresh store of every kind rooted in a temp dir.
func backends(t *testing.T) map[string]Store {
	t.Helper()
	dir := t.TempDir()

	file, err := NewFileStore(filepath.Join(dir, DefaultFileName))
	require.NoError(t, err)
	sqlite, err := NewSQLiteStore(filepath.Join(dir, DefaultSQLiteName))
	require.NoError(t, err)

	stores := map[string]Store{
		BackendMemory: NewMemoryStore(),
		BackendFile:   file,
		BackendSQLite: sqlite,
	}
	t.Cleanup(func() {
		for _, s := range stores {
			s.Close()
		}
	})
	return stores
}

func TestStore_GetMissing(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			v, found, err := s.Get(ctx, "access_granted")
			require.NoError(t, err)
			require.False(t, found)
			require.False(t, v)
		})
	}
}

func TestStore_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.Set(ctx, "access_granted", true))

			v, found, err := s.Get(ctx, "access_granted")
			require.NoError(t, err)
			require.True(t, found)
			require.True(t, v)

			// Last write wins.
			require.NoError(t, s.Set(ctx, "access_granted", false))
			v, found, err = s.Get(ctx, "access_granted")
			require.NoError(t, err)
			require.True(t, found)
			require.False(t, v)

			require.NoError(t, s.Delete(ctx, "access_granted"))
			_, found, err = s.Get(ctx, "access_granted")
			require.NoError(t, err)
			require.False(t, found)

			// Deleting a missing key is not an error.
			require.NoError(t, s.Delete(ctx, "access_granted"))
		})
	}
}

func TestStore_KeysAreIndependent(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.Set(ctx, "a", true))
			require.NoError(t, s.Set(ctx, "b", true))
			require.NoError(t, s.Delete(ctx, "a"))

			_, found, err := s.Get(ctx, "b")
			require.NoError(t, err)
			require.True(t, found)
		})
	}
}

func TestStore_Closed(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.Close())

			_, _, err := s.Get(ctx, "k")
			require.ErrorIs(t, err, ErrClosed)
			require.ErrorIs(t, s.Set(ctx, "k", true), ErrClosed)
			require.ErrorIs(t, s.Delete(ctx, "k"), ErrClosed)
		})
	}
}

func TestFileStore_PersistsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", DefaultFileName)

	first, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "access_granted", true))
	require.NoError(t, first.Close())

	second, err := NewFileStore(path)
	require.NoError(t, err)
	v, found, err := second.Get(ctx, "access_granted")
	require.NoError(t, err)
	require.True(t, found)
	require.True(t, v)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc flagDocument
	require.NoError(t, json.Unmarshal(data, &doc))
	require.Equal(t, fileFormatVersion, doc.Version)
	require.False(t, doc.UpdatedAt.IsZero())
}

func TestFileStore_Permissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permissions not applicable on Windows")
	}
	path := filepath.Join(t.TempDir(), DefaultFileName)
	s, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(context.Background(), "access_granted", true))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestFileStore_Corrupt(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	s, err := NewFileStore(path)
	require.NoError(t, err)

	value, found, err := s.Get(ctx, "access_granted")
	require.NoError(t, err)
	require.False(t, found)
	require.False(t, value)

	// Writing repairs the file.
	require.NoError(t, s.Set(ctx, "access_granted", true))
	v, found, err := s.Get(ctx, "access_granted")
	require.NoError(t, err)
	require.True(t, found)
	require.True(t, v)
}

func TestSQLiteStore_PersistsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), DefaultSQLiteName)

	first, err := NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "access_granted", true))
	require.NoError(t, first.Close())
	require.NoError(t, first.Close(), "second Close is a no-op")

	second, err := NewSQLiteStore(path)
	require.NoError(t, err)
	defer second.Close()

	v, found, err := second.Get(ctx, "access_granted")
	require.NoError(t, err)
	require.True(t, found)
	require.True(t, v)
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		backend string
		path    string
		wantErr error
	}{
		{"memory", BackendMemory, "", nil},
		{"file", BackendFile, filepath.Join(dir, DefaultFileName), nil},
		{"default is file", "", filepath.Join(dir, "other.json"), nil},
		{"sqlite", BackendSQLite, filepath.Join(dir, DefaultSQLiteName), nil},
		{"file without path", BackendFile, "", ErrEmptyPath},
		{"unknown", "redis", "x", ErrUnknownBackend},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Open(tt.backend, tt.path)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NoError(t, s.Close())
		})
	}
}

func TestDefaultPath(t *testing.T) {
	require.Equal(t, filepath.Join("d", DefaultFileName), DefaultPath(BackendFile, "d"))
	require.Equal(t, filepath.Join("d", DefaultSQLiteName), DefaultPath(BackendSQLite, "d"))
	require.Empty(t, DefaultPath(BackendMemory, "d"))
}
