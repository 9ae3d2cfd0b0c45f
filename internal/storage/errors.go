// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownBackend is returned by Open for an unsupported backend name.
	ErrUnknownBackend = errors.New("unknown storage backend")

	// ErrEmptyPath is returned when a persistent backend has no path.
	ErrEmptyPath = errors.New("storage path is empty")

	// ErrClosed is returned by operations on a closed store.
	ErrClosed = errors.New("storage is closed")

	// ErrCorrupt is returned when the flag file cannot be decoded.
	ErrCorrupt = errors.New("flag file is corrupt")
)

// StoreError wraps a backend failure with the operation and key involved.
// Use errors.Is against the sentinels above to classify it.
type StoreError struct {
	Op  string
	Key string
	Err error
}

func (e *StoreError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("storage %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
