// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package content

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the watcher waits after the last write
// before reloading.
const DefaultDebounce = 200 * time.Millisecond

// Watcher reloads an invitation file when it changes on disk.
type Watcher struct {
	path     string
	debounce time.Duration
	onChange func(*Invitation, error)

	watcher *fsnotify.Watcher

	mu    sync.Mutex
	timer *time.Timer
}

// NewWatcher watches path and calls onChange with the freshly loaded
// invitation, or with the load error, after each burst of changes.
func NewWatcher(path string, debounce time.Duration, onChange func(*Invitation, error)) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve content path: %w", err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	// Watch the directory: editors often replace the file via rename,
	// which drops a watch placed on the file itself.
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{
		path:     abs,
		debounce: debounce,
		onChange: onChange,
		watcher:  fw,
	}, nil
}

// Run processes events until ctx is cancelled, then closes the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.close()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				w.schedule()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.onChange(nil, fmt.Errorf("content watcher: %w", err))
		}
	}
}

// schedule (re)starts the debounce timer.
func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		inv, err := Load(w.path)
		w.onChange(inv, err)
	})
}

func (w *Watcher) close() {
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()
	w.watcher.Close()
}
