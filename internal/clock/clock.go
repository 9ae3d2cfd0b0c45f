// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package clock lets the gate schedule its delays against either wall time
// or a fake clock that tests can step forward deterministically.
package clock

import "time"

// Clock is the subset of the time package the gate driver needs.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// AfterFunc calls f once d has elapsed. The returned Timer cancels
	// the call if it has not happened yet.
	AfterFunc(d time.Duration, f func()) *Timer
}

// Timer is a pending AfterFunc call.
type Timer struct {
	stop func() bool
}

// Stop cancels the pending call. It reports false when the call already
// ran or was stopped earlier.
func (t *Timer) Stop() bool {
	if t == nil || t.stop == nil {
		return false
	}
	return t.stop()
}

// Real returns a Clock backed by the standard time package.
func Real() Clock { return realClock{} }

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) AfterFunc(d time.Duration, f func()) *Timer {
	t := time.AfterFunc(d, f)
	return &Timer{stop: t.Stop}
}
