// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package clock

import (
	"sort"
	"sync"
	"time"
)

// FakeClock is a Clock whose time only moves when Advance is called.
// AfterFunc callbacks run synchronously inside Advance, in deadline order.
// A callback must not call Advance itself.
type FakeClock struct {
	mu      sync.Mutex
	current time.Time
	pending []*fakeTimer
	// nextSeq orders timers that share a deadline by registration.
	nextSeq int
}

type fakeTimer struct {
	deadline time.Time
	seq      int
	fn       func()
	stopped  bool
	fired    bool
}

// Fake returns a FakeClock set to start.
func Fake(start time.Time) *FakeClock {
	return &FakeClock{current: start}
}

// Now returns the fake current time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// AfterFunc registers f to run once the clock has been advanced by d.
// A non-positive d runs f before AfterFunc returns.
func (c *FakeClock) AfterFunc(d time.Duration, f func()) *Timer {
	if d <= 0 {
		f()
		return &Timer{stop: func() bool { return false }}
	}

	c.mu.Lock()
	c.nextSeq++
	ft := &fakeTimer{
		deadline: c.current.Add(d),
		seq:      c.nextSeq,
		fn:       f,
	}
	c.pending = append(c.pending, ft)
	c.mu.Unlock()

	return &Timer{stop: func() bool {
		c.mu.Lock()
		defer c.mu.Unlock()
		if ft.stopped || ft.fired {
			return false
		}
		ft.stopped = true
		return true
	}}
}

// Advance moves the clock forward by d and runs every callback whose
// deadline is at or before the new time. Callbacks scheduled by other
// callbacks fire in the same call if they also fall due.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.current = c.current.Add(d)
	target := c.current
	c.mu.Unlock()

	for {
		due := c.collectDue(target)
		if len(due) == 0 {
			return
		}
		for _, ft := range due {
			ft.fn()
		}
	}
}

// collectDue removes due timers from the pending list and returns them
// sorted by deadline.
func (c *FakeClock) collectDue(target time.Time) []*fakeTimer {
	c.mu.Lock()
	defer c.mu.Unlock()

	var due, remaining []*fakeTimer
	for _, ft := range c.pending {
		switch {
		case ft.stopped:
		case !ft.deadline.After(target):
			ft.fired = true
			due = append(due, ft)
		default:
			remaining = append(remaining, ft)
		}
	}
	c.pending = remaining

	sort.SliceStable(due, func(i, j int) bool {
		if due[i].deadline.Equal(due[j].deadline) {
			return due[i].seq < due[j].seq
		}
		return due[i].deadline.Before(due[j].deadline)
	})
	return due
}

// PendingCount returns how many callbacks are scheduled and not stopped.
func (c *FakeClock) PendingCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, ft := range c.pending {
		if !ft.stopped {
			n++
		}
	}
	return n
}
