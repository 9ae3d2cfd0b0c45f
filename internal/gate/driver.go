// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package gate

import (
	"context"
	"sync"

	"github.com/einarsolbakken/juleroerbord/internal/clock"
)

// Driver runs a Controller's effects on a clock.Clock.
type Driver struct {
	ctrl  *Controller
	clock clock.Clock

	mu      sync.Mutex
	timers  [timerCount]*clock.Timer
	stopped bool

	// onFire, if set, runs after every applied effect.
	onFire func(Effect, bool)
}

// NewDriver returns a Driver for ctrl. A nil clock means wall time.
func NewDriver(ctrl *Controller, clk clock.Clock) *Driver {
	if clk == nil {
		clk = clock.Real()
	}
	return &Driver{ctrl: ctrl, clock: clk}
}

// OnFire registers fn to run after each effect is handed to the
// controller. granted is Fire's return value. Only effects scheduled
// after the call see fn.
func (d *Driver) OnFire(fn func(e Effect, granted bool)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.onFire = fn
}

// Submit forwards input to the controller and schedules the resulting
// effects.
func (d *Driver) Submit(ctx context.Context, input string) Result {
	res := d.ctrl.Submit(ctx, input)
	d.Schedule(res.Effects)
	return res
}

// Schedule arms one timer per effect. An effect for a timer that is
// already pending replaces it.
func (d *Driver) Schedule(effects []Effect) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}

	fn := d.onFire
	for _, e := range effects {
		e := e
		if e.Timer < 0 || e.Timer >= timerCount {
			continue
		}
		d.timers[e.Timer].Stop()
		d.timers[e.Timer] = d.clock.AfterFunc(e.Delay, func() {
			granted := d.ctrl.Fire(e)
			if fn != nil {
				fn(e, granted)
			}
		})
	}
}

// Stop cancels every pending timer and refuses new ones.
func (d *Driver) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	for i, t := range d.timers {
		t.Stop()
		d.timers[i] = nil
	}
}
