// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package gate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FlagStore persists the "access granted" flag.
type FlagStore interface {
	// Get returns the stored value and whether the key exists.
	Get(ctx context.Context, key string) (value bool, found bool, err error)
	Set(ctx context.Context, key string, value bool) error
	Delete(ctx context.Context, key string) error
}

// ErrNilStore is returned by New when no FlagStore is supplied.
var ErrNilStore = errors.New("gate: flag store is required")

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger for gate events. Submitted codes are never
// logged.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithOnAccessGranted registers fn to run once the reveal completes.
// It is called without the controller lock held.
func WithOnAccessGranted(fn func()) Option {
	return func(c *Controller) {
		c.onGranted = fn
	}
}

// Controller is the gate state machine. It is safe for concurrent use;
// the real-clock Driver calls Fire from timer goroutines.
type Controller struct {
	mu sync.Mutex

	cfg       Config
	store     FlagStore
	logger    *slog.Logger
	onGranted func()

	// caser is not safe for concurrent use and is guarded by mu.
	caser  cases.Caser
	secret string

	state   State
	errorOn bool
	shaking bool
	gen     [timerCount]uint64
	closed  bool
}

// New builds a Controller and reads the persisted flag once to decide
// whether to start Locked or Unlocked.
func New(ctx context.Context, cfg Config, store FlagStore, opts ...Option) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if store == nil {
		return nil, ErrNilStore
	}

	c := &Controller{
		cfg:    cfg,
		store:  store,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		caser:  cases.Upper(language.Und),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.secret = c.normalize(cfg.Secret)

	granted, _, err := store.Get(ctx, cfg.FlagKey)
	if err != nil {
		return nil, fmt.Errorf("gate: read %s flag: %w", cfg.FlagKey, err)
	}
	if granted {
		c.state = Unlocked
	}

	c.logger.Info("gate initialised", "state", c.state.String())
	return c, nil
}

// normalize upper-cases s the way the code field displays it. Must be
// called with mu held once the controller is shared.
func (c *Controller) normalize(s string) string {
	if c.cfg.TrimInput {
		s = strings.TrimSpace(s)
	}
	return c.caser.String(s)
}

// Submit evaluates one code. It never blocks on timers: the returned
// Effects must be scheduled by the caller.
func (c *Controller) Submit(ctx context.Context, input string) Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || c.state != Locked {
		return Result{Outcome: OutcomeIgnored}
	}
	if isBlank(input) {
		return Result{Outcome: OutcomeEmpty}
	}

	if c.normalize(input) != c.secret {
		c.errorOn = true
		c.shaking = true
		c.gen[TimerError]++
		c.gen[TimerShake]++
		c.logger.Debug("gate code rejected")
		return Result{
			Outcome: OutcomeInvalidCode,
			Effects: []Effect{
				{Timer: TimerError, Delay: c.cfg.ErrorDuration, Generation: c.gen[TimerError]},
				{Timer: TimerShake, Delay: c.cfg.ShakeDuration, Generation: c.gen[TimerShake]},
			},
		}
	}

	c.state = Unlocking
	if err := c.store.Set(ctx, c.cfg.FlagKey, true); err != nil {
		// The reveal still happens; only the next run is affected.
		c.logger.Warn("failed to persist gate flag", "key", c.cfg.FlagKey, "error", err)
	}
	c.gen[TimerReveal]++
	c.logger.Info("gate opened", "reveal_delay_ms", c.cfg.RevealDelay.Milliseconds())

	return Result{
		Outcome: OutcomeAccepted,
		Effects: []Effect{
			{Timer: TimerReveal, Delay: c.cfg.RevealDelay, Generation: c.gen[TimerReveal]},
		},
	}
}

// Fire applies an elapsed Effect. It reports whether this call completed
// the reveal. Stale generations and calls after Close are ignored.
func (c *Controller) Fire(e Effect) bool {
	c.mu.Lock()
	if c.closed || e.Timer < 0 || e.Timer >= timerCount || e.Generation != c.gen[e.Timer] {
		c.mu.Unlock()
		return false
	}

	switch e.Timer {
	case TimerError:
		c.errorOn = false
	case TimerShake:
		c.shaking = false
	case TimerReveal:
		if c.state != Unlocking {
			c.mu.Unlock()
			return false
		}
		c.state = Unlocked
		fn := c.onGranted
		c.mu.Unlock()

		c.logger.Info("gate revealed")
		if fn != nil {
			fn()
		}
		return true
	}

	c.mu.Unlock()
	return false
}

// Logout returns the gate to Locked, clears indicators, invalidates
// pending timers and deletes the persisted flag. The in-memory reset
// happens even when the delete fails.
func (c *Controller) Logout(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = Locked
	c.errorOn = false
	c.shaking = false
	for i := range c.gen {
		c.gen[i]++
	}

	if err := c.store.Delete(ctx, c.cfg.FlagKey); err != nil {
		c.logger.Warn("failed to clear gate flag", "key", c.cfg.FlagKey, "error", err)
		return fmt.Errorf("gate: clear %s flag: %w", c.cfg.FlagKey, err)
	}
	c.logger.Info("gate logout")
	return nil
}

// Close stops the controller from reacting to any further timer firings.
// It is idempotent.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	for i := range c.gen {
		c.gen[i]++
	}
}

// State returns the current gate state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Snapshot returns the display view.
func (c *Controller) Snapshot() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return View{
		State:    c.state,
		Error:    c.errorOn,
		Shaking:  c.shaking,
		Disabled: c.closed || c.state != Locked,
	}
}

// CanSubmit reports whether the submit control should be enabled for the
// current input.
func (c *Controller) CanSubmit(input string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return !c.closed && c.state == Locked && !isBlank(input)
}

// Config returns the controller's configuration.
func (c *Controller) Config() Config {
	return c.cfg
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
