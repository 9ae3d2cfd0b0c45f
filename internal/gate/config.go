// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package gate

import (
	"errors"
	"fmt"
	"time"
)

const (
	// DefaultSecret is the party code.
	DefaultSecret = "2026"

	// DefaultRevealDelay is how long the reveal animation runs before the
	// content is shown.
	DefaultRevealDelay = 2500 * time.Millisecond

	// DefaultErrorDuration is how long the "wrong code" message stays up.
	DefaultErrorDuration = 3000 * time.Millisecond

	// DefaultShakeDuration is how long the gate shakes after a wrong code.
	DefaultShakeDuration = 500 * time.Millisecond

	// DefaultFlagKey is the storage key of the persisted "granted" flag.
	DefaultFlagKey = "access_granted"
)

// ErrEmptySecret is returned by New when the configured secret is empty.
var ErrEmptySecret = errors.New("gate: secret must not be empty")

// Config holds the gate's tunables. It is always passed in explicitly.
type Config struct {
	// Secret is matched case-insensitively against submitted codes.
	Secret string

	// RevealDelay is the Unlocking → Unlocked delay.
	RevealDelay time.Duration

	// ErrorDuration is the lifetime of the error indicator.
	ErrorDuration time.Duration

	// ShakeDuration is the lifetime of the shake indicator.
	ShakeDuration time.Duration

	// TrimInput strips leading and trailing whitespace before comparing.
	TrimInput bool

	// FlagKey is the key the granted flag is stored under.
	FlagKey string
}

// DefaultConfig returns the stock party configuration.
func DefaultConfig() Config {
	return Config{
		Secret:        DefaultSecret,
		RevealDelay:   DefaultRevealDelay,
		ErrorDuration: DefaultErrorDuration,
		ShakeDuration: DefaultShakeDuration,
		FlagKey:       DefaultFlagKey,
	}
}

// Validate checks that the configuration can drive a Controller.
func (c Config) Validate() error {
	if c.Secret == "" {
		return ErrEmptySecret
	}
	if c.RevealDelay <= 0 {
		return fmt.Errorf("gate: reveal delay must be positive, got %s", c.RevealDelay)
	}
	if c.ErrorDuration <= 0 {
		return fmt.Errorf("gate: error duration must be positive, got %s", c.ErrorDuration)
	}
	if c.ShakeDuration <= 0 {
		return fmt.Errorf("gate: shake duration must be positive, got %s", c.ShakeDuration)
	}
	if c.FlagKey == "" {
		return errors.New("gate: flag key must not be empty")
	}
	return nil
}
