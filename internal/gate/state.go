// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package gate

import (
	"errors"
	"time"
)

// State is the position of the gate.
type State int

const (
	// Locked accepts codes.
	Locked State = iota
	// Unlocking plays the reveal animation and ignores input.
	Unlocking
	// Unlocked shows the invitation.
	Unlocked
)

// String returns the lower-case state name used in logs and `status`.
func (s State) String() string {
	switch s {
	case Locked:
		return "locked"
	case Unlocking:
		return "unlocking"
	case Unlocked:
		return "unlocked"
	default:
		return "unknown"
	}
}

// TimerID names one of the gate's three independent timers.
type TimerID int

const (
	TimerReveal TimerID = iota
	TimerError
	TimerShake

	timerCount
)

func (id TimerID) String() string {
	switch id {
	case TimerReveal:
		return "reveal"
	case TimerError:
		return "error"
	case TimerShake:
		return "shake"
	default:
		return "unknown"
	}
}

// Effect asks the host to call Fire(effect) once Delay has elapsed.
type Effect struct {
	Timer      TimerID
	Delay      time.Duration
	Generation uint64
}

// Outcome classifies what a submission did.
type Outcome int

const (
	// OutcomeAccepted means the code matched and the gate is unlocking.
	OutcomeAccepted Outcome = iota
	// OutcomeInvalidCode means the code did not match.
	OutcomeInvalidCode
	// OutcomeEmpty means there was nothing to submit.
	OutcomeEmpty
	// OutcomeIgnored means the gate was not accepting input.
	OutcomeIgnored
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAccepted:
		return "accepted"
	case OutcomeInvalidCode:
		return "invalid_code"
	case OutcomeEmpty:
		return "empty"
	case OutcomeIgnored:
		return "ignored"
	default:
		return "unknown"
	}
}

// ErrInvalidCode is the only failure a submission can report.
var ErrInvalidCode = errors.New("invalid code")

// Result is the return value of Submit.
type Result struct {
	Outcome Outcome
	Effects []Effect
}

// Err returns ErrInvalidCode for a rejected code and nil otherwise.
func (r Result) Err() error {
	if r.Outcome == OutcomeInvalidCode {
		return ErrInvalidCode
	}
	return nil
}

// View is what a display surface needs to draw the gate.
type View struct {
	State   State
	Error   bool
	Shaking bool
	// Disabled is true whenever the gate is not accepting codes.
	Disabled bool
}
