// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"os"
	"sync"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// =============================================================================
// TTY DETECTION
// =============================================================================

// IsTTY returns true if stdin is a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// IsStdoutTTY returns true if stdout is a terminal.
func IsStdoutTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// =============================================================================
// TERMINAL SIZE
// =============================================================================

const (
	// DefaultTerminalWidth is the fallback width when detection fails.
	DefaultTerminalWidth = 80

	// MinTerminalWidth is the narrowest width plain output is rendered at.
	MinTerminalWidth = 24
)

// GetTerminalWidth returns the width of stdout, or DefaultTerminalWidth.
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return DefaultTerminalWidth
	}
	if width < MinTerminalWidth {
		return MinTerminalWidth
	}
	return width
}

// =============================================================================
// COLOR OUTPUT CONTROL
// =============================================================================

var (
	colorsEnabled     bool
	colorsEnabledOnce sync.Once
)

// ColorsEnabled returns true if colored output should be used.
// NO_COLOR wins over FORCE_COLOR, which wins over TTY detection.
func ColorsEnabled() bool {
	colorsEnabledOnce.Do(func() {
		if os.Getenv("NO_COLOR") != "" {
			colorsEnabled = false
			return
		}
		if os.Getenv("FORCE_COLOR") != "" {
			colorsEnabled = true
			return
		}
		colorsEnabled = IsStdoutTTY()
	})
	return colorsEnabled
}

// GetColorProfile returns the termenv profile for CLI output.
func GetColorProfile() termenv.Profile {
	if !ColorsEnabled() {
		return termenv.Ascii
	}
	return termenv.ColorProfile()
}

// TTYRequiredError is returned when the terminal UI is started without a
// terminal.
type TTYRequiredError struct {
	Operation string
}

func (e *TTYRequiredError) Error() string {
	return "stdin or stdout is not a terminal; cannot " + e.Operation + " (try --plain)"
}

// requireTTY fails unless both stdin and stdout are terminals.
func requireTTY(operation string) error {
	if !IsTTY() || !IsStdoutTTY() {
		return &TTYRequiredError{Operation: operation}
	}
	return nil
}
