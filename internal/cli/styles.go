// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/einarsolbakken/juleroerbord/internal/ui/styles"
)

// init configures lipgloss color profile based on terminal capabilities.
func init() {
	lipgloss.SetColorProfile(GetColorProfile())
}

// =============================================================================
// SHARED STYLES FOR ALL CLI COMMANDS
// =============================================================================

var (
	// TitleStyle is used for command titles and headers.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.Red)

	// LabelStyle is used for field labels.
	LabelStyle = lipgloss.NewStyle().
			Foreground(styles.TextMuted).
			Width(12)

	// ValueStyle is used for regular values.
	ValueStyle = lipgloss.NewStyle().
			Foreground(styles.TextPrimary)

	// SuccessStyle is used for success messages and unlocked gates.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(styles.Pine).
			Bold(true)

	// ErrorStyle is used for error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(styles.Destructive).
			Bold(true)

	// DimStyle is used for hints.
	DimStyle = lipgloss.NewStyle().
			Foreground(styles.TextMuted)

	// BarStyle colors the plain-mode reveal bar.
	BarStyle = lipgloss.NewStyle().
			Foreground(styles.Gold)
)

// RenderSeparator renders a horizontal rule w cells wide.
func RenderSeparator(w int) string {
	if w <= 0 {
		w = 40
	}
	return DimStyle.Render(strings.Repeat("─", w))
}

// RenderField renders one "label value" row.
func RenderField(label, value string) string {
	return LabelStyle.Render(label) + ValueStyle.Render(value)
}
