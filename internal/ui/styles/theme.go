// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the juleroerbord TUI.
package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme modes accepted by NewTheme.
const (
	ModeAuto  = "auto"
	ModeDark  = "dark"
	ModeLight = "light"
)

// Theme holds all the styled components for the application.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// GATE STYLES
	// ==========================================================================

	GateCard        lipgloss.Style
	GateCardError   lipgloss.Style
	GateCorner      lipgloss.Style
	GateGift        lipgloss.Style
	Input           lipgloss.Style
	InputError      lipgloss.Style
	InputDisabled   lipgloss.Style
	InputText       lipgloss.Style
	InputPromptText lipgloss.Style
	Placeholder     lipgloss.Style
	Button          lipgloss.Style
	ButtonDisabled  lipgloss.Style
	ErrorLine       lipgloss.Style
	Flash           lipgloss.Style
	SnowFlake       lipgloss.Style

	// ==========================================================================
	// CONTENT STYLES
	// ==========================================================================

	Greeting      lipgloss.Style
	Title         lipgloss.Style
	TitleAccent   lipgloss.Style
	Date          lipgloss.Style
	ScrollHint    lipgloss.Style
	SectionTitle  lipgloss.Style
	SectionDesc   lipgloss.Style
	Card          lipgloss.Style
	CardFocused   lipgloss.Style
	CardTime      lipgloss.Style
	CardTitle     lipgloss.Style
	CardSubtitle  lipgloss.Style
	CardBack      lipgloss.Style
	Question      lipgloss.Style
	Caption       lipgloss.Style
	Footer        lipgloss.Style
	LogoutButton  lipgloss.Style
	HelpKey       lipgloss.Style
	HelpDesc      lipgloss.Style
}

// NewTheme creates a new theme with all styles configured. mode is one of
// "auto", "dark" or "light"; anything else is treated as "auto".
func NewTheme(mode string) *Theme {
	// Detect terminal capabilities
	colorProfile := termenv.ColorProfile()
	hasTrueColor := colorProfile == termenv.TrueColor

	var isDark bool
	switch strings.ToLower(mode) {
	case ModeDark:
		isDark = true
		lipgloss.SetHasDarkBackground(true)
	case ModeLight:
		isDark = false
		lipgloss.SetHasDarkBackground(false)
	default:
		isDark = termenv.HasDarkBackground()
	}

	t := &Theme{
		IsDark:       isDark,
		HasTrueColor: hasTrueColor,
		ColorProfile: colorProfile,
	}

	t.initStyles()
	return t
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	// Gate card
	t.GateCard = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Red).
		Padding(1, 4).
		Align(lipgloss.Center)

	t.GateCardError = t.GateCard.
		BorderForeground(Destructive)

	t.GateCorner = lipgloss.NewStyle().
		Foreground(Gold)

	t.GateGift = lipgloss.NewStyle().
		Bold(true)

	// Input
	t.Input = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.InputError = t.Input.
		BorderForeground(Destructive)

	t.InputDisabled = t.Input.
		BorderForeground(TextMuted).
		Foreground(TextMuted)

	t.InputText = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Bold(true)

	t.InputPromptText = lipgloss.NewStyle().
		Foreground(Red)

	t.Placeholder = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	// Button
	t.Button = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(Red).
		Bold(true).
		Padding(0, 3)

	t.ButtonDisabled = lipgloss.NewStyle().
		Foreground(TextMuted).
		Background(Overlay).
		Padding(0, 3)

	t.ErrorLine = lipgloss.NewStyle().
		Foreground(Destructive)

	t.Flash = lipgloss.NewStyle().
		Foreground(Snow).
		Bold(true)

	t.SnowFlake = lipgloss.NewStyle().
		Foreground(Snow)

	// Hero
	t.Greeting = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Italic(true)

	t.Title = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Bold(true)

	t.TitleAccent = lipgloss.NewStyle().
		Foreground(Red).
		Bold(true)

	t.Date = lipgloss.NewStyle().
		Foreground(Gold)

	t.ScrollHint = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Sections
	t.SectionTitle = lipgloss.NewStyle().
		Foreground(Red).
		Bold(true).
		MarginTop(1)

	t.SectionDesc = lipgloss.NewStyle().
		Foreground(TextSecondary)

	// Cards
	t.Card = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 2)

	t.CardFocused = t.Card.
		BorderForeground(FocusRing)

	t.CardTime = lipgloss.NewStyle().
		Foreground(Gold).
		Bold(true)

	t.CardTitle = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Bold(true)

	t.CardSubtitle = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.CardBack = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Italic(true)

	t.Question = lipgloss.NewStyle().
		Foreground(Red).
		Bold(true)

	t.Caption = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.Footer = lipgloss.NewStyle().
		Align(lipgloss.Center).
		MarginTop(1)

	t.LogoutButton = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Padding(0, 1)

	t.HelpKey = lipgloss.NewStyle().
		Foreground(Gold).
		Bold(true)

	t.HelpDesc = lipgloss.NewStyle().
		Foreground(TextMuted)
}

// SetSize updates the theme dimensions for responsive layouts.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// GetLayoutMode returns the current layout mode based on width.
func (t *Theme) GetLayoutMode() LayoutMode {
	if t.Width < 60 {
		return LayoutNarrow
	}
	if t.Width < 100 {
		return LayoutMedium
	}
	return LayoutWide
}

// ContentWidth returns the width cards should be drawn at.
func (t *Theme) ContentWidth() int {
	switch t.GetLayoutMode() {
	case LayoutNarrow:
		if t.Width < 24 {
			return 20
		}
		return t.Width - 4
	case LayoutMedium:
		return t.Width - 8
	default:
		return 88
	}
}

// LayoutMode represents the current responsive layout mode.
type LayoutMode int

const (
	LayoutNarrow LayoutMode = iota // < 60 columns
	LayoutMedium                   // 60-100 columns
	LayoutWide                     // > 100 columns
)
