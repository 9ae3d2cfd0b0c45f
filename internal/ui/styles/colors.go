// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the juleroerbord TUI.
// All colors use Lip Gloss AdaptiveColor for automatic light/dark detection.
package styles

import "github.com/charmbracelet/lipgloss"

// =============================================================================
// FESTIVE ACCENT COLORS
// =============================================================================

// Red - Primary accent, the highlighted part of the title, the open button
var Red = lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#DC2626"}

// RedDeep - Darker red for button backgrounds
var RedDeep = lipgloss.AdaptiveColor{Light: "#991B1B", Dark: "#7F1D1D"}

// Gold - Secondary accent, times on the timeline, stars
var Gold = lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#FBBF24"}

// Pine - Success and decorative green
var Pine = lipgloss.AdaptiveColor{Light: "#15803D", Dark: "#22C55E"}

// PineDeep - Darker green for card borders
var PineDeep = lipgloss.AdaptiveColor{Light: "#166534", Dark: "#14532D"}

// Snow - Snowflakes and the reveal flash
var Snow = lipgloss.AdaptiveColor{Light: "#94A3B8", Dark: "#F8FAFC"}

// =============================================================================
// SEMANTIC COLORS
// =============================================================================

// Destructive - Wrong code message and input border
var Destructive = lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#F87171"}

// =============================================================================
// SURFACE COLORS
// =============================================================================

// Surface - Card background
var Surface = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1C1917"}

// SurfaceBright - Focused card background
var SurfaceBright = lipgloss.AdaptiveColor{Light: "#FEF2F2", Dark: "#292524"}

// Overlay - Borders and separators
var Overlay = lipgloss.AdaptiveColor{Light: "#E5E5E5", Dark: "#44403C"}

// =============================================================================
// TEXT COLORS
// =============================================================================

var TextPrimary = lipgloss.AdaptiveColor{Light: "#1C1917", Dark: "#FAFAF9"}
var TextSecondary = lipgloss.AdaptiveColor{Light: "#57534E", Dark: "#D6D3D1"}
var TextMuted = lipgloss.AdaptiveColor{Light: "#A8A29E", Dark: "#78716C"}
var TextInverse = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1C1917"}

// FocusRing marks the focused card or control.
var FocusRing = Gold

// =============================================================================
// DECORATIONS
// =============================================================================

// Decorations are the emoji drawn in the corners of the gate screen.
var Decorations = struct {
	TopLeft     string
	TopRight    string
	BottomLeft  string
	BottomRight string
}{
	TopLeft:     "🎄",
	TopRight:    "🎅",
	BottomLeft:  "🎁",
	BottomRight: "⭐",
}

// GiftIcon is the bouncing icon above the access code input.
const GiftIcon = "🎁"

// SnowChars are the glyphs a snowflake may be drawn with.
var SnowChars = []string{"*", "·", "❄", "•", "✻"}

// RenderError renders an inline error line with a shape indicator so the
// message does not rely on color alone.
func RenderError(message string) string {
	style := lipgloss.NewStyle().
		Foreground(Destructive).
		Bold(true)
	return style.Render("(!) " + message)
}
