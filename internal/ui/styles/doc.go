// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the juleroerbord TUI.

# Color System (colors.go)

A festive palette built from Lip Gloss AdaptiveColor values so the same
tokens read well on light and dark terminals:

	Red         - title highlight, the open button, the gate card border
	Gold        - timeline times, focus ring
	Pine        - decorative green
	Snow        - snowflakes and the reveal flash
	Destructive - wrong code message and input border

# Theme (theme.go)

NewTheme detects the terminal color profile with termenv and builds every
lipgloss.Style the gate and content views use. The mode "dark" or "light"
overrides background detection.

# Animations (animations.go)

Pure functions of elapsed time, so views stay deterministic under test:

	ShakeOffset  - horizontal offset of the gate card during a shake
	BounceLift   - idle bounce of the gift icon
	PhaseAt      - gift, fade and flash phases of the reveal
	GiftRise     - how far the gift has risen
	FlashShade   - fill glyph while the screen turns white
	RenderProgressBar - the reveal progress bar
*/
package styles
