// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the juleroerbord TUI.
package styles

import (
	"math"
	"strings"
	"time"
)

// FrameRate is how often gate animations redraw.
const FrameRate = 30 * time.Millisecond

// =============================================================================
// PROGRESS INDICATORS
// =============================================================================

// ProgressBar characters for the reveal bar.
var (
	ProgressFull    = "█"
	ProgressEmpty   = "░"
	ProgressPartial = []string{"▏", "▎", "▍", "▌", "▋", "▊", "▉"}
)

// RenderProgressBar creates a progress bar string.
// width: total width of the bar in characters
// percent: 0-100 percentage complete
func RenderProgressBar(width int, percent float64) string {
	if width <= 0 {
		return ""
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	filledWidth := float64(width) * percent / 100
	fullBlocks := int(filledWidth)
	partialIndex := int((filledWidth - float64(fullBlocks)) * float64(len(ProgressPartial)))

	var sb strings.Builder
	sb.Grow(width * 3)

	for i := 0; i < fullBlocks && i < width; i++ {
		sb.WriteString(ProgressFull)
	}

	if fullBlocks < width && partialIndex > 0 {
		sb.WriteString(ProgressPartial[partialIndex-1])
		fullBlocks++
	}

	for i := fullBlocks; i < width; i++ {
		sb.WriteString(ProgressEmpty)
	}

	return sb.String()
}

// =============================================================================
// EASING
// =============================================================================

// EasingFunc is a function that maps progress (0-1) to output (0-1).
type EasingFunc func(t float64) float64

// EaseLinear - constant speed
func EaseLinear(t float64) float64 {
	return t
}

// EaseInQuad - accelerating from zero
func EaseInQuad(t float64) float64 {
	return t * t
}

// EaseOutQuad - decelerating to zero
func EaseOutQuad(t float64) float64 {
	return t * (2 - t)
}

// EaseInOutQuad - acceleration until halfway, then deceleration
func EaseInOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

// EaseOutCubic - decelerating to zero (smoother)
func EaseOutCubic(t float64) float64 {
	t--
	return t*t*t + 1
}

// Progress returns elapsed/total clamped to [0, 1]. A non-positive total
// counts as complete.
func Progress(elapsed, total time.Duration) float64 {
	if total <= 0 {
		return 1
	}
	p := float64(elapsed) / float64(total)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// =============================================================================
// SHAKE
// =============================================================================

// ShakeAmplitude is the horizontal offset in columns at the peak of a shake.
const ShakeAmplitude = 2

// ShakeOffset returns the horizontal offset for a shake that started elapsed
// ago and lasts total. The card alternates left and right in ten equal
// steps, left first, and rests at zero before and after.
func ShakeOffset(elapsed, total time.Duration) int {
	if elapsed <= 0 || total <= 0 || elapsed >= total {
		return 0
	}
	step := int(Progress(elapsed, total) * 10)
	if step >= 10 {
		return 0
	}
	if step%2 == 0 {
		return -ShakeAmplitude
	}
	return ShakeAmplitude
}

// Shift moves every line of a block right by offset columns. A negative
// offset removes up to that many leading spaces.
func Shift(block string, offset int) string {
	if offset == 0 {
		return block
	}
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		if offset > 0 {
			lines[i] = strings.Repeat(" ", offset) + line
			continue
		}
		trim := -offset
		for trim > 0 && strings.HasPrefix(line, " ") {
			line = line[1:]
			trim--
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// =============================================================================
// GIFT BOUNCE AND REVEAL
// =============================================================================

// BouncePeriod is the length of one idle bounce of the gift icon.
const BouncePeriod = 2500 * time.Millisecond

// BounceLift returns how many rows the idle gift is raised, 0 or 1.
func BounceLift(elapsed time.Duration) int {
	phase := math.Mod(float64(elapsed), float64(BouncePeriod)) / float64(BouncePeriod)
	// sin over one period, raised for the middle half
	if math.Sin(phase*math.Pi) > 0.7 {
		return 1
	}
	return 0
}

// RevealPhase describes what the gate shows at a point of the unlock
// sequence.
type RevealPhase int

const (
	// RevealGift lifts the gift off the card.
	RevealGift RevealPhase = iota
	// RevealFade shrinks and fades the card.
	RevealFade
	// RevealFlash fills the screen white.
	RevealFlash
)

// PhaseAt maps reveal progress (0-1) to a phase: the gift rises during the
// first half, the card fades until 80% and the flash takes the rest.
func PhaseAt(p float64) RevealPhase {
	switch {
	case p < 0.5:
		return RevealGift
	case p < 0.8:
		return RevealFade
	default:
		return RevealFlash
	}
}

// GiftRise returns how many rows the gift has risen during the reveal,
// up to maxRows.
func GiftRise(p float64, maxRows int) int {
	if maxRows <= 0 {
		return 0
	}
	local := p / 0.5
	if local > 1 {
		local = 1
	}
	if local < 0 {
		local = 0
	}
	return int(math.Round(EaseOutQuad(local) * float64(maxRows)))
}

// FlashShades are drawn from faint to solid as the flash fills the screen.
var FlashShades = []string{" ", "░", "▒", "▓", "█"}

// FlashShade returns the fill glyph for reveal progress p.
func FlashShade(p float64) string {
	if p < 0.8 {
		return FlashShades[0]
	}
	local := (p - 0.8) / 0.2
	idx := int(EaseInQuad(local) * float64(len(FlashShades)-1))
	if idx >= len(FlashShades) {
		idx = len(FlashShades) - 1
	}
	return FlashShades[idx]
}
