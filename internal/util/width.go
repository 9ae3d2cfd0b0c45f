// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// StringWidth returns the number of terminal cells s occupies.
// Emoji and CJK runes count as two cells.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// TruncateWidth shortens s to at most maxWidth cells, appending "…" when
// anything was cut.
func TruncateWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, "…")
}

// CenterWidth pads s with spaces on both sides so it is centred within
// width cells. Strings wider than width are returned unchanged.
func CenterWidth(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	left := (width - w) / 2
	right := width - w - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

// PadRightWidth pads s with trailing spaces up to width cells.
func PadRightWidth(s string, width int) string {
	return runewidth.FillRight(s, width)
}
