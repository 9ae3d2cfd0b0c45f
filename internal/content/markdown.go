// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package content

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// Markdown renders the whole invitation as a Markdown document. It is what
// plain mode prints and what the TUI falls back to on tiny terminals.
func (inv *Invitation) Markdown() string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s %s\n\n", inv.Greeting, inv.Title)
	fmt.Fprintf(&b, "_%s_\n\n", inv.Date)

	fmt.Fprintf(&b, "## %s\n\n", inv.ProgramTitle)
	for _, ev := range inv.Timeline {
		fmt.Fprintf(&b, "- **%s** %s %s", ev.Time, ev.Icon, ev.Title)
		if ev.Subtitle != "" {
			fmt.Fprintf(&b, " - %s", ev.Subtitle)
		}
		b.WriteString("\n")
		if ev.Details != "" {
			fmt.Fprintf(&b, "  %s\n", ev.Details)
		}
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "## %s\n\n", inv.FAQTitle)
	if inv.FAQDescription != "" {
		fmt.Fprintf(&b, "%s\n\n", inv.FAQDescription)
	}
	for _, item := range inv.FAQ {
		fmt.Fprintf(&b, "**❓ %s**\n\n%s\n\n", item.Question, item.Answer)
	}

	fmt.Fprintf(&b, "## %s\n\n", inv.ArchiveTitle)
	if inv.ArchiveDescription != "" {
		fmt.Fprintf(&b, "%s\n\n", inv.ArchiveDescription)
	}
	for _, p := range inv.Archive {
		fmt.Fprintf(&b, "- %s (`%s`)\n", p.Caption, p.File)
	}
	b.WriteString("\n")

	if len(inv.Footer) > 0 {
		b.WriteString(strings.Join(inv.Footer, "  "))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderMarkdown renders md for the terminal at the given wrap width.
func RenderMarkdown(md string, width int) (string, error) {
	if width <= 0 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return strings.TrimRight(out, "\n"), nil
}
