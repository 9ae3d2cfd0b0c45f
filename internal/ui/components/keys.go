// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// KEY MAP DEFINITION
// =============================================================================

// KeyMap defines the keyboard bindings for the gate and content views.
// The gate only reacts to Submit and Quit; every other key is typed into
// the access code input.
type KeyMap struct {
	Submit   key.Binding
	Quit     key.Binding
	Close    key.Binding
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
	Next     key.Binding
	Prev     key.Binding
	Toggle   key.Binding
	Logout   key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "åpne"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "avslutt"),
		),
		Close: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "avslutt"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "opp"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "ned"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup", "side opp"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d", " "),
			key.WithHelp("pgdn", "side ned"),
		),
		Home: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "til toppen"),
		),
		End: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "til bunnen"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "neste"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "forrige"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "snu/vis"),
		),
		Logout: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "logg ut"),
		),
	}
}

// GateHelp returns the bindings shown under the gate card.
func (k KeyMap) GateHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Quit}
}

// ContentHelp returns the bindings shown at the bottom of the content page.
func (k KeyMap) ContentHelp() []key.Binding {
	return []key.Binding{k.Next, k.Toggle, k.Down, k.Logout, k.Close}
}

// HelpLine renders bindings as "key desc • key desc".
func HelpLine(keyStyle, descStyle lipgloss.Style, bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, keyStyle.Render(h.Key)+" "+descStyle.Render(h.Desc))
	}
	return strings.Join(parts, descStyle.Render(" • "))
}
