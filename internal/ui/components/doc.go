// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package components provides the Bubble Tea views of the juleroerbord TUI.

# Views

GateView (gate_view.go) - The access code card. It upper-cases input as it
is typed, shows the inline error and shake after a wrong code and plays the
gift, fade and flash reveal after the right one. Every decision comes from
the gate.Controller it displays.

ContentView (content_view.go) - The invitation page: hero, timeline cards
that flip on enter, the expandable Arkiv and FAQ cards and the emoji footer.

Snowfall (snowfall.go) - A tick-driven particle field drawn around a
centered block.

# Messages

The views talk to their host through messages:

	GateSubmitMsg      - the user submitted a non-empty code
	EffectMsg          - a gate effect scheduled with EffectCmd elapsed
	GateFrameMsg       - redraw during shake and reveal
	SnowTickMsg        - advance one snowfall
	LogoutRequestedMsg - the user asked to log out

EffectCmd turns a gate.Effect into a tea.Tick so the controller's timers run
inside the Bubble Tea event loop.
*/
package components
