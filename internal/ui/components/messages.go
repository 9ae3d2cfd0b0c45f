// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/einarsolbakken/juleroerbord/internal/gate"
)

// GateSubmitMsg is sent when the user submits a non-empty code.
type GateSubmitMsg struct {
	Input string
}

// EffectMsg is delivered when a scheduled gate effect has elapsed.
type EffectMsg struct {
	Effect gate.Effect
}

// GateFrameMsg redraws the gate while it shakes or reveals.
type GateFrameMsg struct{}

// LogoutRequestedMsg asks the host to reset the gate.
type LogoutRequestedMsg struct{}

// SnowTickMsg advances the snowfall identified by ID.
type SnowTickMsg struct {
	ID  int
	Seq int
}

// EffectCmd schedules e as a Bubble Tea timer. The returned command
// delivers EffectMsg after e.Delay.
func EffectCmd(e gate.Effect) tea.Cmd {
	return tea.Tick(e.Delay, func(time.Time) tea.Msg {
		return EffectMsg{Effect: e}
	})
}

// EffectCmds schedules every effect of a submit result.
func EffectCmds(effects []gate.Effect) tea.Cmd {
	if len(effects) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(effects))
	for _, e := range effects {
		cmds = append(cmds, EffectCmd(e))
	}
	return tea.Batch(cmds...)
}
