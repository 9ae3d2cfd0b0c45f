// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package app wires the gate controller and the views into one Bubble Tea
// program.
package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/einarsolbakken/juleroerbord/internal/clock"
	"github.com/einarsolbakken/juleroerbord/internal/config"
	"github.com/einarsolbakken/juleroerbord/internal/content"
	"github.com/einarsolbakken/juleroerbord/internal/gate"
	"github.com/einarsolbakken/juleroerbord/internal/logging"
	"github.com/einarsolbakken/juleroerbord/internal/ui/components"
	"github.com/einarsolbakken/juleroerbord/internal/ui/styles"
)

// State is the screen the program shows.
type State int

const (
	// StateGate shows the access code card.
	StateGate State = iota
	// StateContent shows the invitation.
	StateContent
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateGate:
		return "gate"
	case StateContent:
		return "content"
	default:
		return "unknown"
	}
}

// ContentReloadedMsg carries a reloaded invitation from the file watcher.
type ContentReloadedMsg struct {
	Invitation *content.Invitation
	Err        error
}

// ErrNilConfig is returned by New without a configuration.
var ErrNilConfig = errors.New("app: config is required")

// Deps are the collaborators the model is built from.
type Deps struct {
	Config     *config.Config
	Store      gate.FlagStore
	Invitation *content.Invitation
	Logger     *slog.Logger
	// Clock drives animations. Nil means wall time.
	Clock clock.Clock
}

// Model is the root Bubble Tea model.
type Model struct {
	ctx    context.Context
	cfg    *config.Config
	logger *slog.Logger

	ctrl  *gate.Controller
	theme *styles.Theme
	keys  components.KeyMap

	state   State
	gate    *components.GateView
	content *components.ContentView

	width  int
	height int

	// lastErr is the most recent logout or reload failure, shown nowhere
	// but kept for the host to inspect after the program exits.
	lastErr error
}

// New builds the model. The controller reads the stored flag here, so a
// guest who opened the gate before starts on the content page.
func New(ctx context.Context, deps Deps) (*Model, error) {
	if deps.Config == nil {
		return nil, ErrNilConfig
	}
	logger := deps.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	clk := deps.Clock
	if clk == nil {
		clk = clock.Real()
	}
	inv := deps.Invitation
	if inv == nil {
		inv = content.Default()
	}

	m := &Model{
		ctx:    ctx,
		cfg:    deps.Config,
		logger: logger,
		theme:  styles.NewTheme(deps.Config.UI.Theme),
		keys:   components.DefaultKeyMap(),
	}

	ctrl, err := gate.New(ctx, deps.Config.GateConfig(), deps.Store,
		gate.WithLogger(logger),
		gate.WithOnAccessGranted(m.onAccessGranted),
	)
	if err != nil {
		return nil, err
	}
	m.ctrl = ctrl

	snow := deps.Config.SnowEnabled()
	density := deps.Config.UI.SnowDensity
	reduceMotion := deps.Config.UI.ReduceMotion

	m.gate = components.NewGateView(m.theme, ctrl,
		clk, components.NewSnowfall(m.theme, density, snow), reduceMotion)
	m.content = components.NewContentView(m.theme, inv,
		components.NewSnowfall(m.theme, density, snow))

	if ctrl.State() == gate.Unlocked {
		m.state = StateContent
	}
	return m, nil
}

// onAccessGranted runs inside Fire, which the model only calls from
// Update, so switching screens here is safe.
func (m *Model) onAccessGranted() {
	m.state = StateContent
}

// Controller exposes the gate controller.
func (m *Model) Controller() *gate.Controller { return m.ctrl }

// State returns the current screen.
func (m *Model) State() State { return m.state }

// Err returns the last logout or reload error.
func (m *Model) Err() error { return m.lastErr }

// Close tears the controller down so late timers are ignored.
func (m *Model) Close() {
	m.ctrl.Close()
	m.gate.Snow().Stop()
	m.content.Snow().Stop()
}

// Init starts the active screen.
func (m *Model) Init() tea.Cmd {
	if m.state == StateContent {
		return m.content.Init()
	}
	return m.gate.Init()
}

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.theme.SetSize(msg.Width, msg.Height)
		m.gate.SetSize(msg.Width, msg.Height)
		m.content.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case components.GateSubmitMsg:
		res := m.ctrl.Submit(m.ctx, msg.Input)
		return m, tea.Batch(m.gate.Apply(res), components.EffectCmds(res.Effects))

	case components.EffectMsg:
		if m.ctrl.Fire(msg.Effect) {
			m.gate.Snow().Stop()
			m.content.Reset()
			return m, m.content.Init()
		}
		return m, nil

	case components.LogoutRequestedMsg:
		return m, m.logout()

	case ContentReloadedMsg:
		if msg.Err != nil {
			m.lastErr = msg.Err
			m.logger.Warn("content reload failed", "error", msg.Err)
			return m, nil
		}
		m.content.SetInvitation(msg.Invitation)
		m.logger.Info("content reloaded")
		return m, nil

	case components.GateFrameMsg:
		// Frames started before the reveal keep arriving after the
		// switch to content; the gate must see them to stop framing.
		return m, m.gate.Update(msg)

	case components.SnowTickMsg:
		// Each snowfall ignores ticks that are not its own.
		return m, tea.Batch(m.gate.Update(msg), m.content.Update(msg))
	}

	if m.state == StateContent {
		return m, m.content.Update(msg)
	}
	return m, m.gate.Update(msg)
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.Close()
		return m, tea.Quit
	}
	if m.state == StateContent {
		if key.Matches(msg, m.keys.Close) {
			m.Close()
			return m, tea.Quit
		}
		return m, m.content.Update(msg)
	}
	return m, m.gate.Update(msg)
}

// logout resets the controller and returns to the gate. The screen
// changes even when clearing the stored flag fails.
func (m *Model) logout() tea.Cmd {
	if err := m.ctrl.Logout(m.ctx); err != nil {
		m.lastErr = err
		m.logger.Error("logout could not clear stored flag", "error", err)
	}
	m.state = StateGate
	m.content.Snow().Stop()
	return tea.Batch(m.gate.Reset(), m.gate.Init())
}

// View renders the active screen.
func (m *Model) View() string {
	if m.state == StateContent {
		return m.content.View()
	}
	return m.gate.View()
}
