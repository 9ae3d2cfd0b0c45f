// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/einarsolbakken/juleroerbord/internal/clock"
	"github.com/einarsolbakken/juleroerbord/internal/gate"
	"github.com/einarsolbakken/juleroerbord/internal/ui/styles"
	"github.com/einarsolbakken/juleroerbord/internal/util"
)

// Gate view text.
const (
	GatePlaceholder = "Tilgangskode"
	GateButtonLabel = "Åpne"
	GateErrorText   = "Feil kode! Prøv igjen 🎅"
	GateOpeningText = "Åpner …"
)

const (
	gateInputWidth = 20
	giftRiseRows   = 4
)

// =============================================================================
// GATE VIEW
// =============================================================================

// GateView is the display surface of a gate.Controller. It owns the code
// input and the animations; the controller owns every decision. Submits
// leave the view as GateSubmitMsg so the host can run the controller and
// schedule its effects.
type GateView struct {
	theme *styles.Theme
	ctrl  *gate.Controller
	clock clock.Clock
	keys  KeyMap

	input textinput.Model
	bar   progress.Model
	snow  *Snowfall

	width  int
	height int

	reduceMotion bool
	framing      bool
	born         time.Time
	shakeStart   time.Time
	revealStart  time.Time
}

// NewGateView creates the gate view. snow may be nil.
func NewGateView(theme *styles.Theme, ctrl *gate.Controller, clk clock.Clock, snow *Snowfall, reduceMotion bool) *GateView {
	if clk == nil {
		clk = clock.Real()
	}
	if snow == nil {
		snow = NewSnowfall(theme, 0, false)
	}

	ti := textinput.New()
	ti.Placeholder = GatePlaceholder
	ti.Prompt = ""
	ti.CharLimit = 64
	ti.Width = gateInputWidth
	ti.TextStyle = theme.InputText
	ti.PlaceholderStyle = theme.Placeholder
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(styles.Red)
	ti.Focus()

	bar := progress.New(
		progress.WithGradient(styles.Gold.Dark, styles.Red.Dark),
		progress.WithoutPercentage(),
		progress.WithWidth(gateInputWidth+2),
	)

	return &GateView{
		theme:        theme,
		ctrl:         ctrl,
		clock:        clk,
		keys:         DefaultKeyMap(),
		input:        ti,
		bar:          bar,
		snow:         snow,
		reduceMotion: reduceMotion,
		born:         clk.Now(),
	}
}

// Init starts the cursor blink and the snowfall.
func (g *GateView) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, g.snow.Start())
}

// SetSize updates the screen size. Two rows are reserved for the corner
// decorations.
func (g *GateView) SetSize(width, height int) {
	g.width, g.height = width, height
	g.snow.SetSize(width, max(height-2, 0))
}

// Snow returns the view's snowfall.
func (g *GateView) Snow() *Snowfall { return g.snow }

// Value returns the current input text.
func (g *GateView) Value() string { return g.input.Value() }

// Reset clears the input and every animation. Used after logout.
func (g *GateView) Reset() tea.Cmd {
	g.input.Reset()
	// A frame tick may have been lost while another screen was active.
	g.framing = false
	g.shakeStart = time.Time{}
	g.revealStart = time.Time{}
	g.born = g.clock.Now()
	return g.input.Focus()
}

// Apply records the start of the animation a submit result begins.
// The caller schedules res.Effects separately.
func (g *GateView) Apply(res gate.Result) tea.Cmd {
	now := g.clock.Now()
	switch res.Outcome {
	case gate.OutcomeAccepted:
		g.revealStart = now
		g.input.Blur()
	case gate.OutcomeInvalidCode:
		g.shakeStart = now
	default:
		return nil
	}
	return g.startFrames()
}

func (g *GateView) startFrames() tea.Cmd {
	if g.reduceMotion || g.framing {
		return nil
	}
	g.framing = true
	return frameCmd()
}

func frameCmd() tea.Cmd {
	return tea.Tick(styles.FrameRate, func(time.Time) tea.Msg {
		return GateFrameMsg{}
	})
}

// animating reports whether frames are still needed.
func (g *GateView) animating() bool {
	v := g.ctrl.Snapshot()
	if v.State == gate.Unlocking {
		return true
	}
	return v.Shaking && g.clock.Now().Sub(g.shakeStart) < g.ctrl.Config().ShakeDuration
}

// Update handles input, frames and snow ticks.
func (g *GateView) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return g.handleKey(msg)

	case GateFrameMsg:
		if g.animating() {
			return frameCmd()
		}
		g.framing = false
		return nil

	case SnowTickMsg:
		return g.snow.Update(msg)
	}

	var cmd tea.Cmd
	g.input, cmd = g.input.Update(msg)
	return cmd
}

func (g *GateView) handleKey(msg tea.KeyMsg) tea.Cmd {
	if g.ctrl.Snapshot().Disabled {
		return nil
	}
	if key.Matches(msg, g.keys.Submit) {
		value := g.input.Value()
		if !g.ctrl.CanSubmit(value) {
			return nil
		}
		return func() tea.Msg { return GateSubmitMsg{Input: value} }
	}

	// The field shows what will be compared: typed letters are upper-cased
	// as they arrive.
	if msg.Type == tea.KeyRunes {
		msg.Runes = []rune(strings.ToUpper(string(msg.Runes)))
	}
	var cmd tea.Cmd
	g.input, cmd = g.input.Update(msg)
	return cmd
}

// =============================================================================
// RENDERING
// =============================================================================

// View renders the whole gate screen.
func (g *GateView) View() string {
	v := g.ctrl.Snapshot()
	now := g.clock.Now()

	var block string
	switch v.State {
	case gate.Unlocking:
		p := styles.Progress(now.Sub(g.revealStart), g.ctrl.Config().RevealDelay)
		if !g.reduceMotion && styles.PhaseAt(p) == styles.RevealFlash {
			return g.renderFlash(p)
		}
		block = g.renderReveal(p)
	case gate.Unlocked:
		return ""
	default:
		block = g.renderLocked(v, now)
	}

	if g.width <= 0 || g.height <= 0 {
		return block
	}
	top := g.corners(styles.Decorations.TopLeft, styles.Decorations.TopRight)
	bottom := g.corners(styles.Decorations.BottomLeft, styles.Decorations.BottomRight)
	return top + "\n" + g.snow.Overlay(block) + "\n" + bottom
}

func (g *GateView) corners(left, right string) string {
	gap := g.width - util.StringWidth(left) - util.StringWidth(right) - 2
	if gap < 1 {
		return left
	}
	return " " + left + strings.Repeat(" ", gap) + right
}

func (g *GateView) renderGift(lift int) string {
	gift := g.theme.GateGift.Render(styles.GiftIcon)
	if lift > 0 {
		return gift + "\n"
	}
	return "\n" + gift
}

func (g *GateView) renderInput(v gate.View) string {
	style := g.theme.Input
	switch {
	case v.Disabled:
		style = g.theme.InputDisabled
	case v.Error:
		style = g.theme.InputError
	}
	return style.Width(gateInputWidth + 2).Render(g.input.View())
}

func (g *GateView) renderButton() string {
	label := util.CenterWidth(GateButtonLabel, gateInputWidth-4)
	if !g.ctrl.CanSubmit(g.input.Value()) {
		return g.theme.ButtonDisabled.Render(label)
	}
	return g.theme.Button.Render(label)
}

func (g *GateView) renderLocked(v gate.View, now time.Time) string {
	lift := 0
	if !g.reduceMotion {
		lift = styles.BounceLift(now.Sub(g.born))
	}

	errLine := " "
	if v.Error {
		errLine = g.theme.ErrorLine.Render(styles.RenderError(GateErrorText))
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		g.renderGift(lift),
		"",
		g.renderInput(v),
		errLine,
		g.renderButton(),
		"",
		HelpLine(g.theme.HelpKey, g.theme.HelpDesc, g.keys.GateHelp()),
	)

	card := g.theme.GateCard
	if v.Error {
		card = g.theme.GateCardError
	}
	rendered := card.Render(body)

	if g.reduceMotion {
		return rendered
	}
	// Pad both sides by the shake amplitude so the block width stays fixed
	// while the card moves inside it.
	offset := 0
	if v.Shaking {
		offset = styles.ShakeOffset(now.Sub(g.shakeStart), g.ctrl.Config().ShakeDuration)
	}
	shifted := styles.Shift(rendered, styles.ShakeAmplitude+offset)
	return lipgloss.NewStyle().
		Width(lipgloss.Width(rendered) + 2*styles.ShakeAmplitude).
		Render(shifted)
}

func (g *GateView) renderReveal(p float64) string {
	v := g.ctrl.Snapshot()
	body := lipgloss.JoinVertical(lipgloss.Center,
		"",
		g.renderInput(v),
		g.theme.HelpDesc.Render(GateOpeningText),
		g.bar.ViewAs(p),
	)

	if g.reduceMotion {
		return g.theme.GateCard.Render(lipgloss.JoinVertical(lipgloss.Center,
			g.renderGift(0), body))
	}

	card := g.theme.GateCard
	if styles.PhaseAt(p) == styles.RevealFade {
		card = card.BorderForeground(styles.TextMuted).Faint(true)
	}

	rise := styles.GiftRise(p, giftRiseRows)
	rows := make([]string, 0, giftRiseRows+2)
	for i := 0; i < giftRiseRows-rise; i++ {
		rows = append(rows, "")
	}
	if styles.PhaseAt(p) == styles.RevealGift {
		rows = append(rows, g.theme.GateGift.Render(styles.GiftIcon))
	} else {
		rows = append(rows, g.theme.Flash.Render("✨"))
	}
	for i := 0; i < rise; i++ {
		rows = append(rows, "")
	}
	return lipgloss.JoinVertical(lipgloss.Center,
		strings.Join(rows, "\n"),
		card.Render(body),
	)
}

func (g *GateView) renderFlash(p float64) string {
	shade := styles.FlashShade(p)
	if g.width <= 0 || g.height <= 0 {
		return g.theme.Flash.Render(shade)
	}
	line := g.theme.Flash.Render(strings.Repeat(shade, g.width))
	lines := make([]string, g.height)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}
