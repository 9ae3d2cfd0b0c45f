// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/einarsolbakken/juleroerbord/internal/clock"
	"github.com/einarsolbakken/juleroerbord/internal/content"
	"github.com/einarsolbakken/juleroerbord/internal/gate"
	"github.com/einarsolbakken/juleroerbord/internal/storage"
	"github.com/einarsolbakken/juleroerbord/internal/ui/styles"
)

var testStart = time.Date(2026, 12, 12, 18, 0, 0, 0, time.UTC)

func newTestGate(t *testing.T, reduceMotion bool) (*GateView, *gate.Controller, *clock.FakeClock) {
	t.Helper()
	ctrl, err := gate.New(context.Background(), gate.DefaultConfig(), storage.NewMemoryStore())
	if err != nil {
		t.Fatalf("gate.New() error = %v", err)
	}
	clk := clock.Fake(testStart)
	view := NewGateView(styles.NewTheme(styles.ModeDark), ctrl, clk, nil, reduceMotion)
	view.SetSize(80, 24)
	return view, ctrl, clk
}

func typeText(v *GateView, s string) {
	v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func enter() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEnter}
}

func effectFor(t *testing.T, res gate.Result, id gate.TimerID) gate.Effect {
	t.Helper()
	for _, e := range res.Effects {
		if e.Timer == id {
			return e
		}
	}
	t.Fatalf("no %v effect in %+v", id, res.Effects)
	return gate.Effect{}
}

// =============================================================================
// GATE VIEW TESTS
// =============================================================================

func TestGateView_UppercasesInput(t *testing.T) {
	v, _, _ := newTestGate(t, false)
	typeText(v, "jul")
	typeText(v, "2024")
	if got := v.Value(); got != "JUL2024" {
		t.Errorf("Value() = %q, want %q", got, "JUL2024")
	}
}

func TestGateView_SubmitEmitsMsg(t *testing.T) {
	v, _, _ := newTestGate(t, false)
	typeText(v, "2026")

	cmd := v.Update(enter())
	if cmd == nil {
		t.Fatal("enter with input should return a command")
	}
	msg, ok := cmd().(GateSubmitMsg)
	if !ok {
		t.Fatalf("expected GateSubmitMsg, got %T", cmd())
	}
	if msg.Input != "2026" {
		t.Errorf("Input = %q, want %q", msg.Input, "2026")
	}
}

func TestGateView_EmptySubmitDoesNothing(t *testing.T) {
	v, _, _ := newTestGate(t, false)
	if cmd := v.Update(enter()); cmd != nil {
		t.Error("enter on empty input should do nothing")
	}
	typeText(v, "   ")
	if cmd := v.Update(enter()); cmd != nil {
		t.Error("enter on blank input should do nothing")
	}
}

func TestGateView_PlaceholderAndButton(t *testing.T) {
	v, _, _ := newTestGate(t, false)
	view := v.View()
	for _, want := range []string{GatePlaceholder, GateButtonLabel, styles.GiftIcon} {
		if !strings.Contains(view, want) {
			t.Errorf("View() should contain %q", want)
		}
	}
}

func TestGateView_ErrorShownAndCleared(t *testing.T) {
	v, ctrl, _ := newTestGate(t, false)
	typeText(v, "feil")

	res := ctrl.Submit(context.Background(), v.Value())
	if res.Outcome != gate.OutcomeInvalidCode {
		t.Fatalf("Outcome = %v, want invalid_code", res.Outcome)
	}
	if cmd := v.Apply(res); cmd == nil {
		t.Error("Apply() should start animation frames")
	}
	if !strings.Contains(v.View(), GateErrorText) {
		t.Error("View() should show the error text after a wrong code")
	}

	ctrl.Fire(effectFor(t, res, gate.TimerError))
	if strings.Contains(v.View(), GateErrorText) {
		t.Error("error text should clear once the error effect fires")
	}
}

func TestGateView_DisabledWhileUnlocking(t *testing.T) {
	v, ctrl, _ := newTestGate(t, false)
	typeText(v, "2026")
	res := ctrl.Submit(context.Background(), v.Value())
	v.Apply(res)

	typeText(v, "X")
	if got := v.Value(); got != "2026" {
		t.Errorf("input should be frozen while unlocking, got %q", got)
	}
	if cmd := v.Update(enter()); cmd != nil {
		t.Error("enter while unlocking should do nothing")
	}
	if !strings.Contains(v.View(), GateOpeningText) {
		t.Error("View() should show the opening text")
	}
}

func TestGateView_FlashNearEnd(t *testing.T) {
	v, ctrl, clk := newTestGate(t, false)
	typeText(v, "2026")
	v.Apply(ctrl.Submit(context.Background(), v.Value()))

	clk.Advance(2450 * time.Millisecond)
	view := v.View()
	if !strings.Contains(view, "▓") {
		t.Errorf("expected flash shading near the end of the reveal")
	}
	if lines := strings.Count(view, "\n") + 1; lines != 24 {
		t.Errorf("flash should fill the screen, got %d lines", lines)
	}
}

func TestGateView_ReduceMotion(t *testing.T) {
	v, ctrl, clk := newTestGate(t, true)
	typeText(v, "2026")
	if cmd := v.Apply(ctrl.Submit(context.Background(), v.Value())); cmd != nil {
		t.Error("reduce motion should not schedule frames")
	}
	clk.Advance(2450 * time.Millisecond)
	if strings.Contains(v.View(), "▓") {
		t.Error("reduce motion should skip the flash")
	}
}

func TestGateView_FramesStopWhenIdle(t *testing.T) {
	v, ctrl, clk := newTestGate(t, false)
	typeText(v, "feil")
	res := ctrl.Submit(context.Background(), v.Value())
	v.Apply(res)

	if cmd := v.Update(GateFrameMsg{}); cmd == nil {
		t.Error("frames should continue while shaking")
	}
	clk.Advance(500 * time.Millisecond)
	ctrl.Fire(effectFor(t, res, gate.TimerShake))
	if cmd := v.Update(GateFrameMsg{}); cmd != nil {
		t.Error("frames should stop once the shake is over")
	}
}

func TestGateView_Reset(t *testing.T) {
	v, _, _ := newTestGate(t, false)
	typeText(v, "ABC")
	v.Reset()
	if v.Value() != "" {
		t.Errorf("Reset() should clear input, got %q", v.Value())
	}
}

func TestGateView_UnlockedRendersNothing(t *testing.T) {
	store := storage.NewMemoryStore()
	_ = store.Set(context.Background(), gate.DefaultFlagKey, true)
	ctrl, err := gate.New(context.Background(), gate.DefaultConfig(), store)
	if err != nil {
		t.Fatal(err)
	}
	v := NewGateView(styles.NewTheme(styles.ModeDark), ctrl, clock.Fake(testStart), nil, false)
	if got := v.View(); got != "" {
		t.Errorf("View() = %q, want empty once unlocked", got)
	}
}

// =============================================================================
// EFFECT COMMAND TESTS
// =============================================================================

func TestEffectCmd(t *testing.T) {
	e := gate.Effect{Timer: gate.TimerShake, Delay: time.Millisecond, Generation: 3}
	msg, ok := EffectCmd(e)().(EffectMsg)
	if !ok {
		t.Fatal("EffectCmd should deliver EffectMsg")
	}
	if msg.Effect != e {
		t.Errorf("Effect = %+v, want %+v", msg.Effect, e)
	}
}

func TestEffectCmds_Empty(t *testing.T) {
	if EffectCmds(nil) != nil {
		t.Error("no effects should mean no command")
	}
}

// =============================================================================
// SNOWFALL TESTS
// =============================================================================

func TestSnowfall_Disabled(t *testing.T) {
	s := NewSnowfall(styles.NewTheme(styles.ModeDark), 12, false)
	s.SetSize(80, 24)
	if s.Count() != 0 {
		t.Errorf("disabled snowfall should have no flakes, got %d", s.Count())
	}
	if s.Start() != nil {
		t.Error("disabled snowfall should not tick")
	}
	out := s.Overlay("hei")
	if !strings.Contains(out, "hei") {
		t.Error("Overlay() should keep the block")
	}
}

func TestSnowfall_Density(t *testing.T) {
	s := NewSnowfall(styles.NewTheme(styles.ModeDark), 12, true)
	s.SetSize(80, 24)
	if got, want := s.Count(), 80*24*12/snowDensityCells; got != want {
		t.Errorf("Count() = %d, want %d", got, want)
	}

	zero := NewSnowfall(nil, 0, true)
	zero.SetSize(80, 24)
	if zero.Enabled() || zero.Count() != 0 {
		t.Error("zero density should disable snow")
	}
}

func TestSnowfall_StepStaysInBounds(t *testing.T) {
	s := NewSnowfall(nil, 50, true)
	s.SetSize(40, 10)
	for i := 0; i < 200; i++ {
		s.Step()
	}
	for _, f := range s.flakes {
		if f.x < 0 || f.x >= 40 || f.y < 0 || f.y >= 10 {
			t.Fatalf("flake out of bounds: %+v", f)
		}
	}
}

func TestSnowfall_TickLifecycle(t *testing.T) {
	s := NewSnowfall(nil, 12, true)
	s.SetSize(40, 10)

	if s.Start() == nil {
		t.Fatal("Start() should return a tick")
	}
	if s.Start() != nil {
		t.Error("second Start() should not schedule another tick")
	}
	first := s.seq
	if s.Update(SnowTickMsg{ID: s.ID() + 1000, Seq: first}) != nil {
		t.Error("ticks for another snowfall should be ignored")
	}
	if s.Update(SnowTickMsg{ID: s.ID(), Seq: first}) == nil {
		t.Error("own tick should schedule the next")
	}
	s.Stop()
	if s.Update(SnowTickMsg{ID: s.ID(), Seq: first}) != nil {
		t.Error("stopped snowfall should not reschedule")
	}
	if s.Start() == nil {
		t.Fatal("restart should return a tick")
	}
	if s.Update(SnowTickMsg{ID: s.ID(), Seq: first}) != nil {
		t.Error("a tick from before the restart should be dropped")
	}
}

func TestSnowfall_Overlay(t *testing.T) {
	s := NewSnowfall(nil, 100, true)
	s.SetSize(30, 9)
	out := s.Overlay("abc\ndef")
	lines := strings.Split(out, "\n")
	if len(lines) != 9 {
		t.Fatalf("Overlay() height = %d, want 9", len(lines))
	}
	if !strings.Contains(lines[3], "abc") || !strings.Contains(lines[4], "def") {
		t.Errorf("block should be centered, got %q / %q", lines[3], lines[4])
	}
}

// =============================================================================
// CONTENT VIEW TESTS
// =============================================================================

func newTestContent(t *testing.T) *ContentView {
	t.Helper()
	c := NewContentView(styles.NewTheme(styles.ModeDark), content.Default(), nil)
	c.SetSize(100, 40)
	return c
}

func TestContentView_Renders(t *testing.T) {
	c := newTestContent(t)
	page := c.View() + strings.Join(c.allLines(), "\n")
	for _, want := range []string{LogoutLabel, "Velkommen til", "Jule", "roer", "Program", "Treningsøkt", "Arkiv", "FAQ"} {
		if !strings.Contains(page, want) {
			t.Errorf("content should contain %q", want)
		}
	}
}

func TestContentView_FocusWraps(t *testing.T) {
	c := newTestContent(t)
	n := c.itemCount()
	for i := 0; i < n; i++ {
		c.Update(tea.KeyMsg{Type: tea.KeyTab})
	}
	if c.Focus() != 0 {
		t.Errorf("focus should wrap to 0, got %d", c.Focus())
	}
	c.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if c.Focus() != n-1 {
		t.Errorf("shift+tab from 0 should focus the last item, got %d", c.Focus())
	}
}

func TestContentView_FlipCard(t *testing.T) {
	c := newTestContent(t)
	c.Update(enter())
	if !c.Flipped(0) {
		t.Fatal("enter should flip the focused card")
	}
	details := c.Invitation().Timeline[0].Details
	if !strings.Contains(strings.Join(c.allLines(), "\n"), details[:20]) {
		t.Error("flipped card should show its details")
	}
	c.Update(enter())
	if c.Flipped(0) {
		t.Error("second enter should flip back")
	}
}

func TestContentView_OneExpandedCard(t *testing.T) {
	c := newTestContent(t)
	c.focus = c.archiveIndex()
	c.Update(enter())
	if c.Expanded() != CardArchive {
		t.Fatalf("Expanded() = %q, want archive", c.Expanded())
	}
	if !strings.Contains(strings.Join(c.allLines(), "\n"), "Arkivbilde 1") {
		t.Error("expanded archive should list photos")
	}

	c.focus = c.faqIndex()
	c.Update(enter())
	if c.Expanded() != CardFAQ {
		t.Errorf("opening FAQ should close the archive, got %q", c.Expanded())
	}
	c.Update(enter())
	if c.Expanded() != CardNone {
		t.Errorf("enter on an open card should close it, got %q", c.Expanded())
	}
}

func TestContentView_Logout(t *testing.T) {
	c := newTestContent(t)
	cmd := c.Update(tea.KeyMsg{Type: tea.KeyCtrlO})
	if cmd == nil {
		t.Fatal("ctrl+o should request logout")
	}
	if _, ok := cmd().(LogoutRequestedMsg); !ok {
		t.Error("expected LogoutRequestedMsg")
	}

	c.focus = c.logoutIndex()
	cmd = c.Update(enter())
	if cmd == nil {
		t.Fatal("enter on the logout button should request logout")
	}
	if _, ok := cmd().(LogoutRequestedMsg); !ok {
		t.Error("expected LogoutRequestedMsg")
	}
}

func TestContentView_SetInvitation(t *testing.T) {
	c := newTestContent(t)
	c.focus = c.logoutIndex()

	inv := content.Default()
	inv.Timeline = inv.Timeline[:1]
	c.SetInvitation(inv)
	if c.Focus() != 0 {
		t.Errorf("focus beyond the new item count should reset, got %d", c.Focus())
	}
	c.SetInvitation(nil)
	if c.Invitation() != inv {
		t.Error("nil invitation should be ignored")
	}
}

func TestContentView_NarrowFallsBackToMarkdown(t *testing.T) {
	c := NewContentView(styles.NewTheme(styles.ModeDark), content.Default(), nil)
	c.SetSize(minCardLayoutWidth-1, 30)
	if c.spans != nil {
		t.Error("narrow layout should not track card spans")
	}
}

func TestContentView_Reset(t *testing.T) {
	c := newTestContent(t)
	c.Update(enter())
	c.focus = 2
	c.Reset()
	if c.Focus() != 0 || c.Flipped(0) || c.Expanded() != CardNone {
		t.Error("Reset() should clear focus, flips and expansion")
	}
}

// allLines returns the full viewport document, not just the visible part.
func (c *ContentView) allLines() []string {
	saved := c.viewport.YOffset
	c.viewport.Height = 10000
	out := strings.Split(c.viewport.View(), "\n")
	c.viewport.Height = max(c.height-2, 1)
	c.viewport.SetYOffset(saved)
	return out
}
