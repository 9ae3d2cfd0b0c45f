// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/einarsolbakken/juleroerbord/internal/clock"
	"github.com/einarsolbakken/juleroerbord/internal/gate"
	"github.com/einarsolbakken/juleroerbord/internal/storage"
	"github.com/einarsolbakken/juleroerbord/internal/ui/components"
)

// =============================================================================
// HELPERS
// =============================================================================

type fakePrompter struct {
	lines   []string
	prompts int
	closed  bool
}

func (f *fakePrompter) Prompt(string) (string, error) {
	f.prompts++
	if len(f.lines) == 0 {
		return "", io.EOF
	}
	line := f.lines[0]
	f.lines = f.lines[1:]
	return line, nil
}

func (f *fakePrompter) Close() error {
	f.closed = true
	return nil
}

type harness struct {
	home  string
	clock *clock.FakeClock
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	home := t.TempDir()
	t.Setenv("JULEROERBORD_HOME", home)
	for _, k := range []string{"JULEROERBORD_SECRET", "JULEROERBORD_STORAGE", "JULEROERBORD_STORAGE_PATH", "JULEROERBORD_CONTENT"} {
		t.Setenv(k, "")
	}
	return &harness{
		home:  home,
		clock: clock.Fake(time.Date(2026, 12, 12, 18, 0, 0, 0, time.UTC)),
	}
}

// run executes the command line and returns its output.
func (h *harness) run(pr prompter, args ...string) (string, error) {
	if pr == nil {
		pr = &fakePrompter{}
	}
	cmd := newRootCmd(&rootOptions{
		clock:     h.clock,
		prompter:  func() (prompter, error) { return pr, nil },
		termWidth: func() int { return 80 },
	})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func (h *harness) status(t *testing.T, args ...string) StatusInfo {
	t.Helper()
	out, err := h.run(nil, append(args, "status", "--json")...)
	require.NoError(t, err)

	var resp struct {
		Success bool       `json:"success"`
		Data    StatusInfo `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp), out)
	require.True(t, resp.Success)
	return resp.Data
}

// =============================================================================
// TESTS
// =============================================================================

func TestVersion(t *testing.T) {
	h := newHarness(t)
	out, err := h.run(nil, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "juleroerbord "+Version)
	assert.Contains(t, out, "commit:")
}

func TestRoot_RequiresTerminal(t *testing.T) {
	h := newHarness(t)
	_, err := h.run(nil)
	var ttyErr *TTYRequiredError
	require.True(t, errors.As(err, &ttyErr), "got %v", err)
	assert.Contains(t, err.Error(), "--plain")
}

func TestStatus_FreshInstallIsLocked(t *testing.T) {
	h := newHarness(t)

	info := h.status(t)
	assert.Equal(t, "locked", info.State)
	assert.Equal(t, storage.BackendFile, info.Backend)
	assert.Equal(t, filepath.Join(h.home, storage.DefaultFileName), info.Path)
	assert.Equal(t, gate.DefaultFlagKey, info.FlagKey)

	out, err := h.run(nil, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "locked")
	assert.Contains(t, out, "(defaults)")
}

func TestStatus_CorruptFlagFileReadsLocked(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, os.WriteFile(filepath.Join(h.home, storage.DefaultFileName), []byte("{not json"), 0600))

	assert.Equal(t, "locked", h.status(t).State)
}

func TestStatus_Ephemeral(t *testing.T) {
	h := newHarness(t)
	info := h.status(t, "--ephemeral")
	assert.Equal(t, storage.BackendMemory, info.Backend)
	assert.Empty(t, info.Path)
}

func TestPlain_WrongThenRightCode(t *testing.T) {
	h := newHarness(t)
	pr := &fakePrompter{lines: []string{"feil", "2026"}}

	type result struct {
		out string
		err error
	}
	done := make(chan result, 1)
	go func() {
		out, err := h.run(pr, "--plain")
		done <- result{out, err}
	}()

	// The reveal timer runs on the fake clock; keep it moving until the
	// command returns.
	deadline := time.After(10 * time.Second)
	var res result
loop:
	for {
		select {
		case res = <-done:
			break loop
		case <-deadline:
			t.Fatal("plain mode did not finish")
		case <-time.After(5 * time.Millisecond):
			h.clock.Advance(100 * time.Millisecond)
		}
	}

	require.NoError(t, res.err)
	assert.Contains(t, res.out, components.GateErrorText)
	assert.Contains(t, res.out, components.GateOpeningText)
	assert.Contains(t, res.out, "Program")
	assert.True(t, pr.closed)
	assert.Equal(t, 2, pr.prompts)

	assert.Equal(t, "unlocked", h.status(t).State)
}

func TestPlain_AlreadyUnlockedSkipsPrompt(t *testing.T) {
	h := newHarness(t)
	store, err := storage.NewFileStore(filepath.Join(h.home, storage.DefaultFileName))
	require.NoError(t, err)
	require.NoError(t, store.Set(context.Background(), gate.DefaultFlagKey, true))
	require.NoError(t, store.Close())

	pr := &fakePrompter{}
	out, err := h.run(pr, "--plain")
	require.NoError(t, err)
	assert.Zero(t, pr.prompts)
	assert.Contains(t, out, "Program")
}

func TestPlain_EOFLeavesGateLocked(t *testing.T) {
	h := newHarness(t)
	pr := &fakePrompter{lines: []string{"   ", "NOPE"}}

	out, err := h.run(pr, "--plain")
	require.NoError(t, err)
	assert.Contains(t, out, components.GateErrorText)
	assert.Equal(t, 1, strings.Count(out, components.GateErrorText), "blank input must not count as a wrong code")
	assert.Equal(t, "locked", h.status(t).State)
}

func TestLogout(t *testing.T) {
	h := newHarness(t)
	store, err := storage.NewFileStore(filepath.Join(h.home, storage.DefaultFileName))
	require.NoError(t, err)
	require.NoError(t, store.Set(context.Background(), gate.DefaultFlagKey, true))
	require.NoError(t, store.Close())
	require.Equal(t, "unlocked", h.status(t).State)

	out, err := h.run(nil, "logout")
	require.NoError(t, err)
	assert.Contains(t, out, "Logget ut")
	assert.Equal(t, "locked", h.status(t).State)

	// Logging out twice is fine.
	_, err = h.run(nil, "logout")
	require.NoError(t, err)
}

func TestConfig_SetAndGet(t *testing.T) {
	h := newHarness(t)

	out, err := h.run(nil, "config", "set", "ui.snow_density", "20")
	require.NoError(t, err)
	assert.Contains(t, out, "ui.snow_density = 20")
	assert.FileExists(t, filepath.Join(h.home, "config.toml"))

	out, err = h.run(nil, "config", "get", "ui.snow_density")
	require.NoError(t, err)
	assert.Equal(t, "20", strings.TrimSpace(out))

	out, err = h.run(nil, "config", "set", "gate.secret", "NISSE")
	require.NoError(t, err)
	assert.NotContains(t, out, "NISSE")

	out, err = h.run(nil, "config", "get", "gate.secret")
	require.NoError(t, err)
	assert.Equal(t, "NISSE", strings.TrimSpace(out))
}

func TestConfig_SetRejectsInvalidValues(t *testing.T) {
	h := newHarness(t)

	_, err := h.run(nil, "config", "set", "gate.reveal_delay_ms", "100")
	require.Error(t, err)
	assert.NoFileExists(t, filepath.Join(h.home, "config.toml"))

	_, err = h.run(nil, "config", "set", "no.such.key", "1")
	require.Error(t, err)

	_, err = h.run(nil, "config", "get")
	require.Error(t, err)
}

func TestConfig_ShowRedactsSecret(t *testing.T) {
	h := newHarness(t)

	out, err := h.run(nil, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "[REDACTED]")
	assert.NotContains(t, out, `"`+gate.DefaultSecret+`"`)

	out, err = h.run(nil, "config", "show", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, "[REDACTED]")

	out, err = h.run(nil, "config", "show", "--reveal")
	require.NoError(t, err)
	assert.Contains(t, out, `"`+gate.DefaultSecret+`"`)
}

func TestConfig_Path(t *testing.T) {
	h := newHarness(t)

	out, err := h.run(nil, "config", "path")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(h.home, "config.toml"), strings.TrimSpace(out))

	custom := filepath.Join(h.home, "party.json")
	out, err = h.run(nil, "--config", custom, "config", "path")
	require.NoError(t, err)
	assert.Equal(t, custom, strings.TrimSpace(out))
}

type recordingLineState struct {
	lines   []string
	history []string
	closed  bool
}

func (r *recordingLineState) Prompt(string) (string, error) {
	if len(r.lines) == 0 {
		return "", io.EOF
	}
	line := r.lines[0]
	r.lines = r.lines[1:]
	return line, nil
}

func (r *recordingLineState) AppendHistory(item string) { r.history = append(r.history, item) }

func (r *recordingLineState) Close() error {
	r.closed = true
	return nil
}

func TestLinerPrompter_KeepsCodesOutOfHistory(t *testing.T) {
	state := &recordingLineState{lines: []string{"feil", gate.DefaultSecret}}
	p := &linerPrompter{state: state}

	for range 2 {
		_, err := p.Prompt("Tilgangskode: ")
		require.NoError(t, err)
	}
	_, err := p.Prompt("Tilgangskode: ")
	require.ErrorIs(t, err, io.EOF)
	require.NoError(t, p.Close())

	assert.Empty(t, state.history)
	assert.True(t, state.closed)
}
