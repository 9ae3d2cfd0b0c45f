// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"loud":    slog.LevelInfo,
	}
	for in, want := range tests {
		require.Equal(t, want, ParseLevel(in), "ParseLevel(%q)", in)
	}
}

func TestNewWithWriter_Fields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, Options{Level: "info", Version: "1.2.3"})

	logger.Info("gate opened", "reveal_delay_ms", 2500)
	logger.Debug("hidden")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1, "debug record filtered at info level")

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	require.Equal(t, "gate opened", rec["msg"])
	require.Equal(t, "juleroerbord", rec["app"])
	require.Equal(t, "1.2.3", rec["version"])
	require.EqualValues(t, 2500, rec["reveal_delay_ms"])

	_, err := uuid.Parse(rec["session_id"].(string))
	require.NoError(t, err)
}

func TestNewWithWriter_SessionIDsDiffer(t *testing.T) {
	var a, b bytes.Buffer
	NewWithWriter(&a, Options{}).Info("x")
	NewWithWriter(&b, Options{}).Info("x")

	var ra, rb map[string]any
	require.NoError(t, json.Unmarshal(a.Bytes(), &ra))
	require.NoError(t, json.Unmarshal(b.Bytes(), &rb))
	require.NotEqual(t, ra["session_id"], rb["session_id"])
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "juleroerbord.log")

	logger, closer, err := New(Options{Path: path, Level: "debug"})
	require.NoError(t, err)
	logger.Debug("startup")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `"msg":"startup"`)
}

func TestNew_EmptyPathDiscards(t *testing.T) {
	logger, closer, err := New(Options{})
	require.NoError(t, err)
	require.NotNil(t, logger)
	logger.Info("nowhere")
	require.NoError(t, closer.Close())
}
