// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// =============================================================================
// ATOMIC WRITE TESTS
// =============================================================================

func TestAtomicWriteFile_Basic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flags.json")
	data := []byte(`{"flags":{"access_granted":true}}`)

	if err := AtomicWriteFile(path, data, 0600); err != nil {
		t.Fatalf("AtomicWriteFile failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}
	if string(content) != string(data) {
		t.Errorf("Content mismatch: got %q, want %q", string(content), string(data))
	}
}

func TestAtomicWriteFile_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "home", ".juleroerbord", "flags.json")

	if err := AtomicWriteFile(path, []byte("{}"), 0600); err != nil {
		t.Fatalf("AtomicWriteFile failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("File not created: %v", err)
	}
}

func TestAtomicWriteFile_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	if err := AtomicWriteFile(path, []byte("initial"), 0600); err != nil {
		t.Fatalf("First write failed: %v", err)
	}
	if err := AtomicWriteFile(path, []byte("updated"), 0600); err != nil {
		t.Fatalf("Second write failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}
	if string(content) != "updated" {
		t.Errorf("Content not updated: got %q", string(content))
	}
}

func TestAtomicWriteFile_NoTempFilesLeft(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "flags.json")

	for i := 0; i < 3; i++ {
		if err := AtomicWriteFile(path, []byte("x"), 0600); err != nil {
			t.Fatalf("write %d failed: %v", i, err)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the target file, found %d entries", len(entries))
	}
}

func TestAtomicWriteFileWithDir(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permissions not applicable on Windows")
	}
	path := filepath.Join(t.TempDir(), "private", "flags.json")

	if err := AtomicWriteFileWithDir(path, []byte("{}"), 0600, 0700); err != nil {
		t.Fatalf("AtomicWriteFileWithDir failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat file: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("file mode = %o, want 0600", info.Mode().Perm())
	}

	dirInfo, err := os.Stat(filepath.Dir(path))
	if err != nil {
		t.Fatalf("stat dir: %v", err)
	}
	if dirInfo.Mode().Perm() != 0700 {
		t.Errorf("dir mode = %o, want 0700", dirInfo.Mode().Perm())
	}
}

// =============================================================================
// DISPLAY WIDTH TESTS
// =============================================================================

func TestStringWidth(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"Åpne", 4},
		{"Lørdag", 6},
		{"🎄", 2},
		{"Juleroerbord 🎄", 15},
	}

	for _, tt := range tests {
		if got := StringWidth(tt.input); got != tt.want {
			t.Errorf("StringWidth(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestTruncateWidth(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"fits", "Program", 10, "Program"},
		{"exact", "Program", 7, "Program"},
		{"cut", "Stortorvet", 6, "Stort…"},
		{"zero", "Stortorvet", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateWidth(tt.input, tt.maxWidth); got != tt.want {
				t.Errorf("TruncateWidth(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
			}
		})
	}
}

func TestCenterWidth(t *testing.T) {
	if got := CenterWidth("ab", 6); got != "  ab  " {
		t.Errorf("CenterWidth even = %q", got)
	}
	if got := CenterWidth("ab", 5); got != " ab  " {
		t.Errorf("CenterWidth odd = %q", got)
	}
	if got := CenterWidth("🎁", 4); got != " 🎁 " {
		t.Errorf("CenterWidth emoji = %q", got)
	}
	if got := CenterWidth("toolong", 3); got != "toolong" {
		t.Errorf("CenterWidth overflow = %q", got)
	}
}

func TestPadRightWidth(t *testing.T) {
	got := PadRightWidth("🎅", 4)
	if StringWidth(got) != 4 {
		t.Errorf("PadRightWidth width = %d, want 4", StringWidth(got))
	}
}
