// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"math"
	"math/rand/v2"
	"strings"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/einarsolbakken/juleroerbord/internal/ui/styles"
)

// =============================================================================
// SNOWFALL
// =============================================================================

// SnowInterval is the time between two snowfall frames.
const SnowInterval = 80 * time.Millisecond

// snowDensityCells is the area snow density is counted over: density is
// flakes per 1000 cells.
const snowDensityCells = 1000

var snowIDs atomic.Int64

type flake struct {
	x, y  float64
	speed float64
	drift float64
	phase float64
	glyph string
}

// Snowfall is a tick-driven particle field drawn behind a centered block.
// A disabled snowfall draws nothing and never ticks.
type Snowfall struct {
	id      int
	density int
	enabled bool
	running bool
	// seq tags ticks so a tick left over from before a Stop/Start pair
	// does not start a second chain.
	seq int

	width  int
	height int
	flakes []flake

	rng   *rand.Rand
	style lipgloss.Style
}

// NewSnowfall creates a snowfall. density is the configured flake density;
// zero or enabled=false turns the effect off.
func NewSnowfall(theme *styles.Theme, density int, enabled bool) *Snowfall {
	id := int(snowIDs.Add(1))
	s := &Snowfall{
		id:      id,
		density: density,
		enabled: enabled && density > 0,
		rng:     rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), uint64(id))),
	}
	if theme != nil {
		s.style = theme.SnowFlake
	}
	return s
}

// ID identifies this snowfall's tick messages.
func (s *Snowfall) ID() int { return s.id }

// Enabled reports whether flakes are drawn.
func (s *Snowfall) Enabled() bool { return s.enabled }

// Running reports whether ticks are being scheduled.
func (s *Snowfall) Running() bool { return s.running }

// Count returns the number of live flakes.
func (s *Snowfall) Count() int { return len(s.flakes) }

// SetSize resizes the field and respawns flakes when the size changed.
func (s *Snowfall) SetSize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width, s.height = width, height
	s.flakes = s.flakes[:0]
	if !s.enabled || width <= 0 || height <= 0 {
		return
	}
	n := width * height * s.density / snowDensityCells
	if n < 1 {
		n = 1
	}
	for i := 0; i < n; i++ {
		f := s.spawn()
		f.y = s.rng.Float64() * float64(height)
		s.flakes = append(s.flakes, f)
	}
}

func (s *Snowfall) spawn() flake {
	return flake{
		x:     s.rng.Float64() * float64(s.width),
		y:     0,
		speed: 0.15 + s.rng.Float64()*0.45,
		drift: 0.1 + s.rng.Float64()*0.3,
		phase: s.rng.Float64() * 2 * math.Pi,
		glyph: styles.SnowChars[s.rng.IntN(len(styles.SnowChars))],
	}
}

// Start begins ticking. It returns nil when the snowfall is disabled or
// already running.
func (s *Snowfall) Start() tea.Cmd {
	if !s.enabled || s.running {
		return nil
	}
	s.running = true
	s.seq++
	return s.tick()
}

// Stop ends ticking after the pending tick arrives.
func (s *Snowfall) Stop() {
	s.running = false
}

func (s *Snowfall) tick() tea.Cmd {
	id, seq := s.id, s.seq
	return tea.Tick(SnowInterval, func(time.Time) tea.Msg {
		return SnowTickMsg{ID: id, Seq: seq}
	})
}

// Update advances the field on its own SnowTickMsg and schedules the next.
func (s *Snowfall) Update(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(SnowTickMsg)
	if !ok || tick.ID != s.id || tick.Seq != s.seq || !s.running {
		return nil
	}
	s.Step()
	return s.tick()
}

// Step moves every flake one frame.
func (s *Snowfall) Step() {
	if s.width <= 0 || s.height <= 0 {
		return
	}
	w := float64(s.width)
	for i := range s.flakes {
		f := &s.flakes[i]
		f.y += f.speed
		f.phase += 0.15
		f.x += f.drift * math.Sin(f.phase) * 0.5
		f.x = math.Mod(f.x+w, w)
		if f.y >= float64(s.height) {
			*f = s.spawn()
		}
	}
}

// grid returns one cell per column for every row. Empty cells are spaces.
func (s *Snowfall) grid() [][]string {
	rows := make([][]string, s.height)
	for y := range rows {
		row := make([]string, s.width)
		for x := range row {
			row[x] = " "
		}
		rows[y] = row
	}
	for _, f := range s.flakes {
		x, y := int(f.x), int(f.y)
		if x < 0 || x >= s.width || y < 0 || y >= s.height {
			continue
		}
		rows[y][x] = s.style.Render(f.glyph)
	}
	return rows
}

// Overlay centers block on the field and fills the space around it with
// snow. Without snow it behaves like lipgloss.Place.
func (s *Snowfall) Overlay(block string) string {
	if !s.enabled || s.width <= 0 || s.height <= 0 {
		if s.width <= 0 || s.height <= 0 {
			return block
		}
		return lipgloss.Place(s.width, s.height, lipgloss.Center, lipgloss.Center, block)
	}

	lines := strings.Split(block, "\n")
	blockW := lipgloss.Width(block)
	blockH := len(lines)
	if blockW > s.width || blockH > s.height {
		return block
	}
	top := (s.height - blockH) / 2
	left := (s.width - blockW) / 2

	grid := s.grid()
	out := make([]string, s.height)
	for y, row := range grid {
		i := y - top
		if i < 0 || i >= blockH {
			out[y] = strings.Join(row, "")
			continue
		}
		line := lines[i]
		if pad := blockW - lipgloss.Width(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		out[y] = strings.Join(row[:left], "") + line + strings.Join(row[left+blockW:], "")
	}
	return strings.Join(out, "\n")
}
