// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/einarsolbakken/juleroerbord/internal/content"
	"github.com/einarsolbakken/juleroerbord/internal/ui/styles"
	"github.com/einarsolbakken/juleroerbord/internal/util"
)

// Content view text.
const (
	LogoutLabel = "Logg ut"
	BrandLabel  = "🎄 Juleroerbord"
)

// Expandable cards on the content page.
const (
	CardNone    = ""
	CardArchive = "archive"
	CardFAQ     = "faq"
)

// minCardLayoutWidth is the narrowest terminal that gets cards; anything
// smaller shows the invitation as rendered Markdown.
const minCardLayoutWidth = 30

// span is the first and last line of a focusable item in the viewport.
type span struct{ start, end int }

// =============================================================================
// CONTENT VIEW
// =============================================================================

// ContentView is the page shown once the gate is open. Tab moves focus
// between the timeline cards, the Arkiv and FAQ cards and the logout
// button; enter flips or expands the focused item.
type ContentView struct {
	theme *styles.Theme
	keys  KeyMap
	inv   *content.Invitation

	viewport viewport.Model
	snow     *Snowfall

	width  int
	height int

	focus    int
	flipped  map[int]bool
	expanded string
	spans    []span

	faqCache map[int]string
	faqWidth int
}

// NewContentView creates the page for inv. snow may be nil.
func NewContentView(theme *styles.Theme, inv *content.Invitation, snow *Snowfall) *ContentView {
	if inv == nil {
		inv = content.Default()
	}
	if snow == nil {
		snow = NewSnowfall(theme, 0, false)
	}
	c := &ContentView{
		theme:    theme,
		keys:     DefaultKeyMap(),
		inv:      inv,
		viewport: viewport.New(0, 0),
		snow:     snow,
		flipped:  make(map[int]bool),
		faqCache: make(map[int]string),
	}
	return c
}

// Init starts the hero snowfall.
func (c *ContentView) Init() tea.Cmd {
	return c.snow.Start()
}

// Snow returns the hero snowfall.
func (c *ContentView) Snow() *Snowfall { return c.snow }

// Invitation returns the invitation being shown.
func (c *ContentView) Invitation() *content.Invitation { return c.inv }

// SetInvitation swaps in reloaded content and keeps focus in range.
func (c *ContentView) SetInvitation(inv *content.Invitation) {
	if inv == nil {
		return
	}
	c.inv = inv
	c.flipped = make(map[int]bool)
	c.faqCache = make(map[int]string)
	if c.focus >= c.itemCount() {
		c.focus = 0
	}
	c.rebuild()
}

// SetSize resizes the page. One row is reserved for the top bar and one
// for the help line.
func (c *ContentView) SetSize(width, height int) {
	c.width, c.height = width, height
	c.theme.SetSize(width, height)
	c.viewport.Width = width
	c.viewport.Height = max(height-2, 1)
	c.rebuild()
}

// Reset returns the page to its initial state: top of the page, nothing
// flipped or expanded.
func (c *ContentView) Reset() {
	c.focus = 0
	c.expanded = CardNone
	c.flipped = make(map[int]bool)
	c.viewport.GotoTop()
	c.rebuild()
}

// Focus returns the index of the focused item.
func (c *ContentView) Focus() int { return c.focus }

// Expanded returns which card is open.
func (c *ContentView) Expanded() string { return c.expanded }

// Flipped reports whether timeline card i shows its back.
func (c *ContentView) Flipped(i int) bool { return c.flipped[i] }

// Items are the timeline cards, then Arkiv, FAQ and the logout button.
func (c *ContentView) itemCount() int { return len(c.inv.Timeline) + 3 }

func (c *ContentView) archiveIndex() int { return len(c.inv.Timeline) }
func (c *ContentView) faqIndex() int     { return len(c.inv.Timeline) + 1 }
func (c *ContentView) logoutIndex() int  { return len(c.inv.Timeline) + 2 }

// Update handles navigation keys and the hero snowfall.
func (c *ContentView) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case SnowTickMsg:
		cmd := c.snow.Update(msg)
		if cmd != nil {
			c.rebuild()
		}
		return cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, c.keys.Logout):
			return logoutCmd
		case key.Matches(msg, c.keys.Next):
			c.moveFocus(1)
			return nil
		case key.Matches(msg, c.keys.Prev):
			c.moveFocus(-1)
			return nil
		case key.Matches(msg, c.keys.Toggle):
			return c.toggle()
		case key.Matches(msg, c.keys.Home):
			c.viewport.GotoTop()
			return nil
		case key.Matches(msg, c.keys.End):
			c.viewport.GotoBottom()
			return nil
		}
	}

	var cmd tea.Cmd
	c.viewport, cmd = c.viewport.Update(msg)
	return cmd
}

func logoutCmd() tea.Msg { return LogoutRequestedMsg{} }

func (c *ContentView) moveFocus(delta int) {
	n := c.itemCount()
	c.focus = ((c.focus+delta)%n + n) % n
	c.rebuild()
	c.ensureVisible()
}

// toggle flips the focused timeline card or expands the focused section
// card. Only one section card is open at a time.
func (c *ContentView) toggle() tea.Cmd {
	switch i := c.focus; {
	case i < len(c.inv.Timeline):
		c.flipped[i] = !c.flipped[i]
	case i == c.archiveIndex():
		c.expand(CardArchive)
	case i == c.faqIndex():
		c.expand(CardFAQ)
	case i == c.logoutIndex():
		return logoutCmd
	}
	c.rebuild()
	c.ensureVisible()
	return nil
}

func (c *ContentView) expand(card string) {
	if c.expanded == card {
		c.expanded = CardNone
		return
	}
	c.expanded = card
}

func (c *ContentView) ensureVisible() {
	if c.focus >= len(c.spans) {
		return
	}
	s := c.spans[c.focus]
	if s.start < c.viewport.YOffset {
		c.viewport.SetYOffset(s.start)
		return
	}
	bottom := c.viewport.YOffset + c.viewport.Height - 1
	if s.end > bottom {
		c.viewport.SetYOffset(s.end - c.viewport.Height + 1)
	}
}

// =============================================================================
// RENDERING
// =============================================================================

// View renders the top bar, the scrolling page and the help line.
func (c *ContentView) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		c.renderTopBar(),
		c.viewport.View(),
		HelpLine(c.theme.HelpKey, c.theme.HelpDesc, c.keys.ContentHelp()),
	)
}

func (c *ContentView) renderTopBar() string {
	logout := c.theme.LogoutButton
	if c.focus == c.logoutIndex() {
		logout = logout.Foreground(styles.FocusRing).Bold(true)
	}
	right := logout.Render("⎋ " + LogoutLabel)
	left := c.theme.Title.Render(BrandLabel)
	gap := c.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left + " " + right
	}
	return left + strings.Repeat(" ", gap) + right
}

// rebuild renders the page into the viewport and records where every
// focusable item landed.
func (c *ContentView) rebuild() {
	if c.width <= 0 {
		return
	}
	if c.width < minCardLayoutWidth {
		c.spans = nil
		md, err := content.RenderMarkdown(c.inv.Markdown(), c.width)
		if err != nil {
			md = c.inv.Markdown()
		}
		c.viewport.SetContent(md)
		return
	}

	cw := c.theme.ContentWidth()
	if cw > c.width-2 {
		cw = c.width - 2
	}

	var sections []string
	line := 0
	add := func(s string) span {
		sections = append(sections, s)
		sp := span{start: line, end: line + strings.Count(s, "\n")}
		line = sp.end + 1
		return sp
	}

	spans := make([]span, c.itemCount())

	add(c.renderHero())
	add(c.center(c.theme.SectionTitle.Render(c.inv.ProgramTitle)))
	for i, ev := range c.inv.Timeline {
		spans[i] = add(c.center(c.renderEvent(i, ev, cw)))
		if i < len(c.inv.Timeline)-1 {
			add(c.center(c.theme.CardSubtitle.Render("│")))
		}
	}
	add("")
	spans[c.archiveIndex()] = add(c.center(c.renderArchive(cw)))
	spans[c.faqIndex()] = add(c.center(c.renderFAQ(cw)))
	add(c.renderFooter())

	// The logout button lives in the top bar; focusing it scrolls nowhere.
	spans[c.logoutIndex()] = span{start: c.viewport.YOffset, end: c.viewport.YOffset}

	c.spans = spans
	c.viewport.SetContent(strings.Join(sections, "\n"))
}

func (c *ContentView) center(s string) string {
	return lipgloss.PlaceHorizontal(c.width, lipgloss.Center, s)
}

func (c *ContentView) renderHero() string {
	title := c.inv.Title
	styledTitle := c.theme.Title.Render(title)
	if hl := c.inv.Highlight; hl != "" {
		if i := strings.Index(title, hl); i >= 0 {
			styledTitle = c.theme.Title.Render(title[:i]) +
				c.theme.TitleAccent.Render(hl) +
				c.theme.Title.Render(title[i+len(hl):])
		}
	}

	hero := lipgloss.JoinVertical(lipgloss.Center,
		c.theme.Greeting.Render(c.inv.Greeting),
		styledTitle,
		"",
		c.theme.Date.Render(c.inv.Date),
		"",
		c.theme.ScrollHint.Render("↓ "+c.inv.ScrollHint),
	)

	c.snow.SetSize(c.width, lipgloss.Height(hero)+2)
	return c.snow.Overlay(hero)
}

func (c *ContentView) cardStyle(i, width int) lipgloss.Style {
	style := c.theme.Card
	if c.focus == i {
		style = c.theme.CardFocused
	}
	// Width includes padding but not the border.
	return style.Width(width - 2)
}

func (c *ContentView) renderEvent(i int, ev content.Event, width int) string {
	inner := width - 6
	var body string
	if c.flipped[i] {
		body = lipgloss.JoinVertical(lipgloss.Left,
			c.theme.CardTime.Render(ev.Time)+"  "+c.theme.CardTitle.Render(ev.Title),
			c.theme.CardBack.Width(inner).Render(ev.Details),
		)
	} else {
		head := ev.Icon + "  " + c.theme.CardTime.Render(ev.Time) + "  " + c.theme.CardTitle.Render(ev.Title)
		body = lipgloss.JoinVertical(lipgloss.Left,
			head,
			c.theme.CardSubtitle.Render(util.TruncateWidth(ev.Subtitle, inner)),
		)
	}
	return c.cardStyle(i, width).Render(body)
}

func chevron(open bool) string {
	if open {
		return "▴"
	}
	return "▾"
}

func (c *ContentView) renderArchive(width int) string {
	open := c.expanded == CardArchive
	inner := width - 6

	rows := []string{
		c.theme.CardTitle.Render("📸 "+c.inv.ArchiveTitle) + " " + c.theme.HelpDesc.Render(chevron(open)),
	}
	if c.inv.ArchiveDescription != "" {
		rows = append(rows, c.theme.SectionDesc.Width(inner).Render(c.inv.ArchiveDescription))
	}
	if open {
		rows = append(rows, "")
		cols := 3
		if inner < 60 {
			cols = 2
		}
		colWidth := inner / cols
		for start := 0; start < len(c.inv.Archive); start += cols {
			var cells []string
			for _, p := range c.inv.Archive[start:min(start+cols, len(c.inv.Archive))] {
				label := util.TruncateWidth("🖼  "+p.Caption, colWidth-1)
				cells = append(cells, c.theme.Caption.Render(util.PadRightWidth(label, colWidth)))
			}
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		}
	}
	return c.cardStyle(c.archiveIndex(), width).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (c *ContentView) renderFAQ(width int) string {
	open := c.expanded == CardFAQ
	inner := width - 6

	rows := []string{
		c.theme.CardTitle.Render("❓ "+c.inv.FAQTitle) + " " + c.theme.HelpDesc.Render(chevron(open)),
	}
	if c.inv.FAQDescription != "" {
		rows = append(rows, c.theme.SectionDesc.Width(inner).Render(c.inv.FAQDescription))
	}
	if open {
		for i, item := range c.inv.FAQ {
			rows = append(rows,
				"",
				c.theme.Question.Width(inner).Render("❓ "+item.Question),
				c.faqAnswer(i, item.Answer, inner),
			)
		}
	}
	return c.cardStyle(c.faqIndex(), width).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// faqAnswer renders a Markdown answer once per width.
func (c *ContentView) faqAnswer(i int, answer string, width int) string {
	if c.faqWidth != width {
		c.faqCache = make(map[int]string)
		c.faqWidth = width
	}
	if out, ok := c.faqCache[i]; ok {
		return out
	}
	out, err := content.RenderMarkdown(answer, width)
	if err != nil {
		out = answer
	}
	c.faqCache[i] = out
	return out
}

func (c *ContentView) renderFooter() string {
	return c.theme.Footer.Width(c.width).Render(strings.Join(c.inv.Footer, "  "))
}
