// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/einarsolbakken/juleroerbord/internal/content"
	"github.com/einarsolbakken/juleroerbord/internal/gate"
	"github.com/einarsolbakken/juleroerbord/internal/ui/components"
	"github.com/einarsolbakken/juleroerbord/internal/ui/styles"
)

const (
	revealBarWidth = 30
	revealRedraw   = 100 * time.Millisecond
)

// prompter reads one line of input.
type prompter interface {
	Prompt(prompt string) (string, error)
	Close() error
}

// =============================================================================
// LINER PROMPTER
// =============================================================================

// lineState is the part of *liner.State the prompter drives.
type lineState interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
	Close() error
}

// linerPrompter reads the access code with line editing. Entered codes
// are never added to history, so arrow-up cannot recall the code.
type linerPrompter struct {
	state lineState
}

// newLinerPrompter sets up line editing. Ctrl+C aborts the prompt.
func newLinerPrompter() (prompter, error) {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)
	return &linerPrompter{state: state}, nil
}

func (p *linerPrompter) Prompt(prompt string) (string, error) {
	return p.state.Prompt(prompt)
}

func (p *linerPrompter) Close() error {
	return p.state.Close()
}

// =============================================================================
// PLAIN MODE
// =============================================================================

// runPlain asks for the code on a line prompt and prints the invitation
// once the reveal delay has passed.
func (o *rootOptions) runPlain(cmd *cobra.Command) error {
	s, err := o.open()
	if err != nil {
		return err
	}
	defer s.Close()

	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	inv := loadInvitation(s)

	granted := make(chan struct{})
	var grantOnce sync.Once
	ctrl, err := gate.New(ctx, s.cfg.GateConfig(), s.store,
		gate.WithLogger(s.logger),
		gate.WithOnAccessGranted(func() {
			grantOnce.Do(func() { close(granted) })
		}),
	)
	if err != nil {
		return err
	}
	defer ctrl.Close()

	if ctrl.State() == gate.Unlocked {
		return o.printInvitation(out, inv)
	}

	pr, err := o.prompter()
	if err != nil {
		return err
	}
	defer pr.Close()

	driver := gate.NewDriver(ctrl, o.clock)
	defer driver.Stop()

	fmt.Fprintln(out, TitleStyle.Render(styles.GiftIcon+"  "+inv.Title))
	fmt.Fprintln(out, DimStyle.Render("Ctrl+C avslutter."))

	for {
		input, err := pr.Prompt(components.GatePlaceholder + ": ")
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			fmt.Fprintln(out)
			return nil
		}
		if err != nil {
			return err
		}

		res := driver.Submit(ctx, input)
		switch res.Outcome {
		case gate.OutcomeAccepted:
			if err := o.waitForReveal(ctx, out, ctrl.Config().RevealDelay, granted); err != nil {
				return err
			}
			return o.printInvitation(out, inv)
		case gate.OutcomeInvalidCode:
			fmt.Fprintln(out, ErrorStyle.Render(styles.RenderError(components.GateErrorText)))
		}
	}
}

// waitForReveal draws the reveal bar until the controller grants access.
func (o *rootOptions) waitForReveal(ctx context.Context, out io.Writer, total time.Duration, granted <-chan struct{}) error {
	start := o.clock.Now()
	draw := func(p float64) {
		fmt.Fprintf(out, "\r%s %s", DimStyle.Render(components.GateOpeningText),
			BarStyle.Render(styles.RenderProgressBar(revealBarWidth, p*100)))
	}

	ticker := time.NewTicker(revealRedraw)
	defer ticker.Stop()

	draw(0)
	for {
		select {
		case <-granted:
			draw(1)
			fmt.Fprintln(out)
			return nil
		case <-ticker.C:
			draw(styles.Progress(o.clock.Now().Sub(start), total))
		case <-ctx.Done():
			fmt.Fprintln(out)
			return ctx.Err()
		}
	}
}

// printInvitation renders the invitation as Markdown. Raw Markdown is
// printed when rendering fails.
func (o *rootOptions) printInvitation(out io.Writer, inv *content.Invitation) error {
	md := inv.Markdown()
	rendered, err := content.RenderMarkdown(md, o.termWidth())
	if err != nil {
		rendered = md
	}
	fmt.Fprintln(out, rendered)
	fmt.Fprintln(out, DimStyle.Render(`"juleroerbord logout" låser invitasjonen igjen.`))
	return nil
}
