// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/einarsolbakken/juleroerbord/internal/app"
	"github.com/einarsolbakken/juleroerbord/internal/content"
)

// runTUI opens the gate in the full-screen terminal UI.
func (o *rootOptions) runTUI(cmd *cobra.Command) error {
	if err := requireTTY("open the terminal UI"); err != nil {
		return err
	}

	s, err := o.open()
	if err != nil {
		return err
	}
	defer s.Close()

	inv := loadInvitation(s)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	model, err := app.New(ctx, app.Deps{
		Config:     s.cfg,
		Store:      s.store,
		Invitation: inv,
		Logger:     s.logger,
		Clock:      o.clock,
	})
	if err != nil {
		return err
	}
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	if s.cfg.Content.Watch && s.cfg.Content.Path != "" {
		w, err := content.NewWatcher(s.cfg.Content.Path, content.DefaultDebounce, func(inv *content.Invitation, err error) {
			p.Send(app.ContentReloadedMsg{Invitation: inv, Err: err})
		})
		if err != nil {
			s.logger.Warn("content watch disabled", "path", s.cfg.Content.Path, "error", err)
		} else {
			go func() {
				if err := w.Run(ctx); err != nil {
					s.logger.Warn("content watcher stopped", "error", err)
				}
			}()
		}
	}

	s.logger.Info("tui started", "state", model.Controller().State().String())
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

// loadInvitation loads the configured content, falling back to the
// built-in invitation when the file cannot be used.
func loadInvitation(s *session) *content.Invitation {
	inv, err := content.LoadOrDefault(s.cfg.Content.Path)
	if err != nil {
		s.logger.Warn("using built-in invitation", "path", s.cfg.Content.Path, "error", err)
		return content.Default()
	}
	return inv
}
