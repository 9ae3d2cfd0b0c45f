// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/einarsolbakken/juleroerbord/internal/gate"
)

func newLogoutCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget that the access code was entered",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := opts.open()
			if err != nil {
				return err
			}
			defer s.Close()

			ctrl, err := gate.New(cmd.Context(), s.cfg.GateConfig(), s.store, gate.WithLogger(s.logger))
			if err != nil {
				return err
			}
			defer ctrl.Close()

			if err := ctrl.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), SuccessStyle.Render("Logget ut.")+" "+
				DimStyle.Render("Koden må skrives inn på nytt."))
			return nil
		},
	}
}
