// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/einarsolbakken/juleroerbord/internal/gate"
	"github.com/einarsolbakken/juleroerbord/internal/storage"
)

// StatusInfo is the data printed by `status`.
type StatusInfo struct {
	State   string `json:"state"`
	Backend string `json:"backend"`
	Path    string `json:"path,omitempty"`
	FlagKey string `json:"flag_key"`
	Config  string `json:"config,omitempty"`
}

func newStatusCmd(opts *rootOptions) *cobra.Command {
	var jsonOut bool
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show whether the invitation is unlocked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info, err := opts.status(cmd)
			if jsonOut {
				if err != nil {
					return NewJSONErrorResponse("status", err).Write(cmd.OutOrStdout())
				}
				return NewJSONResponse("status", info).Write(cmd.OutOrStdout())
			}
			if err != nil {
				return err
			}
			printStatus(cmd, info)
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "output as JSON")
	return cmd
}

func (o *rootOptions) status(cmd *cobra.Command) (StatusInfo, error) {
	s, err := o.open()
	if err != nil {
		return StatusInfo{}, err
	}
	defer s.Close()

	ctrl, err := gate.New(cmd.Context(), s.cfg.GateConfig(), s.store, gate.WithLogger(s.logger))
	if err != nil {
		return StatusInfo{}, err
	}
	defer ctrl.Close()

	info := StatusInfo{
		State:   ctrl.State().String(),
		Backend: s.cfg.Storage.Backend,
		FlagKey: s.cfg.Storage.FlagKey,
		Config:  s.cfg.Source(),
	}
	if info.Backend != storage.BackendMemory {
		info.Path, _ = s.cfg.StoragePath()
	}
	return info, nil
}

func printStatus(cmd *cobra.Command, info StatusInfo) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, TitleStyle.Render("juleroerbord"))
	fmt.Fprintln(out, RenderSeparator(32))

	state := ErrorStyle.Render(info.State)
	if info.State == gate.Unlocked.String() {
		state = SuccessStyle.Render(info.State)
	}
	fmt.Fprintln(out, LabelStyle.Render("Gate")+state)
	fmt.Fprintln(out, RenderField("Backend", info.Backend))
	if info.Path != "" {
		fmt.Fprintln(out, RenderField("Path", info.Path))
	}
	fmt.Fprintln(out, RenderField("Flag key", info.FlagKey))
	if info.Config != "" {
		fmt.Fprintln(out, RenderField("Config", info.Config))
	} else {
		fmt.Fprintln(out, RenderField("Config", "(defaults)"))
	}
}
