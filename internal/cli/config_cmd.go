// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/einarsolbakken/juleroerbord/internal/config"
)

func newConfigCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and edit the configuration",
	}
	cmd.AddCommand(
		newConfigShowCmd(opts),
		newConfigGetCmd(opts),
		newConfigSetCmd(opts),
		newConfigPathCmd(opts),
	)
	return cmd
}

func newConfigShowCmd(opts *rootOptions) *cobra.Command {
	var (
		reveal  bool
		jsonOut bool
	)
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if jsonOut {
				shown := cfg.Clone()
				if !reveal && shown.Gate.Secret != "" {
					shown.Gate.Secret = "[REDACTED]"
				}
				return NewJSONResponse("config show", shown).Write(out)
			}
			if reveal {
				data, err := json.MarshalIndent(cfg, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(data))
				return nil
			}
			fmt.Fprintln(out, cfg.String())
			return nil
		},
	}
	cmd.Flags().BoolVar(&reveal, "reveal", false, "include the access code")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "output as JSON")
	return cmd
}

func newConfigGetCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:       "get <key>",
		Short:     "Print one configuration value",
		Args:      cobra.ExactArgs(1),
		ValidArgs: config.GetAllKeys(),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			v, err := cfg.Get(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	}
}

func newConfigSetCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change one configuration value and save the file",
		Long: "Change one configuration value and save the file.\n\nKeys:\n  " +
			strings.Join(config.GetAllKeys(), "\n  "),
		Args:      cobra.ExactArgs(2),
		ValidArgs: config.GetAllKeys(),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfigFile()
			if err != nil {
				return err
			}
			if err := cfg.Set(args[0], args[1]); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if err := config.EnsureConfigDir(); err != nil {
				return err
			}
			if err := config.Save(cfg); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), SuccessStyle.Render("Saved")+" "+
				DimStyle.Render(args[0]+" = "+displayValue(args[0], args[1])))
			return nil
		},
	}
}

func newConfigPathCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := opts.configPath
			if path == "" {
				p, err := config.ConfigPathTOML()
				if err != nil {
					return err
				}
				path = p
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

func displayValue(key, value string) string {
	if key == "gate.secret" {
		return "[REDACTED]"
	}
	return value
}
