// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/einarsolbakken/juleroerbord/internal/clock"
	"github.com/einarsolbakken/juleroerbord/internal/config"
	"github.com/einarsolbakken/juleroerbord/internal/logging"
	"github.com/einarsolbakken/juleroerbord/internal/storage"
)

// Version information (overridden at build time with -ldflags).
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// rootOptions holds the persistent flags and the seams tests replace.
type rootOptions struct {
	configPath string
	ephemeral  bool
	noSnow     bool
	plain      bool

	clock     clock.Clock
	prompter  func() (prompter, error)
	termWidth func() int
}

// Execute runs the juleroerbord command line.
func Execute() error {
	return NewRootCmd().ExecuteContext(context.Background())
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&rootOptions{
		clock:     clock.Real(),
		prompter:  newLinerPrompter,
		termWidth: GetTerminalWidth,
	})
}

func newRootCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "juleroerbord",
		Short: "Julebordsinvitasjonen bak en tilgangskode",
		Long: `juleroerbord shows the Christmas party invitation once the right
access code has been entered. The code is remembered until "logout".`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.plain {
				return opts.runPlain(cmd)
			}
			return opts.runTUI(cmd)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "", "config file (default ~/.juleroerbord/config.toml)")
	pf.BoolVar(&opts.ephemeral, "ephemeral", false, "keep granted access in memory only")
	pf.BoolVar(&opts.noSnow, "no-snow", false, "turn the snowfall off")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "use a line prompt instead of the terminal UI")

	cmd.AddCommand(
		newStatusCmd(opts),
		newLogoutCmd(opts),
		newConfigCmd(opts),
		newVersionCmd(),
	)
	return cmd
}

// =============================================================================
// BOOTSTRAP
// =============================================================================

// loadConfigFile reads --config or the default config file.
func (o *rootOptions) loadConfigFile() (*config.Config, error) {
	if o.configPath != "" {
		return config.LoadFromPath(o.configPath)
	}
	return config.Load()
}

// loadConfig is loadConfigFile with the flag overrides applied.
func (o *rootOptions) loadConfig() (*config.Config, error) {
	cfg, err := o.loadConfigFile()
	if err != nil {
		return nil, err
	}
	if o.noSnow {
		cfg.UI.Snow = false
	}
	if o.ephemeral {
		cfg.Storage.Backend = storage.BackendMemory
	}
	return cfg, nil
}

// session is everything a command needs after start-up.
type session struct {
	cfg    *config.Config
	logger *slog.Logger
	store  storage.Store

	logCloser io.Closer
}

// open loads the config and opens the log file and the flag store.
func (o *rootOptions) open() (*session, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, err
	}

	logPath, err := cfg.LogPath()
	if err != nil {
		return nil, err
	}
	logger, logCloser, err := logging.New(logging.Options{
		Level:   cfg.Log.Level,
		Path:    logPath,
		Version: Version,
	})
	if err != nil {
		return nil, err
	}

	storePath, err := cfg.StoragePath()
	if err != nil {
		logCloser.Close()
		return nil, err
	}
	store, err := storage.Open(cfg.Storage.Backend, storePath)
	if err != nil {
		logger.Error("failed to open flag store", "backend", cfg.Storage.Backend, "error", err)
		logCloser.Close()
		return nil, fmt.Errorf("open %s store: %w", cfg.Storage.Backend, err)
	}

	return &session{cfg: cfg, logger: logger, store: store, logCloser: logCloser}, nil
}

// Close releases the store and the log file.
func (s *session) Close() error {
	return errors.Join(s.store.Close(), s.logCloser.Close())
}
