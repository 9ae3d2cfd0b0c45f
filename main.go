// juleroerbord - the Christmas party invitation behind an access code.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"os"

	"github.com/einarsolbakken/juleroerbord/internal/cli"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
