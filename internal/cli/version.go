// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "juleroerbord %s\n", Version)
			fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n  built:  %s\n  go:     %s %s/%s\n",
				GitCommit, BuildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH)
		},
	}
}
