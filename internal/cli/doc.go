// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the juleroerbord command line.
//
// Running juleroerbord without a subcommand opens the gate in the
// terminal UI. --plain asks for the code on a plain prompt instead and
// prints the invitation as rendered Markdown, which also works over
// serial consoles and in screen readers.
//
// # Commands
//
//   - status: show whether access has been granted
//   - logout: forget granted access
//   - config show|get|set|path: inspect and edit the config file
//   - version: print build information
//
// status and config show accept --json.
package cli
