// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package content holds the invitation shown behind the gate: the hero
// text, the day's program, the photo archive and the FAQ.
//
// The built-in Default invitation can be replaced by a .toml, .yaml or
// .json file (see Load). Sections missing from the file fall back to the
// defaults, and a Watcher reloads the file while the program runs.
package content
