// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config loads and saves juleroerbord's settings.
//
// Configuration file locations (in order of precedence):
//   - --config flag
//   - ~/.juleroerbord/config.toml
//   - ~/.juleroerbord/config.json (comments allowed)
//   - Built-in defaults
//
// JULEROERBORD_HOME replaces ~/.juleroerbord, and the JULEROERBORD_*
// variables listed on ApplyEnvOverrides win over file values.
//
// # Example
//
//	[gate]
//	secret = "2026"
//	reveal_delay_ms = 2500
//
//	[storage]
//	backend = "sqlite"
//
//	[ui]
//	theme = "dark"
//	snow = true
package config
