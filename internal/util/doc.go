// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util holds small helpers shared by the storage, config and ui
// packages.
//
// File Operations:
//   - AtomicWriteFile: crash-safe writes (temp file, fsync, rename)
//
// Display Width:
//   - StringWidth, TruncateWidth, CenterWidth, PadRightWidth: cell-aware
//     string layout for text that mixes Norwegian letters and emoji
package util
