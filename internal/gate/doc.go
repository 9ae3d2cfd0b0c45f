// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package gate implements the access code gate in front of the invitation.
//
// The Controller is a small state machine:
//
//	Locked ──correct code──▶ Unlocking ──RevealDelay──▶ Unlocked
//	   ▲                                                   │
//	   └──────────────────────── Logout ───────────────────┘
//
// Submit never sleeps. It returns the Effects (timers) the host has to
// schedule, and the host hands each elapsed Effect back through Fire.
// Every timer carries a generation number, so restarting a timer or
// logging out turns older firings into no-ops.
//
// Two hosts exist: Driver schedules effects on a clock.Clock (used by the
// plain-text mode and tests), and the Bubble Tea UI turns them into
// tea.Tick commands.
//
// The gate is not a security boundary. The secret is a shared party code
// and only a "granted" flag is persisted.
package gate
