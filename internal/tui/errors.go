// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "errors"

var (
	// ErrUserQuit is returned by [TUI.Run] when the user interrupts the
	// program with ctrl+c.
	ErrUserQuit = errors.New("user quit the launcher")
	// ErrNoVersionInfo is returned by [New] without a version descriptor.
	ErrNoVersionInfo = errors.New("version info is required")
	// ErrClipboardUnsupported is reported when no clipboard utility is
	// available on the system.
	ErrClipboardUnsupported = errors.New("clipboard is not supported on this system")
)
