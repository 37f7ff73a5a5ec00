// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive launcher application runtime.
//
// It resolves the build metadata descriptor, then either prints it and
// exits or hands it to the terminal UI for the lifetime of the process.
package client
