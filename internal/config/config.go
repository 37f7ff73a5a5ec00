// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// launcher. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the window title.
	App App `envPrefix:"APP_"`

	// Log holds the log sink settings.
	Log Log `envPrefix:"LOG_"`

	// Version holds settings for resolving and printing build metadata.
	Version Version `envPrefix:"VERSION_"`

	// UI holds terminal UI settings.
	UI UI `envPrefix:"UI_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Name is the application name shown in the UI header.
	// Env: APP_NAME
	Name string `env:"NAME"`
}

// Log holds configuration of the launcher log sink.
type Log struct {
	// Level is a zerolog level name ("debug", "info", "warn", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`

	// File is the path of the log file. Empty selects a file next to the
	// executable.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// Version holds settings for the build metadata descriptor.
type Version struct {
	// InfoFile overrides the packaged version info resource with a
	// properties file on disk.
	// Env: VERSION_INFO_FILE
	InfoFile string `env:"INFO_FILE"`

	// Output is the format used by -version: "text", "json" or "yaml".
	// Env: VERSION_OUTPUT
	Output string `env:"OUTPUT"`

	// Print makes the launcher print its version and exit instead of
	// starting the UI. Only settable with the -version flag.
	Print bool
}

// UI holds terminal UI settings.
type UI struct {
	// Theme names the button theme; see [KnownThemes].
	// Env: UI_THEME
	Theme string `env:"THEME"`

	// Mouse enables mouse hover and click tracking.
	// Env: UI_MOUSE
	Mouse bool `env:"MOUSE"`

	// StatusTTL is how long a status line stays visible (e.g. "2s").
	// Env: UI_STATUS_TTL
	StatusTTL time.Duration `env:"STATUS_TTL"`
}

// GetStructuredConfig loads, merges, and validates the launcher
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return getStructuredConfig(os.Args[1:])
}

func getStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
