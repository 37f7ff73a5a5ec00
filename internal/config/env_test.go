// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_NAME": "Test Launcher",

		"LOG_LEVEL": "debug",
		"LOG_FILE":  "/var/log/launcher.log",

		"VERSION_INFO_FILE": "/opt/launcher/versionInfo.properties",
		"VERSION_OUTPUT":    "json",

		"UI_THEME":      "dark",
		"UI_MOUSE":      "true",
		"UI_STATUS_TTL": "5s",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "Test Launcher", cfg.App.Name)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/var/log/launcher.log", cfg.Log.File)

	assert.Equal(t, "/opt/launcher/versionInfo.properties", cfg.Version.InfoFile)
	assert.Equal(t, "json", cfg.Version.Output)
	assert.False(t, cfg.Version.Print)

	assert.Equal(t, "dark", cfg.UI.Theme)
	assert.True(t, cfg.UI.Mouse)
	assert.Equal(t, 5*time.Second, cfg.UI.StatusTTL)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"LOG_LEVEL": "warn",
		"UI_THEME":  "light",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Empty(t, cfg.Log.File)
	assert.Equal(t, "light", cfg.UI.Theme)
	assert.False(t, cfg.UI.Mouse)
	assert.Zero(t, cfg.UI.StatusTTL)

	// Others untouched
	assert.Equal(t, App{}, cfg.App)
	assert.Equal(t, Version{}, cfg.Version)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, StructuredConfig{}, *cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{"UI_STATUS_TTL": "soon"})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestParseEnv_InvalidBool(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{"UI_MOUSE": "maybe"})

	// Act
	err := parseEnv(&StructuredConfig{})

	// Assert
	require.Error(t, err)
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",

		"APP_NAME",

		"LOG_LEVEL",
		"LOG_FILE",

		"VERSION_INFO_FILE",
		"VERSION_OUTPUT",

		"UI_THEME",
		"UI_MOUSE",
		"UI_STATUS_TTL",
	}
	for _, k := range keys {
		// t.Setenv restores the previous value on cleanup.
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}
