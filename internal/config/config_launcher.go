package config

import (
	"fmt"
	"time"
)

// Defaults applied by [GetLauncherConfig] to fields no source has set.
const (
	DefaultAppName       = "Terasology Launcher"
	DefaultLogLevel      = "info"
	DefaultVersionOutput = "text"
	DefaultTheme         = "default"
	DefaultStatusTTL     = 2 * time.Second
)

// KnownThemes lists the button themes the UI can render.
var KnownThemes = []string{"default", "dark", "light"}

// knownOutputs lists the formats accepted for -version output.
var knownOutputs = []string{"text", "json", "yaml"}

// LauncherApp holds application-level launcher settings.
type LauncherApp struct {
	// Name is shown in the UI header.
	Name string
}

// LauncherLog holds the log sink settings.
type LauncherLog struct {
	// Level is a zerolog level name.
	Level string
	// File is the log file path; empty means next to the executable.
	File string
}

// LauncherVersion holds build metadata settings.
type LauncherVersion struct {
	// InfoFile, when set, replaces the packaged version info resource.
	InfoFile string
	// Output is the -version output format.
	Output string
	// Print requests printing the version and exiting.
	Print bool
}

// LauncherUI holds terminal UI settings.
type LauncherUI struct {
	// Theme is one of [KnownThemes].
	Theme string
	// Mouse enables mouse hover and click tracking.
	Mouse bool
	// StatusTTL is how long a status line stays visible.
	StatusTTL time.Duration
}

// LauncherConfig is the top-level launcher configuration assembled from
// [StructuredConfig].
type LauncherConfig struct {
	// App contains application-level settings.
	App LauncherApp
	// Log contains log sink settings.
	Log LauncherLog
	// Version contains build metadata settings.
	Version LauncherVersion
	// UI contains terminal UI settings.
	UI LauncherUI
}

// GetLauncherConfig builds and validates the launcher config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], fills unset fields
// with the package defaults, and validates the resulting [LauncherConfig].
func GetLauncherConfig() (*LauncherConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newLauncherConfig(cfg)
}

func newLauncherConfig(cfg *StructuredConfig) (*LauncherConfig, error) {
	launcherCfg := &LauncherConfig{
		App: LauncherApp{
			Name: valueOr(cfg.App.Name, DefaultAppName),
		},
		Log: LauncherLog{
			Level: valueOr(cfg.Log.Level, DefaultLogLevel),
			File:  cfg.Log.File,
		},
		Version: LauncherVersion{
			InfoFile: cfg.Version.InfoFile,
			Output:   valueOr(cfg.Version.Output, DefaultVersionOutput),
			Print:    cfg.Version.Print,
		},
		UI: LauncherUI{
			Theme:     valueOr(cfg.UI.Theme, DefaultTheme),
			Mouse:     cfg.UI.Mouse,
			StatusTTL: cfg.UI.StatusTTL,
		},
	}
	if launcherCfg.UI.StatusTTL == 0 {
		launcherCfg.UI.StatusTTL = DefaultStatusTTL
	}

	return launcherCfg, launcherCfg.validate()
}

func valueOr(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
