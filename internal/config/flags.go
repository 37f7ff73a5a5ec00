package config

import (
	"flag"
	"os"
	"time"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	return fs
}

// ParseFlagSet registers the configuration flags on fs, parses args and
// returns the resulting partial configuration. Parse errors, including
// [flag.ErrHelp], are returned to the caller.
//
// Flags:
//
//	-name application name shown in the UI header
//	-log-level log level (debug, info, warn, error)
//	-log-file log file path
//	-version-info version info properties file overriding the packaged one
//	-version print version info and exit
//	-o/-output version output format (text, json, yaml)
//	-theme button theme (default, dark, light)
//	-mouse enable mouse tracking
//	-status-ttl status line lifetime (e.g., "2s")
//	-c/-config json file path with configs
func ParseFlagSet(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var appName string
	var logLevel string
	var logFile string
	var versionInfoFile string
	var printVersion bool
	var versionOutput string
	var theme string
	var mouse bool
	var statusTTL time.Duration
	var jsonConfigPath string

	fs.StringVar(&appName, "name", "", "Application name")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&versionInfoFile, "version-info", "", "Version info properties file")
	fs.BoolVar(&printVersion, "version", false, "Print version info and exit")
	fs.StringVar(&versionOutput, "o", "", "Version output format (text, json, yaml)")
	fs.StringVar(&versionOutput, "output", "", "Version output format (alias)")
	fs.StringVar(&theme, "theme", "", "Button theme (default, dark, light)")
	fs.BoolVar(&mouse, "mouse", false, "Enable mouse tracking")
	fs.DurationVar(&statusTTL, "status-ttl", 0, "Status line lifetime (e.g., 2s)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			Name: appName,
		},
		Log: Log{
			Level: logLevel,
			File:  logFile,
		},
		Version: Version{
			InfoFile: versionInfoFile,
			Output:   versionOutput,
			Print:    printVersion,
		},
		UI: UI{
			Theme:     theme,
			Mouse:     mouse,
			StatusTTL: statusTTL,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
