// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and per-component child loggers used throughout
// the launcher.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Application code should pass *Logger by pointer. Code that runs before an
// explicit logger is available (for example lazily initialised package
// state) uses Global, which the entry point points at the configured sink
// via SetGlobal.
package logger

import (
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultLogFileName is the log file created next to the executable when no
// explicit path is configured.
const DefaultLogFileName = "launcher.log"

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// application to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger
}

func configureGlobals(level zerolog.Level) {
	zerolog.SetGlobalLevel(level)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name() // return function name
	}
	zerolog.CallerFieldName = "func"
}

func newWithWriter(w io.Writer, role string) *Logger {
	logger := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// NewLogger constructs a *Logger for the given role label
// (e.g. "launcher", "cli").
//
// The logger is configured with:
//   - global log level set to Debug (all levels are emitted);
//   - a "role" field set to role, useful for filtering logs from different
//     application components;
//   - a timestamp field added to every log entry;
//   - a "func" caller field that records the fully-qualified function name
//     (instead of the default file:line format) for easier log navigation.
//
// Output is written to os.Stdout in JSON format.
func NewLogger(role string) *Logger {
	configureGlobals(zerolog.DebugLevel)
	return newWithWriter(os.Stdout, role)
}

// NewLauncherLogger constructs a *Logger that appends JSON entries to a log
// file, because the terminal UI owns stdout while the launcher runs.
//
// level is parsed with zerolog.ParseLevel; an empty or unknown level falls
// back to info. An empty path selects [DefaultLogFileName] next to the
// executable. When the file cannot be opened the logger writes to
// os.Stderr instead.
func NewLauncherLogger(role, level, path string) *Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	configureGlobals(lvl)

	if path == "" {
		execPath, _ := os.Executable()
		path = filepath.Join(filepath.Dir(execPath), DefaultLogFileName)
	}

	var out io.Writer
	logFile, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		out = os.Stderr // fallback to stderr if file can't be opened
	} else {
		out = logFile
	}

	return newWithWriter(out, role)
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver and tags every entry with component. The parent is unaffected.
func (l *Logger) GetChildLogger(component string) *Logger {
	return &Logger{l.With().Str("component", component).Logger()}
}

// Global returns the process-wide zerolog logger wrapped as *Logger.
func Global() *Logger {
	return &Logger{log.Logger}
}

// SetGlobal replaces the process-wide zerolog logger with l.
// It is meant to be called once from main before any goroutines start.
func SetGlobal(l *Logger) {
	if l == nil {
		return
	}
	log.Logger = l.Logger
}
