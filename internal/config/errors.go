package config

import "errors"

// Validation errors returned by [LauncherConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a blank application name).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidLogConfigs indicates invalid log settings
	// (for example, an unknown log level).
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrInvalidVersionConfigs indicates invalid version settings
	// (for example, an unsupported output format).
	ErrInvalidVersionConfigs = errors.New("invalid version configuration")
	// ErrInvalidUIConfigs indicates invalid UI settings
	// (for example, an unknown theme or a non-positive status TTL).
	ErrInvalidUIConfigs = errors.New("invalid ui configuration")
)
