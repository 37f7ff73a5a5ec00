// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Field-level rules live in [LauncherConfig.validate], which runs after
// defaults are applied; this only rejects values no default can repair.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.UI.StatusTTL < 0 {
		return fmt.Errorf("%w: negative status ttl %s", ErrInvalidUIConfigs, cfg.UI.StatusTTL)
	}

	return nil
}

func (cfg *LauncherConfig) validate() error {
	if strings.TrimSpace(cfg.App.Name) == "" {
		return ErrInvalidAppConfigs
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}

	if !slices.Contains(knownOutputs, cfg.Version.Output) {
		return fmt.Errorf("%w: unknown output %q", ErrInvalidVersionConfigs, cfg.Version.Output)
	}

	if !slices.Contains(KnownThemes, cfg.UI.Theme) {
		return fmt.Errorf("%w: unknown theme %q", ErrInvalidUIConfigs, cfg.UI.Theme)
	}

	if cfg.UI.StatusTTL <= 0 {
		return ErrInvalidUIConfigs
	}

	return nil
}
