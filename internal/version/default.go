// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package version

import (
	"io"
	"sync"

	"github.com/MKhiriev/go-launcher/internal/logger"
	"github.com/MKhiriev/go-launcher/models"
)

var (
	defaultOnce sync.Once
	defaultInfo *models.VersionInfo
)

// Default returns the process-wide descriptor of the packaged resource.
//
// The first call loads it, logging through [logger.Global]; every later
// call, including concurrent first calls, returns the same pointer.
func Default() *models.VersionInfo {
	defaultOnce.Do(func() {
		defaultInfo = NewLoader(logger.Global()).LoadPackaged()
	})

	return defaultInfo
}

// LoadFromStream builds a new descriptor from r using the global logger.
// The input must be UTF-8. See [Loader.LoadFromStream].
func LoadFromStream(r io.Reader) *models.VersionInfo {
	return NewLoader(logger.Global()).LoadFromStream(r)
}

// LoadFile builds a new descriptor from the file at path using the global
// logger. See [Loader.LoadFile].
func LoadFile(path string) *models.VersionInfo {
	return NewLoader(logger.Global()).LoadFile(path)
}
