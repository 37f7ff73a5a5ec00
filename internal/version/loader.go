// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package version

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"os"
	"unicode/utf8"

	"github.com/MKhiriev/go-launcher/internal/logger"
	"github.com/MKhiriev/go-launcher/models"
	"github.com/magiconair/properties"
)

// ResourceName is the well-known name of the packaged version info resource.
const ResourceName = "versionInfo.properties"

// MaxResourceSize bounds how many bytes are read from a single stream.
const MaxResourceSize = 1 << 20

//go:embed versionInfo.properties
var packaged embed.FS

type loadStatus int

const (
	// statusLoaded means the stream parsed and had at least one entry.
	statusLoaded loadStatus = iota
	// statusEmpty means the stream parsed but had no entries, or there
	// was no stream at all.
	statusEmpty
	// statusDefaulted means reading or parsing failed.
	statusDefaulted
)

func (s loadStatus) String() string {
	switch s {
	case statusLoaded:
		return "loaded"
	case statusEmpty:
		return "empty"
	case statusDefaulted:
		return "defaulted"
	default:
		return "unknown"
	}
}

type loadResult struct {
	props  *properties.Properties
	status loadStatus
}

// Loader builds [models.VersionInfo] descriptors from properties streams.
type Loader struct {
	resources fs.FS
	logger    *logger.Logger
}

// NewLoader returns a Loader that resolves the packaged resource from the
// binary's embedded files.
func NewLoader(log *logger.Logger) *Loader {
	return NewLoaderFS(packaged, log)
}

// NewLoaderFS returns a Loader that resolves [ResourceName] in resources.
// A nil log discards diagnostics.
func NewLoaderFS(resources fs.FS, log *logger.Logger) *Loader {
	if log == nil {
		log = logger.Nop()
	}

	return &Loader{
		resources: resources,
		logger:    log.GetChildLogger("version"),
	}
}

// LoadPackaged builds a descriptor from the packaged resource. A missing
// resource yields the empty descriptor.
func (l *Loader) LoadPackaged() *models.VersionInfo {
	var r io.Reader
	if l.resources != nil {
		f, err := l.resources.Open(ResourceName)
		if err != nil {
			l.logger.Debug().Err(err).Str("resource", ResourceName).Msg("packaged version info not found")
		} else {
			r = f
		}
	}

	return l.LoadFromStream(r)
}

// LoadFile builds a descriptor from the properties file at path.
// A file that cannot be opened yields the empty descriptor.
func (l *Loader) LoadFile(path string) *models.VersionInfo {
	f, err := os.Open(path)
	if err != nil {
		l.logger.Error().Err(err).Str("path", path).Msg("opening version info file failed")
		return l.LoadFromStream(nil)
	}

	return l.LoadFromStream(f)
}

// LoadFromStream builds a new descriptor from r. The input must be UTF-8;
// ISO-8859-1 bytes are treated as malformed, use \uXXXX escapes instead.
//
// If r also implements io.Closer it is closed before LoadFromStream
// returns. A nil r, a read failure or unparsable content all yield a
// descriptor with every field blank.
func (l *Loader) LoadFromStream(r io.Reader) *models.VersionInfo {
	res := l.load(r)

	l.logger.Debug().
		Stringer("status", res.status).
		Int("entries", res.props.Len()).
		Msg("version info loaded")

	return models.NewVersionInfo(res.props.Len(), res.props.Get)
}

func (l *Loader) load(r io.Reader) loadResult {
	if r == nil {
		return loadResult{props: properties.NewProperties(), status: statusEmpty}
	}

	if c, ok := r.(io.Closer); ok {
		defer func() {
			if err := c.Close(); err != nil {
				l.logger.Warn().Err(err).Msg("closing version info stream failed")
			}
		}()
	}

	props, err := parse(r)
	if err != nil {
		l.logger.Error().Err(err).Msg("loading launcher version info failed")
		return loadResult{props: properties.NewProperties(), status: statusDefaulted}
	}

	if props.Len() == 0 {
		return loadResult{props: props, status: statusEmpty}
	}

	return loadResult{props: props, status: statusLoaded}
}

func parse(r io.Reader) (*properties.Properties, error) {
	buf, err := io.ReadAll(io.LimitReader(r, MaxResourceSize+1))
	if err != nil {
		return nil, fmt.Errorf("error reading version info: %w", err)
	}
	if len(buf) > MaxResourceSize {
		return nil, ErrResourceTooLarge
	}
	if !utf8.Valid(buf) {
		return nil, ErrNotText
	}

	loader := &properties.Loader{
		Encoding:         properties.UTF8,
		DisableExpansion: true,
	}
	props, err := loader.LoadBytes(buf)
	if err != nil {
		return nil, fmt.Errorf("error parsing version info: %w", err)
	}

	return props, nil
}
