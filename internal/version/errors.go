package version

import "errors"

var (
	// ErrResourceTooLarge is reported when a version info stream exceeds
	// [MaxResourceSize].
	ErrResourceTooLarge = errors.New("version info resource too large")
	// ErrNotText is reported when a version info stream is not valid UTF-8.
	ErrNotText = errors.New("version info resource is not utf-8 text")
	// ErrUnknownOutput is returned by [Format] for an unsupported format.
	ErrUnknownOutput = errors.New("unknown version output format")
)
