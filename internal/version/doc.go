// Package version loads the launcher's build metadata.
//
// Metadata is read from a properties resource ([ResourceName]) embedded in
// the binary, or from any caller-supplied stream. Loading is best effort:
// unreadable or malformed input is logged and produces an empty
// descriptor, so the entry points never return an error.
//
// [Default] caches the descriptor of the embedded resource for the
// lifetime of the process. [LoadFromStream] and [LoadFile] build a fresh,
// independent descriptor on every call and never touch that cache.
package version
