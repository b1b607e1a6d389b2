// Package catalog embeds the default location list so the server can start
// without any files on disk. internal/locations parses it.
package catalog

import _ "embed"

// Locations holds the raw bytes of locations.yaml, embedded at compile time.
// Set LOCATIONS_FILE to replace it at runtime.
//
//go:embed locations.yaml
var Locations []byte
