// Package spec embeds the OpenAPI description of the itinerary form API.
// It is served at /openapi.yaml by the handler package.
package spec

import _ "embed"

// OpenAPI contains the raw bytes of openapi.yaml, embedded at compile time.
// Serving it from the binary means the document and the running code are always in sync.
//
//go:embed openapi.yaml
var OpenAPI []byte
