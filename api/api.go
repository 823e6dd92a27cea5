// Package api holds the OpenAPI document the HTTP server is generated from.
package api

import _ "embed"

// Spec is the raw openapi.yml.
//
//go:embed openapi.yml
var Spec []byte
