// Package mcp provides an MCP (Model Context Protocol) server adapter.
// It lets AI assistants resolve and render the diagram blocks of a vault.
package mcp

import "errors"

// ErrMissingTrioResolver is returned when the trio resolver is not provided.
var ErrMissingTrioResolver = errors.New("mcp: trio resolver is required")
