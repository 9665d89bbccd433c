// Package mcp provides an MCP (Model Context Protocol) server adapter for the
// dough calculator. It lets AI assistants plan doughs and read saved profiles.
package mcp

import "errors"

// ErrMissingCalculatorService is returned when the calculator service is not provided.
var ErrMissingCalculatorService = errors.New("mcp: calculator service is required")
