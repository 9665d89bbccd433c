package mcp

import (
	"github.com/custodia-labs/pizza-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
type Ports struct {
	// Calculator plans doughs. Required.
	Calculator driving.CalculatorService

	// Profiles exposes saved profiles. Optional.
	Profiles driving.ProfileService

	// Settings supplies default parameters. Optional; built-in defaults
	// are used without it.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Calculator == nil {
		return ErrMissingCalculatorService
	}
	return nil
}
