// Package tui provides an interactive terminal user interface for the dough
// calculator. It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/pizza-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Calculator plans doughs.
	Calculator driving.CalculatorService

	// Profiles manages saved profiles. Optional.
	Profiles driving.ProfileService

	// Settings manages defaults and model overrides. Optional.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	calculator driving.CalculatorService,
	profiles driving.ProfileService,
	settings driving.SettingsService,
) *Ports {
	return &Ports{
		Calculator: calculator,
		Profiles:   profiles,
		Settings:   settings,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Calculator == nil {
		return ErrMissingCalculatorService
	}
	return nil
}
