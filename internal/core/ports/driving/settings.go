package driving

import (
	"github.com/custodia-labs/pizza-cli/internal/core/domain"
	"github.com/custodia-labs/pizza-cli/internal/core/dough"
)

// SettingsService manages calculator settings.
type SettingsService interface {
	// Get retrieves current settings.
	Get() (*domain.CalculatorSettings, error)

	// Save persists settings.
	Save(settings *domain.CalculatorSettings) error

	// Set updates a single setting by key, parsing value from text.
	Set(key, value string) error

	// Reset restores the built-in defaults.
	Reset() error

	// Keys returns all settable keys in display order.
	Keys() []string

	// Model returns the calculation model with the configured overrides applied.
	Model() (dough.Model, error)
}
