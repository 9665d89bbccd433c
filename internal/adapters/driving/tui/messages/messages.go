// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"time"

	"github.com/custodia-labs/pizza-cli/internal/core/domain"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewCalculator is the parameter form and plan view.
	ViewCalculator
	// ViewProfiles lists saved profiles.
	ViewProfiles
	// ViewSettings is the settings configuration view.
	ViewSettings
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewCalculator:
		return "calculator"
	case ViewProfiles:
		return "profiles"
	case ViewSettings:
		return "settings"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// PlanCompleted carries a finished plan back to the model.
type PlanCompleted struct {
	Plan  *domain.BakePlan
	Start time.Time
	Err   error
}

// ProfilesLoaded carries the list of saved profiles.
type ProfilesLoaded struct {
	Profiles []domain.Profile
	Err      error
}

// ProfileSelected signals a saved profile was chosen for the calculator.
type ProfileSelected struct {
	Profile domain.Profile
}

// ProfileSaved signals the calculator parameters were stored.
type ProfileSaved struct {
	Name string
	Err  error
}

// ProfileDeleted signals a profile was removed.
type ProfileDeleted struct {
	Name string
	Err  error
}

// SettingsLoaded carries the calculator settings.
type SettingsLoaded struct {
	Settings *domain.CalculatorSettings
	Err      error
}

// SettingsSaved signals settings were saved.
type SettingsSaved struct {
	Err error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
