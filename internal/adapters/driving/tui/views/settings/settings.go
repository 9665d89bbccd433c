// Package settings provides the settings configuration view for the TUI.
package settings

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/pizza-cli/internal/adapters/driving/present"
	"github.com/custodia-labs/pizza-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/pizza-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/pizza-cli/internal/core/domain"
	"github.com/custodia-labs/pizza-cli/internal/core/ports/driving"
)

var errSettingsUnavailable = errors.New("settings service not available")

// View lists every setting and edits one at a time.
type View struct {
	styles          *styles.Styles
	settingsService driving.SettingsService

	settings *domain.CalculatorSettings
	err      error

	selected int
	editing  bool
	input    textinput.Model

	width  int
	height int
}

// NewView creates a new settings view.
func NewView(s *styles.Styles, settingsService driving.SettingsService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.CharLimit = 32
	ti.Width = 16

	return &View{
		styles:          s,
		settingsService: settingsService,
		input:           ti,
	}
}

// Init initialises the view and loads settings.
func (v *View) Init() tea.Cmd {
	return v.loadSettings()
}

// Reset leaves edit mode and moves the cursor to the top.
func (v *View) Reset() {
	v.selected = 0
	v.editing = false
	v.input.Blur()
	v.err = nil
}

// loadSettings returns a command that loads current settings.
func (v *View) loadSettings() tea.Cmd {
	svc := v.settingsService
	return func() tea.Msg {
		if svc == nil {
			return messages.SettingsLoaded{Err: errSettingsUnavailable}
		}
		settings, err := svc.Get()
		return messages.SettingsLoaded{Settings: settings, Err: err}
	}
}

func (v *View) setValue(key, value string) tea.Cmd {
	svc := v.settingsService
	return func() tea.Msg {
		return messages.SettingsSaved{Err: svc.Set(key, value)}
	}
}

func (v *View) resetAll() tea.Cmd {
	svc := v.settingsService
	return func() tea.Msg {
		return messages.SettingsSaved{Err: svc.Reset()}
	}
}

// Update handles messages for the settings view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.SettingsLoaded:
		if msg.Err != nil {
			v.err = msg.Err
		} else {
			v.settings = msg.Settings
			v.err = nil
		}
		return v, nil

	case messages.SettingsSaved:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		return v, v.loadSettings()

	case tea.KeyMsg:
		if v.editing {
			return v.handleEditKeys(msg)
		}
		return v.handleListKeys(msg)
	}

	return v, nil
}

func (v *View) handleListKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	keys := v.keys()

	switch msg.String() {
	case "esc":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	case "up", "k":
		if v.selected > 0 {
			v.selected--
		}
	case "down", "j":
		if v.selected < len(keys)-1 {
			v.selected++
		}
	case "enter":
		if v.settings == nil || len(keys) == 0 {
			return v, nil
		}
		v.editing = true
		v.input.SetValue(present.SettingValues(v.settings)[keys[v.selected]])
		v.input.CursorEnd()
		return v, v.input.Focus()
	case "r":
		if v.settingsService == nil {
			return v, nil
		}
		return v, v.resetAll()
	}
	return v, nil
}

func (v *View) handleEditKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "esc":
		v.editing = false
		v.input.Blur()
		return v, nil
	case "enter":
		v.editing = false
		v.input.Blur()
		return v, v.setValue(v.keys()[v.selected], strings.TrimSpace(v.input.Value()))
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *View) keys() []string {
	if v.settingsService == nil {
		return nil
	}
	return v.settingsService.Keys()
}

// View renders the settings list.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Settings"))
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %v", v.err)))
		b.WriteString("\n\n")
	}

	if v.settings == nil {
		b.WriteString(v.styles.Muted.Render("Loading settings..."))
		return b.String()
	}

	values := present.SettingValues(v.settings)
	group := ""
	for i, key := range v.keys() {
		g, name, _ := strings.Cut(key, ".")
		if g != group {
			if group != "" {
				b.WriteString("\n")
			}
			b.WriteString(v.styles.Subtitle.Render(g))
			b.WriteString("\n")
			group = g
		}

		cursor := "  "
		label := v.styles.Label.Render(name)
		if i == v.selected {
			cursor = "> "
			label = v.styles.FocusedLabel.Render(name)
		}
		value := v.styles.Normal.Render(values[key])
		if i == v.selected && v.editing {
			value = v.input.View()
		}
		b.WriteString(cursor + label + value + "\n")
	}

	b.WriteString("\n")
	if v.editing {
		b.WriteString(v.styles.Help.Render("[Enter] Save  [Esc] Cancel"))
	} else {
		b.WriteString(v.styles.Help.Render("[j/k] Navigate  [Enter] Edit  [r] Reset all  [Esc] Back"))
	}
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// Settings returns the loaded settings.
func (v *View) Settings() *domain.CalculatorSettings {
	return v.settings
}

// Editing reports whether a value is being edited.
func (v *View) Editing() bool {
	return v.editing
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
