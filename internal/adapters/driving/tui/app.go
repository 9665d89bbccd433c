package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/pizza-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/pizza-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/pizza-cli/internal/adapters/driving/tui/views/calculator"
	"github.com/custodia-labs/pizza-cli/internal/adapters/driving/tui/views/menu"
	"github.com/custodia-labs/pizza-cli/internal/adapters/driving/tui/views/profiles"
	"github.com/custodia-labs/pizza-cli/internal/adapters/driving/tui/views/settings"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	menuView       *menu.View
	calculatorView *calculator.View
	profilesView   *profiles.View
	settingsView   *settings.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	app := &App{
		ports:          ports,
		ctx:            context.Background(),
		styles:         s,
		menuView:       menu.NewView(s),
		calculatorView: calculator.NewView(s, ports.Calculator, ports.Profiles),
		profilesView:   profiles.NewView(s, ports.Profiles),
		settingsView:   settings.NewView(s, ports.Settings),
		currentView:    messages.ViewMenu,
	}

	// Saved defaults seed the form when available.
	if ports.Settings != nil {
		if cfg, err := ports.Settings.Get(); err == nil {
			app.calculatorView.SetProfile(cfg.Defaults.Profile())
		}
	}

	return app, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.calculatorView.WithContext(ctx)
	a.profilesView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("pizza - Dough calculator"),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.currentView == messages.ViewHelp {
			if msg.Type == tea.KeyEsc {
				a.currentView = messages.ViewMenu
			}
			return a, nil
		}

	case messages.ViewChanged:
		a.currentView = msg.View
		switch msg.View {
		case messages.ViewCalculator:
			return a, a.calculatorView.Init()
		case messages.ViewProfiles:
			return a, a.profilesView.Init()
		case messages.ViewSettings:
			a.settingsView.Reset()
			return a, a.settingsView.Init()
		case messages.ViewMenu, messages.ViewHelp:
		}
		return a, nil

	case messages.ProfileSelected:
		a.calculatorView.SetProfile(msg.Profile)
		a.currentView = messages.ViewCalculator
		return a, a.calculatorView.Init()

	case messages.PlanCompleted:
		a.err = msg.Err
		a.calculatorView, cmd = a.calculatorView.Update(msg)
		return a, cmd

	case messages.ProfileSaved:
		a.err = msg.Err
		a.calculatorView, cmd = a.calculatorView.Update(msg)
		return a, cmd

	case messages.ProfilesLoaded, messages.ProfileDeleted:
		a.profilesView, cmd = a.profilesView.Update(msg)
		return a, cmd

	case messages.SettingsLoaded, messages.SettingsSaved:
		a.settingsView, cmd = a.settingsView.Update(msg)
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewCalculator:
		a.calculatorView, cmd = a.calculatorView.Update(msg)
	case messages.ViewProfiles:
		a.profilesView, cmd = a.profilesView.Update(msg)
	case messages.ViewSettings:
		a.settingsView, cmd = a.settingsView.Update(msg)
	case messages.ViewHelp:
	}

	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewCalculator:
		return a.calculatorView.View()
	case messages.ViewProfiles:
		return a.profilesView.View()
	case messages.ViewSettings:
		return a.settingsView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	case messages.ViewMenu:
	}
	return a.menuView.View()
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return `Help

Navigation:
  esc         Back to Menu
  ctrl+c      Quit

Menu:
  j/k, ↑/↓    Navigate options
  enter       Select option
  q           Quit

Calculator:
  tab/↓       Next field
  shift+tab/↑ Previous field
  enter       Calculate
  ctrl+s      Save as profile

Profiles:
  enter       Load into calculator
  d           Delete

Settings:
  enter       Edit value
  r           Reset all to defaults

[esc] back to menu`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions on the app and every view.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.menuView.SetDimensions(width, height)
	a.calculatorView.SetDimensions(width, height)
	a.profilesView.SetDimensions(width, height)
	a.settingsView.SetDimensions(width, height)
}
