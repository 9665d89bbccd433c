// Package profiles provides the saved profile browser for the TUI.
package profiles

import (
	"context"
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/pizza-cli/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/pizza-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/pizza-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/pizza-cli/internal/core/ports/driving"
)

var errProfilesUnavailable = errors.New("profiles are not available")

// View lists saved profiles. Enter loads one into the calculator.
type View struct {
	ctx     context.Context
	styles  *styles.Styles
	service driving.ProfileService
	list    *list.ProfileList
	err     error
	loading bool
}

// NewView creates a new profiles view.
func NewView(s *styles.Styles, service driving.ProfileService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		ctx:     context.Background(),
		styles:  s,
		service: service,
		list:    list.NewProfileList(s),
	}
}

// WithContext sets the context used for service calls.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init loads the profiles.
func (v *View) Init() tea.Cmd {
	v.loading = true
	return v.load()
}

func (v *View) load() tea.Cmd {
	ctx := v.ctx
	svc := v.service
	return func() tea.Msg {
		if svc == nil {
			return messages.ProfilesLoaded{Err: errProfilesUnavailable}
		}
		profiles, err := svc.List(ctx)
		return messages.ProfilesLoaded{Profiles: profiles, Err: err}
	}
}

func (v *View) remove(name string) tea.Cmd {
	ctx := v.ctx
	svc := v.service
	return func() tea.Msg {
		return messages.ProfileDeleted{Name: name, Err: svc.Delete(ctx, name)}
	}
}

// Update handles messages for the profiles view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.ProfilesLoaded:
		v.loading = false
		v.err = msg.Err
		if msg.Err == nil {
			v.list.SetProfiles(msg.Profiles)
		}
		return v, nil

	case messages.ProfileDeleted:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		return v, v.load()

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		case "enter":
			p := v.list.Selected()
			if p == nil {
				return v, nil
			}
			selected := *p
			return v, func() tea.Msg {
				return messages.ProfileSelected{Profile: selected}
			}
		case "d":
			p := v.list.Selected()
			if p == nil || v.service == nil {
				return v, nil
			}
			return v, v.remove(p.Name)
		}
		v.list, _ = v.list.Update(msg)
	}
	return v, nil
}

// View renders the profile list.
func (v *View) View() string {
	var b strings.Builder
	b.WriteString(v.styles.Title.Render("Saved profiles"))
	b.WriteString("\n\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading..."))
	case v.err != nil:
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
	default:
		b.WriteString(v.list.View())
	}

	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render("[j/k] Navigate  [Enter] Load  [d] Delete  [Esc] Back"))
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.list.SetSize(width, height-6)
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
