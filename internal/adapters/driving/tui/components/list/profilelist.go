// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/pizza-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/pizza-cli/internal/core/domain"
)

// ProfileList displays saved profiles in a navigable list.
type ProfileList struct {
	profiles []domain.Profile
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewProfileList creates a new profile list component.
func NewProfileList(s *styles.Styles) *ProfileList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &ProfileList{
		styles: s,
		width:  80,
		height: 10,
	}
}

// Update handles list navigation messages.
func (l *ProfileList) Update(msg tea.Msg) (*ProfileList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			l.MoveUp()
		case "down", "j":
			l.MoveDown()
		}
	}
	return l, nil
}

// View renders the profile list.
func (l *ProfileList) View() string {
	if len(l.profiles) == 0 {
		return l.styles.Muted.Render("No profiles saved")
	}

	lines := make([]string, 0, len(l.profiles)+2)
	lines = append(lines, l.styles.Subtitle.Render(fmt.Sprintf("Profiles (%d)", len(l.profiles))), "")

	visible := l.height - 2
	if visible < 1 {
		visible = 1
	}
	start := 0
	if l.selected >= visible {
		start = l.selected - visible + 1
	}
	end := start + visible
	if end > len(l.profiles) {
		end = len(l.profiles)
	}

	for i := start; i < end; i++ {
		lines = append(lines, l.renderProfile(i, &l.profiles[i]))
	}
	return strings.Join(lines, "\n")
}

// renderProfile formats one profile as a single summary line.
func (l *ProfileList) renderProfile(index int, p *domain.Profile) string {
	name := p.Name
	maxName := l.width / 3
	if maxName < 8 {
		maxName = 8
	}
	if len(name) > maxName {
		name = name[:maxName-3] + "..."
	}

	summary := fmt.Sprintf("%d × %.0f g  W%d  %.0f%%  %.0f h", p.Balls, p.BallWeightG, p.W, p.Hydration*100, p.TotalHours)
	if p.FridgeHours > 0 {
		summary += fmt.Sprintf(" (fridge %.0f h)", p.FridgeHours)
	}

	if index == l.selected {
		return "> " + l.styles.Selected.Render(name) + "  " + l.styles.Normal.Render(summary)
	}
	return "  " + l.styles.Normal.Render(name) + "  " + l.styles.Muted.Render(summary)
}

// SetProfiles replaces the list contents and clamps the selection.
func (l *ProfileList) SetProfiles(profiles []domain.Profile) {
	l.profiles = profiles
	if l.selected >= len(profiles) {
		l.selected = len(profiles) - 1
	}
	if l.selected < 0 {
		l.selected = 0
	}
}

// Profiles returns the listed profiles.
func (l *ProfileList) Profiles() []domain.Profile {
	return l.profiles
}

// Selected returns the selected profile, or nil when the list is empty.
func (l *ProfileList) Selected() *domain.Profile {
	if len(l.profiles) == 0 {
		return nil
	}
	return &l.profiles[l.selected]
}

// SelectedIndex returns the index of the selected profile.
func (l *ProfileList) SelectedIndex() int {
	return l.selected
}

// MoveUp moves the selection up one row.
func (l *ProfileList) MoveUp() {
	if l.selected > 0 {
		l.selected--
	}
}

// MoveDown moves the selection down one row.
func (l *ProfileList) MoveDown() {
	if l.selected < len(l.profiles)-1 {
		l.selected++
	}
}

// SetSize sets the list dimensions.
func (l *ProfileList) SetSize(width, height int) {
	l.width = width
	l.height = height
}
