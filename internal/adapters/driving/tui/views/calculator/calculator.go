// Package calculator provides the dough parameter form and plan view for the TUI.
package calculator

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/pizza-cli/internal/adapters/driving/present"
	"github.com/custodia-labs/pizza-cli/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/pizza-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/pizza-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/pizza-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/pizza-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/pizza-cli/internal/core/domain"
	"github.com/custodia-labs/pizza-cli/internal/core/ports/driving"
)

// Form field indexes.
const (
	fieldBalls = iota
	fieldBallWeight
	fieldHydration
	fieldSalt
	fieldW
	fieldTemp
	fieldYeast
	fieldTotalHours
	fieldFridgeHours
	fieldWarmupHours
	fieldFridgeFactor
	fieldYeastPct
	fieldStart
	fieldName
	fieldCount
)

// View is the calculator form with the last computed plan below it.
type View struct {
	ctx        context.Context
	styles     *styles.Styles
	keymap     *keymap.KeyMap
	calculator driving.CalculatorService
	profiles   driving.ProfileService

	fields  []*input.Field
	focused int
	status  *status.Bar

	// base supplies the identity and timestamps of a loaded profile.
	base domain.Profile

	plan  *domain.BakePlan
	start time.Time
	err   error

	width  int
	height int
}

// NewView creates a new calculator view filled with the built-in defaults.
func NewView(
	s *styles.Styles,
	calculator driving.CalculatorService,
	profiles driving.ProfileService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	km := keymap.DefaultKeyMap()

	v := &View{
		ctx:        context.Background(),
		styles:     s,
		keymap:     km,
		calculator: calculator,
		profiles:   profiles,
		status:     status.NewBar(s, km),
		width:      80,
		height:     24,
	}
	v.fields = []*input.Field{
		fieldBalls:        input.NewField(s, "Balls", "count", ""),
		fieldBallWeight:   input.NewField(s, "Ball weight (g)", "per ball", ""),
		fieldHydration:    input.NewField(s, "Hydration", "0.55 to 0.85", ""),
		fieldSalt:         input.NewField(s, "Salt (g/kg)", "per kg flour", ""),
		fieldW:            input.NewField(s, "Flour W", "200 to 450", ""),
		fieldTemp:         input.NewField(s, "Temperature (°C)", "room", ""),
		fieldYeast:        input.NewField(s, "Yeast", "dry or fresh", ""),
		fieldTotalHours:   input.NewField(s, "Total hours", "mix to bake", ""),
		fieldFridgeHours:  input.NewField(s, "Fridge hours", "0 for none", ""),
		fieldWarmupHours:  input.NewField(s, "Warmup hours", "after fridge", ""),
		fieldFridgeFactor: input.NewField(s, "Fridge factor", "0 to 1", ""),
		fieldYeastPct:     input.NewField(s, "Yeast %", "blank to estimate", ""),
		fieldStart:        input.NewField(s, "Start", "HH:MM, blank for now", ""),
		fieldName:         input.NewField(s, "Save as", "profile name", ""),
	}
	v.SetProfile(domain.DefaultCalculatorSettings().Defaults.Profile())
	v.fields[v.focused].Focus()
	return v
}

// WithContext sets the context used for service calls.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.fields[v.focused].Focus()
}

// SetProfile fills the form from p.
func (v *View) SetProfile(p domain.Profile) {
	v.base = p
	v.fields[fieldBalls].SetValue(strconv.Itoa(p.Balls))
	v.fields[fieldBallWeight].SetValue(present.Number(p.BallWeightG))
	v.fields[fieldHydration].SetValue(present.Number(p.Hydration))
	v.fields[fieldSalt].SetValue(present.Number(p.SaltPerKg))
	v.fields[fieldW].SetValue(strconv.Itoa(p.W))
	v.fields[fieldTemp].SetValue(present.Number(p.TempC))
	v.fields[fieldYeast].SetValue(p.Yeast.String())
	v.fields[fieldTotalHours].SetValue(present.Number(p.TotalHours))
	v.fields[fieldFridgeHours].SetValue(present.Number(p.FridgeHours))
	v.fields[fieldWarmupHours].SetValue(present.Number(p.WarmupHours))
	v.fields[fieldFridgeFactor].SetValue(present.Number(p.FridgeFactor))
	v.fields[fieldYeastPct].SetValue("")
	if p.YeastPercent != nil {
		v.fields[fieldYeastPct].SetValue(present.Number(*p.YeastPercent))
	}
	v.fields[fieldStart].SetValue(p.Start)
	v.fields[fieldName].SetValue(p.Name)
}

// Profile parses the form into a profile.
func (v *View) Profile() (domain.Profile, error) {
	p := v.base
	var err error

	if p.Balls, err = v.intField(fieldBalls, "ball_count"); err != nil {
		return p, err
	}
	if p.W, err = v.intField(fieldW, "w"); err != nil {
		return p, err
	}
	floats := []struct {
		idx   int
		name  string
		field *float64
	}{
		{fieldBallWeight, "ball_weight", &p.BallWeightG},
		{fieldHydration, "hydration", &p.Hydration},
		{fieldSalt, "salt_per_kg", &p.SaltPerKg},
		{fieldTemp, "temp", &p.TempC},
		{fieldTotalHours, "total_hours", &p.TotalHours},
		{fieldFridgeHours, "fridge_hours", &p.FridgeHours},
		{fieldWarmupHours, "warmup_hours", &p.WarmupHours},
		{fieldFridgeFactor, "fridge_factor", &p.FridgeFactor},
	}
	for _, f := range floats {
		if *f.field, err = v.floatField(f.idx, f.name); err != nil {
			return p, err
		}
	}

	if p.Yeast, err = domain.ParseYeastKind(v.value(fieldYeast)); err != nil {
		return p, err
	}

	p.YeastPercent = nil
	if v.value(fieldYeastPct) != "" {
		pct, err := v.floatField(fieldYeastPct, "yeast_pct")
		if err != nil {
			return p, err
		}
		p.YeastPercent = &pct
	}

	p.Start = v.value(fieldStart)
	p.Name = v.value(fieldName)
	return p, nil
}

// Update handles messages for the calculator view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.PlanCompleted:
		if msg.Err != nil {
			v.err = msg.Err
			v.status.SetState(status.StateError, msg.Err.Error())
			return v, nil
		}
		v.plan = msg.Plan
		v.start = msg.Start
		v.err = nil
		v.status.SetState(status.StatePlan,
			fmt.Sprintf("%s total dough", present.FormatGrams(msg.Plan.Ingredients.TotalG())))
		return v, nil

	case messages.ProfileSaved:
		if msg.Err != nil {
			v.status.SetState(status.StateError, msg.Err.Error())
			return v, nil
		}
		v.status.SetState(status.StateSaved, fmt.Sprintf("Saved profile %q", msg.Name))
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)
	}

	return v, nil
}

func (v *View) handleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case keymap.Matches(msg.String(), v.keymap.Back):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	case keymap.Matches(msg.String(), v.keymap.Calculate):
		v.status.SetState(status.StateCalculating, "")
		return v, v.calculate()
	case keymap.Matches(msg.String(), v.keymap.Save):
		return v, v.save()
	case keymap.Matches(msg.String(), v.keymap.NextField):
		return v, v.moveFocus(1)
	case keymap.Matches(msg.String(), v.keymap.PrevField):
		return v, v.moveFocus(-1)
	}

	var cmd tea.Cmd
	v.fields[v.focused], cmd = v.fields[v.focused].Update(msg)
	return v, cmd
}

func (v *View) moveFocus(delta int) tea.Cmd {
	v.fields[v.focused].Blur()
	v.focused = (v.focused + delta + fieldCount) % fieldCount
	return v.fields[v.focused].Focus()
}

// calculate returns a command that plans the dough in the form.
func (v *View) calculate() tea.Cmd {
	profile, err := v.Profile()
	if err != nil {
		return func() tea.Msg { return messages.PlanCompleted{Err: err} }
	}

	ctx := v.ctx
	calc := v.calculator
	return func() tea.Msg {
		start := time.Time{}
		if profile.Start != "" {
			var ok bool
			start, ok = present.ParseStart(profile.Start, time.Now())
			if !ok {
				return messages.PlanCompleted{Err: domain.InvalidParameter("start", "must be HH:MM")}
			}
		}
		plan, err := calc.Plan(ctx, profile)
		return messages.PlanCompleted{Plan: plan, Start: start, Err: err}
	}
}

// save returns a command that stores the form as a named profile.
func (v *View) save() tea.Cmd {
	if v.profiles == nil {
		return func() tea.Msg {
			return messages.ProfileSaved{Err: fmt.Errorf("profiles are not available")}
		}
	}
	profile, err := v.Profile()
	if err != nil {
		return func() tea.Msg { return messages.ProfileSaved{Err: err} }
	}

	ctx := v.ctx
	svc := v.profiles
	return func() tea.Msg {
		saved, err := svc.Save(ctx, profile)
		if err != nil {
			return messages.ProfileSaved{Name: profile.Name, Err: err}
		}
		return messages.ProfileSaved{Name: saved.Name}
	}
}

// View renders the form, the status bar and the last plan.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Dough calculator"))
	b.WriteString("\n\n")
	for _, f := range v.fields {
		b.WriteString(f.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(v.status.View())
	b.WriteString("\n")

	if v.plan != nil && v.err == nil {
		var out bytes.Buffer
		if err := present.Render(&out, v.plan, present.Options{Start: v.start, Width: v.width}); err != nil {
			b.WriteString(v.styles.Error.Render(err.Error()))
		} else {
			b.WriteString(out.String())
		}
	}

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.status.SetWidth(width)
}

// Plan returns the last computed plan.
func (v *View) Plan() *domain.BakePlan {
	return v.plan
}

// Err returns the last calculation error.
func (v *View) Err() error {
	return v.err
}

// Focused returns the index of the focused field.
func (v *View) Focused() int {
	return v.focused
}

func (v *View) value(idx int) string {
	return strings.TrimSpace(v.fields[idx].Value())
}

func (v *View) intField(idx int, name string) (int, error) {
	n, err := strconv.Atoi(v.value(idx))
	if err != nil {
		return 0, domain.InvalidParameter(name, "must be a whole number")
	}
	return n, nil
}

func (v *View) floatField(idx int, name string) (float64, error) {
	f, err := strconv.ParseFloat(v.value(idx), 64)
	if err != nil {
		return 0, domain.InvalidParameter(name, "must be a number")
	}
	return f, nil
}
