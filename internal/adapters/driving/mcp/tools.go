package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/pizza-cli/internal/adapters/driving/present"
	"github.com/custodia-labs/pizza-cli/internal/core/domain"
)

// PlanInput is the input schema for the plan_dough tool. Omitted fields
// come from the named profile, then the saved defaults.
type PlanInput struct {
	Profile      string   `json:"profile,omitempty" jsonschema:"name of a saved profile to start from"`
	W            *int     `json:"w,omitempty" jsonschema:"flour strength W, typically 180 to 400"`
	Temp         *float64 `json:"temp,omitempty" jsonschema:"room temperature in degrees Celsius"`
	Yeast        string   `json:"yeast,omitempty" jsonschema:"yeast kind: dry or fresh"`
	Hydration    *float64 `json:"hydration,omitempty" jsonschema:"water as a fraction of flour, e.g. 0.7"`
	SaltPerKg    *float64 `json:"salt_per_kg,omitempty" jsonschema:"salt in grams per kilogram of flour"`
	BallWeight   *float64 `json:"ball_weight,omitempty" jsonschema:"weight of one dough ball in grams"`
	Balls        *int     `json:"balls,omitempty" jsonschema:"number of dough balls"`
	TotalHours   *float64 `json:"total_hours,omitempty" jsonschema:"hours from mixing to baking"`
	FridgeHours  *float64 `json:"fridge_hours,omitempty" jsonschema:"hours of cold retard, 0 for none"`
	WarmupHours  *float64 `json:"warmup_hours,omitempty" jsonschema:"bench rest after the fridge in hours"`
	FridgeFactor *float64 `json:"fridge_factor,omitempty" jsonschema:"fermentation rate in the fridge relative to room, 0 to 1"`
	YeastPct     *float64 `json:"yeast_pct,omitempty" jsonschema:"fixed yeast in percent of flour, skips the yeast model"`
	Start        string   `json:"start,omitempty" jsonschema:"start time HH:MM for the schedule"`
}

// YeastInput is the input schema for the resolve_yeast tool.
type YeastInput struct {
	Yeast string  `json:"yeast" jsonschema:"yeast kind: dry or fresh"`
	Temp  float64 `json:"temp" jsonschema:"room temperature in degrees Celsius"`
	W     float64 `json:"w" jsonschema:"flour strength W"`
	Hours float64 `json:"hours" jsonschema:"effective fermentation hours at room temperature"`
}

// YeastOutput is the output schema for the resolve_yeast tool.
type YeastOutput struct {
	Estimate domain.YeastEstimate `json:"estimate"`

	// GramsPerKgFlour is Percent expressed per kilogram of flour.
	GramsPerKgFlour float64 `json:"grams_per_kg_flour"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name: "plan_dough",
		Description: "Compute pizza dough ingredient weights and a fermentation timeline " +
			"from ball count, hydration, flour strength, temperature and available time",
	}, s.handlePlan)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "resolve_yeast",
		Description: "Estimate the yeast amount as a fraction of flour weight",
	}, s.handleYeast)
}

// handlePlan handles the plan_dough tool invocation.
func (s *Server) handlePlan(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input PlanInput,
) (*mcp.CallToolResult, present.PlanDocument, error) {
	profile, err := s.baseProfile(ctx, input.Profile)
	if err != nil {
		return nil, present.PlanDocument{}, err
	}
	if err := input.apply(&profile); err != nil {
		return nil, present.PlanDocument{}, err
	}

	start := time.Time{}
	if profile.Start != "" {
		var ok bool
		start, ok = present.ParseStart(profile.Start, time.Now())
		if !ok {
			return nil, present.PlanDocument{}, domain.InvalidParameter("start", "must be HH:MM")
		}
	}

	plan, err := s.ports.Calculator.Plan(ctx, profile)
	if err != nil {
		return nil, present.PlanDocument{}, err
	}
	return nil, present.Document(plan, start), nil
}

// handleYeast handles the resolve_yeast tool invocation.
func (s *Server) handleYeast(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input YeastInput,
) (*mcp.CallToolResult, YeastOutput, error) {
	kind, err := domain.ParseYeastKind(input.Yeast)
	if err != nil {
		return nil, YeastOutput{}, err
	}

	est, err := s.ports.Calculator.EstimateYeast(
		kind, domain.Environment{TemperatureC: input.Temp}, domain.FlourStrength(input.W), input.Hours)
	if err != nil {
		return nil, YeastOutput{}, err
	}
	return nil, YeastOutput{Estimate: est, GramsPerKgFlour: est.Percent * 1000}, nil
}

// baseProfile returns the named profile, or the default parameters.
func (s *Server) baseProfile(ctx context.Context, name string) (domain.Profile, error) {
	if name != "" {
		if s.ports.Profiles == nil {
			return domain.Profile{}, fmt.Errorf("profile %q: saved profiles are not available", name)
		}
		p, err := s.ports.Profiles.Get(ctx, name)
		if err != nil {
			return domain.Profile{}, fmt.Errorf("profile %q: %w", name, err)
		}
		return *p, nil
	}

	if s.ports.Settings != nil {
		settings, err := s.ports.Settings.Get()
		if err != nil {
			return domain.Profile{}, err
		}
		return settings.Defaults.Profile(), nil
	}
	return domain.DefaultCalculatorSettings().Defaults.Profile(), nil
}

// apply copies every field set in the input onto p.
func (in PlanInput) apply(p *domain.Profile) error {
	if in.Yeast != "" {
		kind, err := domain.ParseYeastKind(in.Yeast)
		if err != nil {
			return err
		}
		p.Yeast = kind
	}
	setInt(&p.W, in.W)
	setInt(&p.Balls, in.Balls)
	setFloat(&p.TempC, in.Temp)
	setFloat(&p.Hydration, in.Hydration)
	setFloat(&p.SaltPerKg, in.SaltPerKg)
	setFloat(&p.BallWeightG, in.BallWeight)
	setFloat(&p.TotalHours, in.TotalHours)
	setFloat(&p.FridgeHours, in.FridgeHours)
	setFloat(&p.WarmupHours, in.WarmupHours)
	setFloat(&p.FridgeFactor, in.FridgeFactor)
	if in.YeastPct != nil {
		v := *in.YeastPct
		p.YeastPercent = &v
	}
	if in.Start != "" {
		p.Start = in.Start
	}
	return nil
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func setFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}
