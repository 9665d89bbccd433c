package driving

import (
	"context"

	"github.com/custodia-labs/pizza-cli/internal/core/domain"
)

// CalculatorService turns baking parameters into a complete bake plan.
type CalculatorService interface {
	// Plan resolves the yeast amount, solves the ingredients and splits the
	// fermentation timeline for the parameters in profile.
	Plan(ctx context.Context, profile domain.Profile) (*domain.BakePlan, error)

	// EstimateYeast runs only the yeast model.
	EstimateYeast(
		kind domain.YeastKind,
		env domain.Environment,
		w domain.FlourStrength,
		totalHours float64,
	) (domain.YeastEstimate, error)
}
