package dough

import "github.com/custodia-labs/pizza-cli/internal/core/domain"

// ComputeIngredients solves the flour/water/salt/yeast mass balance for
// the total dough weight. All ratios are relative to flour, so
// flour = total / (1 + hydration + salt + yeast).
func ComputeIngredients(spec domain.DoughSpec, yeastPercent float64) (domain.IngredientResult, error) {
	if spec.BallCount <= 0 {
		return domain.IngredientResult{}, domain.InvalidParameter("ball_count", "must be positive")
	}
	if !isFinite(spec.BallWeightG) || spec.BallWeightG <= 0 {
		return domain.IngredientResult{}, domain.InvalidParameter("ball_weight_g", "must be positive")
	}
	if !isFinite(spec.Hydration) || spec.Hydration <= 0 {
		return domain.IngredientResult{}, domain.InvalidParameter("hydration", "must be positive")
	}
	if !isFinite(spec.SaltPerKg) || spec.SaltPerKg < 0 {
		return domain.IngredientResult{}, domain.InvalidParameter("salt_per_kg", "must not be negative")
	}
	if err := CheckYeastPercent(yeastPercent); err != nil {
		return domain.IngredientResult{}, err
	}

	total := spec.TotalDoughG()
	if !isFinite(total) {
		return domain.IngredientResult{}, domain.InvalidParameter("ball_weight_g", "total dough weight is not finite")
	}
	salt := spec.SaltPerKg / 1000

	flour := total / (1 + spec.Hydration + salt + yeastPercent)
	return domain.IngredientResult{
		FlourG: flour,
		WaterG: flour * spec.Hydration,
		SaltG:  flour * salt,
		YeastG: flour * yeastPercent,
	}, nil
}
