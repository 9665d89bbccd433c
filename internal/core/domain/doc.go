// Package domain defines the core business entities for pizza-cli.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - DoughSpec: ball count, ball weight, hydration, salt and yeast choice
//   - Environment: ambient temperature
//   - FermentationPlan: total time and the optional fridge schedule
//   - IngredientResult, TimelineResult: calculation outputs
//   - Profile: a persisted parameter record
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
