package driven

import (
	"context"

	"github.com/custodia-labs/pizza-cli/internal/core/domain"
)

// ProfileStore persists named baking profiles.
type ProfileStore interface {
	// Save stores or updates a profile by ID.
	// Returns domain.ErrAlreadyExists if another profile has the same name.
	Save(ctx context.Context, profile domain.Profile) error

	// Get retrieves a profile by ID.
	// Returns domain.ErrNotFound if it does not exist.
	Get(ctx context.Context, id string) (*domain.Profile, error)

	// GetByName retrieves a profile by its unique name.
	// Returns domain.ErrNotFound if it does not exist.
	GetByName(ctx context.Context, name string) (*domain.Profile, error)

	// List returns all profiles ordered by name.
	List(ctx context.Context) ([]domain.Profile, error)

	// Delete removes a profile by ID.
	Delete(ctx context.Context, id string) error
}
