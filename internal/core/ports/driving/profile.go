package driving

import (
	"context"

	"github.com/custodia-labs/pizza-cli/internal/core/domain"
)

// ProfileService manages stored and file-based profiles.
type ProfileService interface {
	// Save stores a profile under its name, replacing an existing profile
	// with the same name.
	Save(ctx context.Context, profile domain.Profile) (*domain.Profile, error)

	// Get retrieves a profile by name.
	Get(ctx context.Context, name string) (*domain.Profile, error)

	// List returns all stored profiles.
	List(ctx context.Context) ([]domain.Profile, error)

	// Delete removes a profile by name.
	Delete(ctx context.Context, name string) error

	// Import reads a profile file over base.
	Import(path string, base domain.Profile) (*domain.Profile, error)

	// Export writes a profile file.
	Export(path string, profile *domain.Profile) error
}
