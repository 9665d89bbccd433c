package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/custodia-labs/pizza-cli/internal/core/domain"
	"github.com/custodia-labs/pizza-cli/internal/core/ports/driven"
	"github.com/custodia-labs/pizza-cli/internal/core/ports/driving"
	"github.com/custodia-labs/pizza-cli/internal/logger"
)

// Ensure ProfileService implements the interface.
var _ driving.ProfileService = (*ProfileService)(nil)

// ErrNoProfileCodec is returned when file import/export is not configured.
var ErrNoProfileCodec = errors.New("profile file codec not configured")

// ProfileService manages named profiles and profile files.
type ProfileService struct {
	store driven.ProfileStore
	codec driven.ProfileCodec
}

// NewProfileService creates a new profile service.
// codec may be nil when file import/export is not needed.
func NewProfileService(store driven.ProfileStore, codec driven.ProfileCodec) *ProfileService {
	return &ProfileService{
		store: store,
		codec: codec,
	}
}

// Save stores a profile under its name. Saving an existing name replaces
// that profile and keeps its ID.
func (s *ProfileService) Save(ctx context.Context, profile domain.Profile) (*domain.Profile, error) {
	profile.Name = strings.TrimSpace(profile.Name)
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.store.GetByName(ctx, profile.Name)
	switch {
	case err == nil:
		profile.ID = existing.ID
		profile.CreatedAt = existing.CreatedAt
	case errors.Is(err, domain.ErrNotFound):
		profile.ID = uuid.New().String()
	default:
		return nil, fmt.Errorf("looking up profile: %w", err)
	}

	if err := s.store.Save(ctx, profile); err != nil {
		return nil, fmt.Errorf("saving profile: %w", err)
	}
	logger.Debug("saved profile %q (%s)", profile.Name, profile.ID)

	return s.store.Get(ctx, profile.ID)
}

// Get retrieves a profile by name.
func (s *ProfileService) Get(ctx context.Context, name string) (*domain.Profile, error) {
	return s.store.GetByName(ctx, strings.TrimSpace(name))
}

// List returns all stored profiles.
func (s *ProfileService) List(ctx context.Context) ([]domain.Profile, error) {
	return s.store.List(ctx)
}

// Delete removes a profile by name.
func (s *ProfileService) Delete(ctx context.Context, name string) error {
	profile, err := s.Get(ctx, name)
	if err != nil {
		return err
	}
	return s.store.Delete(ctx, profile.ID)
}

// Import reads a profile file. Fields the file omits keep their value
// from base.
func (s *ProfileService) Import(path string, base domain.Profile) (*domain.Profile, error) {
	if s.codec == nil {
		return nil, ErrNoProfileCodec
	}
	profile, err := s.codec.Read(path, base)
	if err != nil {
		return nil, fmt.Errorf("reading profile %s: %w", path, err)
	}
	return profile, nil
}

// Export writes a profile file.
func (s *ProfileService) Export(path string, profile *domain.Profile) error {
	if s.codec == nil {
		return ErrNoProfileCodec
	}
	if profile == nil {
		return domain.ErrInvalidInput
	}
	if err := s.codec.Write(path, profile); err != nil {
		return fmt.Errorf("writing profile %s: %w", path, err)
	}
	return nil
}
