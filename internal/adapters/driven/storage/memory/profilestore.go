package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/custodia-labs/pizza-cli/internal/core/domain"
	"github.com/custodia-labs/pizza-cli/internal/core/ports/driven"
)

// Ensure ProfileStore implements the interface.
var _ driven.ProfileStore = (*ProfileStore)(nil)

// ProfileStore is an in-memory implementation of driven.ProfileStore.
type ProfileStore struct {
	mu       sync.RWMutex
	profiles map[string]domain.Profile
}

// NewProfileStore creates a new in-memory profile store.
func NewProfileStore() *ProfileStore {
	return &ProfileStore{
		profiles: make(map[string]domain.Profile),
	}
}

// Save stores or updates a profile.
func (s *ProfileStore) Save(_ context.Context, profile domain.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, p := range s.profiles {
		if p.Name == profile.Name && id != profile.ID {
			return domain.ErrAlreadyExists
		}
	}

	now := time.Now().UTC()
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now
	s.profiles[profile.ID] = clone(profile)
	return nil
}

// Get retrieves a profile by ID.
func (s *ProfileStore) Get(_ context.Context, id string) (*domain.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	profile, ok := s.profiles[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	p := clone(profile)
	return &p, nil
}

// GetByName retrieves a profile by name.
func (s *ProfileStore) GetByName(_ context.Context, name string) (*domain.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, profile := range s.profiles {
		if profile.Name == name {
			p := clone(profile)
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

// List returns all profiles ordered by name.
func (s *ProfileStore) List(_ context.Context) ([]domain.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Profile, 0, len(s.profiles))
	for _, profile := range s.profiles {
		result = append(result, clone(profile))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

// Delete removes a profile.
func (s *ProfileStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.profiles, id)
	return nil
}

// clone copies a profile so callers cannot alias stored pointers.
func clone(p domain.Profile) domain.Profile {
	if p.YeastPercent != nil {
		v := *p.YeastPercent
		p.YeastPercent = &v
	}
	return p
}
