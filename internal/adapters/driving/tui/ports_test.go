package tui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/pizza-cli/internal/core/domain"
	"github.com/custodia-labs/pizza-cli/internal/core/dough"
	"github.com/custodia-labs/pizza-cli/internal/core/ports/driving"
)

// MockCalculatorService implements driving.CalculatorService for testing.
type MockCalculatorService struct {
	PlanFunc func(ctx context.Context, profile domain.Profile) (*domain.BakePlan, error)
}

func (m *MockCalculatorService) Plan(ctx context.Context, profile domain.Profile) (*domain.BakePlan, error) {
	if m.PlanFunc != nil {
		return m.PlanFunc(ctx, profile)
	}
	return &domain.BakePlan{Dough: profile.Dough(), Strength: profile.Strength()}, nil
}

func (m *MockCalculatorService) EstimateYeast(
	_ domain.YeastKind, _ domain.Environment, _ domain.FlourStrength, _ float64,
) (domain.YeastEstimate, error) {
	return domain.YeastEstimate{}, nil
}

// MockProfileService implements driving.ProfileService for testing.
type MockProfileService struct {
	ListFunc func(ctx context.Context) ([]domain.Profile, error)
	saved    []domain.Profile
}

func (m *MockProfileService) Save(_ context.Context, p domain.Profile) (*domain.Profile, error) {
	m.saved = append(m.saved, p)
	return &p, nil
}

func (m *MockProfileService) Get(_ context.Context, _ string) (*domain.Profile, error) {
	return nil, domain.ErrNotFound
}

func (m *MockProfileService) List(ctx context.Context) ([]domain.Profile, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *MockProfileService) Delete(_ context.Context, _ string) error { return nil }

func (m *MockProfileService) Import(_ string, base domain.Profile) (*domain.Profile, error) {
	return &base, nil
}

func (m *MockProfileService) Export(_ string, _ *domain.Profile) error { return nil }

// MockSettingsService implements driving.SettingsService for testing.
type MockSettingsService struct {
	settings domain.CalculatorSettings
}

func (m *MockSettingsService) Get() (*domain.CalculatorSettings, error) {
	s := m.settings
	return &s, nil
}

func (m *MockSettingsService) Save(s *domain.CalculatorSettings) error {
	m.settings = *s
	return nil
}

func (m *MockSettingsService) Set(_, _ string) error { return nil }

func (m *MockSettingsService) Reset() error {
	m.settings = domain.DefaultCalculatorSettings()
	return nil
}

func (m *MockSettingsService) Keys() []string { return []string{"defaults.w"} }

func (m *MockSettingsService) Model() (dough.Model, error) { return dough.DefaultModel(), nil }

var (
	_ driving.CalculatorService = (*MockCalculatorService)(nil)
	_ driving.ProfileService    = (*MockProfileService)(nil)
	_ driving.SettingsService   = (*MockSettingsService)(nil)
)

func TestNewPorts(t *testing.T) {
	calc := &MockCalculatorService{}
	profiles := &MockProfileService{}
	settings := &MockSettingsService{}

	ports := NewPorts(calc, profiles, settings)

	assert.Equal(t, calc, ports.Calculator)
	assert.Equal(t, profiles, ports.Profiles)
	assert.Equal(t, settings, ports.Settings)
}

func TestPorts_Validate(t *testing.T) {
	t.Run("calculator only is valid", func(t *testing.T) {
		ports := &Ports{Calculator: &MockCalculatorService{}}
		assert.NoError(t, ports.Validate())
	})

	t.Run("missing calculator", func(t *testing.T) {
		ports := &Ports{Profiles: &MockProfileService{}}
		assert.ErrorIs(t, ports.Validate(), ErrMissingCalculatorService)
	})

	t.Run("nil ports", func(t *testing.T) {
		var ports *Ports
		assert.ErrorIs(t, ports.Validate(), ErrInvalidPorts)
	})
}
