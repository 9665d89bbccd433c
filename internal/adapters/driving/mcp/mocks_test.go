package mcp

import (
	"context"

	"github.com/custodia-labs/pizza-cli/internal/core/domain"
	"github.com/custodia-labs/pizza-cli/internal/core/dough"
)

// mockCalculatorService is a mock implementation of driving.CalculatorService.
type mockCalculatorService struct {
	plan     *domain.BakePlan
	estimate domain.YeastEstimate
	err      error

	gotProfile domain.Profile
	gotKind    domain.YeastKind
	gotHours   float64
}

func (m *mockCalculatorService) Plan(_ context.Context, profile domain.Profile) (*domain.BakePlan, error) {
	m.gotProfile = profile
	return m.plan, m.err
}

func (m *mockCalculatorService) EstimateYeast(
	kind domain.YeastKind,
	_ domain.Environment,
	_ domain.FlourStrength,
	totalHours float64,
) (domain.YeastEstimate, error) {
	m.gotKind = kind
	m.gotHours = totalHours
	return m.estimate, m.err
}

// mockProfileService is a mock implementation of driving.ProfileService.
type mockProfileService struct {
	profiles []domain.Profile
	err      error
}

func (m *mockProfileService) Save(_ context.Context, p domain.Profile) (*domain.Profile, error) {
	return &p, m.err
}

func (m *mockProfileService) Get(_ context.Context, name string) (*domain.Profile, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.profiles {
		if m.profiles[i].Name == name {
			p := m.profiles[i]
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockProfileService) List(_ context.Context) ([]domain.Profile, error) {
	return m.profiles, m.err
}

func (m *mockProfileService) Delete(_ context.Context, _ string) error {
	return m.err
}

func (m *mockProfileService) Import(_ string, base domain.Profile) (*domain.Profile, error) {
	return &base, m.err
}

func (m *mockProfileService) Export(_ string, _ *domain.Profile) error {
	return m.err
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	settings domain.CalculatorSettings
	err      error
}

func (m *mockSettingsService) Get() (*domain.CalculatorSettings, error) {
	if m.err != nil {
		return nil, m.err
	}
	s := m.settings
	return &s, nil
}

func (m *mockSettingsService) Save(_ *domain.CalculatorSettings) error { return m.err }

func (m *mockSettingsService) Set(_, _ string) error { return m.err }

func (m *mockSettingsService) Reset() error { return m.err }

func (m *mockSettingsService) Keys() []string { return nil }

func (m *mockSettingsService) Model() (dough.Model, error) {
	return dough.DefaultModel(), m.err
}
