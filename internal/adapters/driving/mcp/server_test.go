package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	t.Run("nil calculator service returns error", func(t *testing.T) {
		ports := &Ports{}
		server, err := NewServer(ports)
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingCalculatorService)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		ports := &Ports{
			Calculator: &mockCalculatorService{},
		}
		server, err := NewServer(ports)
		require.NoError(t, err)
		assert.NotNil(t, server)
	})

	t.Run("with profiles registers resources", func(t *testing.T) {
		ports := &Ports{
			Calculator: &mockCalculatorService{},
			Profiles:   &mockProfileService{},
		}
		server, err := NewServer(ports)
		require.NoError(t, err)
		assert.NotNil(t, server)
	})
}

func TestPorts_Validate(t *testing.T) {
	t.Run("nil calculator service returns error", func(t *testing.T) {
		ports := &Ports{Profiles: &mockProfileService{}}
		err := ports.Validate()
		assert.ErrorIs(t, err, ErrMissingCalculatorService)
	})

	t.Run("calculator only is valid", func(t *testing.T) {
		ports := &Ports{Calculator: &mockCalculatorService{}}
		assert.NoError(t, ports.Validate())
	})

	t.Run("all ports is valid", func(t *testing.T) {
		ports := &Ports{
			Calculator: &mockCalculatorService{},
			Profiles:   &mockProfileService{},
			Settings:   &mockSettingsService{},
		}
		assert.NoError(t, ports.Validate())
	})
}
