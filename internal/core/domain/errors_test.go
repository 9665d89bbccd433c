package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrAlreadyExists", ErrAlreadyExists},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrInvalidParameter", ErrInvalidParameter},
		{"ErrUnsupportedFormat", ErrUnsupportedFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestInvalidParameter_Message(t *testing.T) {
	err := InvalidParameter("total_hours", "must be positive")

	assert.Equal(t, "invalid parameter total_hours: must be positive", err.Error())
}

func TestInvalidParameter_MatchesSentinels(t *testing.T) {
	err := InvalidParameter("hydration", "must be positive")

	assert.True(t, errors.Is(err, ErrInvalidParameter))
	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestInvalidField_Wrapped(t *testing.T) {
	err := fmt.Errorf("computing timeline: %w", InvalidParameter("fridge_factor", "must be in (0, 1]"))

	field, ok := InvalidField(err)

	assert.True(t, ok)
	assert.Equal(t, "fridge_factor", field)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestInvalidField_OtherError(t *testing.T) {
	field, ok := InvalidField(ErrNotFound)

	assert.False(t, ok)
	assert.Empty(t, field)
}
