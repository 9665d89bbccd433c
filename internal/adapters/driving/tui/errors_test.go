package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors_AreDistinct(t *testing.T) {
	assert.NotEqual(t, ErrMissingCalculatorService.Error(), ErrInvalidPorts.Error())
}

func TestErrMissingCalculatorService_Message(t *testing.T) {
	assert.Contains(t, ErrMissingCalculatorService.Error(), "calculator service")
}

func TestErrInvalidPorts_Message(t *testing.T) {
	assert.Contains(t, ErrInvalidPorts.Error(), "invalid ports")
}
