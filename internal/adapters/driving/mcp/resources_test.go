package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/pizza-cli/internal/core/domain"
)

func TestExtractProfileName(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{name: "valid profile URI", uri: "pizza://profiles/neapolitan", expected: "neapolitan"},
		{name: "escaped name", uri: "pizza://profiles/friday%20night", expected: "friday night"},
		{name: "invalid prefix", uri: "file://profiles/neapolitan", expected: ""},
		{name: "bad escape", uri: "pizza://profiles/%zz", expected: ""},
		{name: "empty URI", uri: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractProfileName(tt.uri))
		})
	}
}

func newResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{
			URI: uri,
		},
	}
}

func testProfiles() []domain.Profile {
	pct := 0.2
	a := domain.DefaultCalculatorSettings().Defaults.Profile()
	a.Name = "neapolitan"
	b := a
	b.Name = "friday night"
	b.FridgeHours = 18
	b.YeastPercent = &pct
	return []domain.Profile{b, a}
}

func TestServer_handleProfilesResource(t *testing.T) {
	ctx := context.Background()

	t.Run("lists profiles", func(t *testing.T) {
		server, err := NewServer(&Ports{
			Calculator: &mockCalculatorService{},
			Profiles:   &mockProfileService{profiles: testProfiles()},
		})
		require.NoError(t, err)

		result, err := server.handleProfilesResource(ctx, newResourceRequest("pizza://profiles"))
		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "application/json", result.Contents[0].MIMEType)

		var infos []profileInfo
		require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &infos))
		require.Len(t, infos, 2)
		assert.Equal(t, "friday night", infos[0].Name)
		assert.Equal(t, 18.0, infos[0].FridgeHours)
		require.NotNil(t, infos[0].YeastPct)
		assert.Equal(t, 0.2, *infos[0].YeastPct)
		assert.Equal(t, "dry", infos[1].Yeast)
		assert.Nil(t, infos[1].YeastPct)
	})

	t.Run("service error", func(t *testing.T) {
		server, err := NewServer(&Ports{
			Calculator: &mockCalculatorService{},
			Profiles:   &mockProfileService{err: errors.New("store closed")},
		})
		require.NoError(t, err)

		_, err = server.handleProfilesResource(ctx, newResourceRequest("pizza://profiles"))
		assert.Error(t, err)
	})
}

func TestServer_handleProfileResource(t *testing.T) {
	ctx := context.Background()
	server, err := NewServer(&Ports{
		Calculator: &mockCalculatorService{},
		Profiles:   &mockProfileService{profiles: testProfiles()},
	})
	require.NoError(t, err)

	t.Run("returns one profile", func(t *testing.T) {
		result, err := server.handleProfileResource(ctx, newResourceRequest("pizza://profiles/friday%20night"))
		require.NoError(t, err)
		require.Len(t, result.Contents, 1)

		var info profileInfo
		require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &info))
		assert.Equal(t, "friday night", info.Name)
		assert.Equal(t, 260, info.W)
	})

	t.Run("unknown profile", func(t *testing.T) {
		_, err := server.handleProfileResource(ctx, newResourceRequest("pizza://profiles/missing"))
		assert.Error(t, err)
	})

	t.Run("malformed URI", func(t *testing.T) {
		_, err := server.handleProfileResource(ctx, newResourceRequest("pizza://other"))
		assert.Error(t, err)
	})
}
