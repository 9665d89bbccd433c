package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/pizza-cli/internal/core/domain"
)

const uriScheme = "pizza://"

// profileInfo is the resource representation of a saved profile.
type profileInfo struct {
	Name         string   `json:"name"`
	W            int      `json:"w"`
	Temp         float64  `json:"temp"`
	Yeast        string   `json:"yeast"`
	Hydration    float64  `json:"hydration"`
	SaltPerKg    float64  `json:"salt_per_kg"`
	BallWeight   float64  `json:"ball_weight"`
	Balls        int      `json:"balls"`
	TotalHours   float64  `json:"total_hours"`
	FridgeHours  float64  `json:"fridge_hours"`
	WarmupHours  float64  `json:"warmup_hours"`
	FridgeFactor float64  `json:"fridge_factor"`
	YeastPct     *float64 `json:"yeast_pct,omitempty"`
	Start        string   `json:"start,omitempty"`
}

// registerResources registers the saved-profile resources.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "profiles",
		Name:        "profiles",
		Description: "All saved dough profiles",
		MIMEType:    "application/json",
	}, s.handleProfilesResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "profiles/{name}",
		Name:        "profile",
		Description: "One saved dough profile",
		MIMEType:    "application/json",
	}, s.handleProfileResource)
}

// handleProfilesResource returns every saved profile.
func (s *Server) handleProfilesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	profiles, err := s.ports.Profiles.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing profiles: %w", err)
	}

	infos := make([]profileInfo, len(profiles))
	for i := range profiles {
		infos[i] = toProfileInfo(&profiles[i])
	}

	return jsonResource(req.Params.URI, infos)
}

// handleProfileResource returns one saved profile by name.
func (s *Server) handleProfileResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	name := extractProfileName(req.Params.URI)
	if name == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	p, err := s.ports.Profiles.Get(ctx, name)
	if err != nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	return jsonResource(req.Params.URI, toProfileInfo(p))
}

func toProfileInfo(p *domain.Profile) profileInfo {
	return profileInfo{
		Name:         p.Name,
		W:            p.W,
		Temp:         p.TempC,
		Yeast:        p.Yeast.String(),
		Hydration:    p.Hydration,
		SaltPerKg:    p.SaltPerKg,
		BallWeight:   p.BallWeightG,
		Balls:        p.Balls,
		TotalHours:   p.TotalHours,
		FridgeHours:  p.FridgeHours,
		WarmupHours:  p.WarmupHours,
		FridgeFactor: p.FridgeFactor,
		YeastPct:     p.YeastPercent,
		Start:        p.Start,
	}
}

// extractProfileName extracts the profile name from a profile URI.
// Names are path-escaped in URIs.
func extractProfileName(uri string) string {
	const prefix = uriScheme + "profiles/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	name, err := url.PathUnescape(strings.TrimPrefix(uri, prefix))
	if err != nil {
		return ""
	}
	return name
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling resource: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
