package fixtures

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	domainfixtures "github.com/preston-bernstein/api-football-proxy/internal/domain/fixtures"
	"github.com/preston-bernstein/api-football-proxy/internal/metrics"
	"github.com/preston-bernstein/api-football-proxy/internal/providers"
)

// Upstream endpoint paths.
const (
	PathFixtures  = "/fixtures"
	PathStandings = "/standings"
)

// ErrMissingCredential is returned by routes that refuse to run without an upstream key.
var ErrMissingCredential = errors.New("API_FOOTBALL_KEY is not configured")

// Service runs the fixture and standings use cases against an Upstream.
type Service struct {
	upstream      providers.Upstream
	hasCredential bool
	metrics       *metrics.Recorder
}

// NewService constructs a Service. hasCredential reports whether an upstream key is configured.
func NewService(upstream providers.Upstream, hasCredential bool, recorder *metrics.Recorder) *Service {
	return &Service{
		upstream:      upstream,
		hasCredential: hasCredential,
		metrics:       recorder,
	}
}

// Fixtures forwards the filter to the upstream fixtures endpoint and returns its body unchanged.
func (s *Service) Fixtures(ctx context.Context, f domainfixtures.Filter) (json.RawMessage, error) {
	if err := f.ValidateForFixtures(); err != nil {
		return nil, err
	}
	body, err := s.upstream.Fetch(ctx, PathFixtures, f.Values())
	if err != nil {
		return nil, fmt.Errorf("fetch fixtures: %w", err)
	}
	return body, nil
}

// CompactFixtures fetches fixtures and projects them into the compact shape.
// The credential check runs before the filter is validated.
func (s *Service) CompactFixtures(ctx context.Context, f domainfixtures.Filter) (domainfixtures.CompactResponse, error) {
	if !s.hasCredential {
		return domainfixtures.CompactResponse{}, ErrMissingCredential
	}
	if err := f.ValidateForCompact(); err != nil {
		return domainfixtures.CompactResponse{}, err
	}

	body, err := s.upstream.Fetch(ctx, PathFixtures, f.Values())
	if err != nil {
		return domainfixtures.CompactResponse{}, fmt.Errorf("fetch fixtures: %w", err)
	}

	compact, err := domainfixtures.NormalizeFixtures(body)
	if err != nil {
		return domainfixtures.CompactResponse{}, fmt.Errorf("normalize fixtures: %w", err)
	}
	s.metrics.RecordNormalized(len(compact))
	return domainfixtures.NewCompactResponse(compact), nil
}

// Standings forwards league and season to the upstream standings endpoint.
func (s *Service) Standings(ctx context.Context, f domainfixtures.Filter) (json.RawMessage, error) {
	if err := f.ValidateForStandings(); err != nil {
		return nil, err
	}
	body, err := s.upstream.Fetch(ctx, PathStandings, f.StandingsValues())
	if err != nil {
		return nil, fmt.Errorf("fetch standings: %w", err)
	}
	return body, nil
}
