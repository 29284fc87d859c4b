package fixtures

import (
	"encoding/json"
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrMissingResponse is returned when the payload has no usable response array.
var ErrMissingResponse = errors.New("fixtures payload has no response array")

// ErrMalformedFixture is returned when a fixture lacks a nested object the projection reads.
var ErrMalformedFixture = errors.New("malformed fixture")

// NormalizeFixtures projects an upstream fixtures payload into compact fixtures.
// Order and length follow the upstream response array.
func NormalizeFixtures(raw json.RawMessage) ([]CompactFixture, error) {
	var payload rawPayload
	if err := jsonAPI.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("decode fixtures payload: %w", err)
	}
	if payload.Response == nil {
		return nil, ErrMissingResponse
	}

	items := *payload.Response
	out := make([]CompactFixture, 0, len(items))
	for i, item := range items {
		compact, err := compactFixture(item)
		if err != nil {
			return nil, fmt.Errorf("fixture %d: %w", i, err)
		}
		out = append(out, compact)
	}
	return out, nil
}

func compactFixture(f rawFixture) (CompactFixture, error) {
	switch {
	case f.Fixture == nil:
		return CompactFixture{}, fmt.Errorf("%w: missing fixture", ErrMalformedFixture)
	case f.Fixture.Status == nil:
		return CompactFixture{}, fmt.Errorf("%w: missing fixture.status", ErrMalformedFixture)
	case f.League == nil:
		return CompactFixture{}, fmt.Errorf("%w: missing league", ErrMalformedFixture)
	case f.Teams == nil || f.Teams.Home == nil:
		return CompactFixture{}, fmt.Errorf("%w: missing teams.home", ErrMalformedFixture)
	case f.Teams.Away == nil:
		return CompactFixture{}, fmt.Errorf("%w: missing teams.away", ErrMalformedFixture)
	}

	return CompactFixture{
		FixtureID:  f.Fixture.ID,
		Date:       f.Fixture.Date,
		Timestamp:  f.Fixture.Timestamp,
		LeagueID:   f.League.ID,
		LeagueName: f.League.Name,
		HomeTeam:   f.Teams.Home.Name,
		AwayTeam:   f.Teams.Away.Name,
		HomeTeamID: f.Teams.Home.ID,
		AwayTeamID: f.Teams.Away.ID,
		Venue:      venueName(f.Fixture.Venue),
		Status:     f.Fixture.Status.Short,
	}, nil
}

func venueName(v *rawVenue) *string {
	if v == nil || v.Name == nil || *v.Name == "" {
		return nil
	}
	name := *v.Name
	return &name
}
