package fixtures

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"testing"

	domainfixtures "github.com/preston-bernstein/api-football-proxy/internal/domain/fixtures"
	"github.com/preston-bernstein/api-football-proxy/internal/metrics"
	"github.com/preston-bernstein/api-football-proxy/internal/providers"
)

type stubUpstream struct {
	body  json.RawMessage
	err   error
	calls int
	path  string
	query url.Values
}

func (s *stubUpstream) Fetch(_ context.Context, path string, query url.Values) (json.RawMessage, error) {
	s.calls++
	s.path = path
	s.query = query
	return s.body, s.err
}

func TestFixturesForwardsPresentKeys(t *testing.T) {
	up := &stubUpstream{body: json.RawMessage(`{"response":[]}`)}
	svc := NewService(up, true, nil)

	body, err := svc.Fixtures(context.Background(), domainfixtures.Filter{Date: "2024-05-01", League: "39"})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if string(body) != `{"response":[]}` {
		t.Fatalf("expected body unchanged, got %s", body)
	}
	if up.path != PathFixtures || up.query.Encode() != "date=2024-05-01&league=39" {
		t.Fatalf("unexpected upstream call path=%s query=%s", up.path, up.query.Encode())
	}
}

func TestFixturesRejectsDateOnlyWithoutUpstreamCall(t *testing.T) {
	up := &stubUpstream{}
	svc := NewService(up, true, nil)

	_, err := svc.Fixtures(context.Background(), domainfixtures.Filter{Date: "2024-05-01"})
	if !errors.Is(err, domainfixtures.ErrTooBroad) {
		t.Fatalf("expected ErrTooBroad, got %v", err)
	}
	if up.calls != 0 {
		t.Fatalf("expected no upstream call, got %d", up.calls)
	}
}

func TestFixturesWrapsUpstreamError(t *testing.T) {
	up := &stubUpstream{err: &providers.UpstreamError{StatusCode: 500}}
	svc := NewService(up, false, nil)

	_, err := svc.Fixtures(context.Background(), domainfixtures.Filter{})
	if _, ok := providers.AsUpstreamError(err); !ok {
		t.Fatalf("expected wrapped upstream error, got %v", err)
	}
}

func TestCompactFixturesChecksCredentialFirst(t *testing.T) {
	up := &stubUpstream{}
	svc := NewService(up, false, nil)

	_, err := svc.CompactFixtures(context.Background(), domainfixtures.Filter{})
	if !errors.Is(err, ErrMissingCredential) {
		t.Fatalf("expected ErrMissingCredential even with an invalid filter, got %v", err)
	}
	if up.calls != 0 {
		t.Fatalf("expected no upstream call")
	}
}

func TestCompactFixturesRequiresLeagueOrTeam(t *testing.T) {
	up := &stubUpstream{}
	svc := NewService(up, true, nil)

	_, err := svc.CompactFixtures(context.Background(), domainfixtures.Filter{Date: "2024-05-01", Season: "2024"})
	if !errors.Is(err, domainfixtures.ErrLeagueOrTeamRequired) {
		t.Fatalf("expected ErrLeagueOrTeamRequired, got %v", err)
	}
	if up.calls != 0 {
		t.Fatalf("expected no upstream call")
	}
}

func TestCompactFixturesNormalizesAndRecords(t *testing.T) {
	up := &stubUpstream{body: json.RawMessage(`{"response":[
		{"fixture":{"id":7,"status":{"short":"FT"}},"league":{"id":39,"name":"PL"},"teams":{"home":{"id":1,"name":"A"},"away":{"id":2,"name":"B"}}},
		{"fixture":{"id":8,"status":{"short":"NS"}},"league":{"id":39,"name":"PL"},"teams":{"home":{"id":3,"name":"C"},"away":{"id":4,"name":"D"}}}
	]}`)}
	rec := metrics.NewRecorder()
	svc := NewService(up, true, rec)

	resp, err := svc.CompactFixtures(context.Background(), domainfixtures.Filter{Team: "1"})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if resp.Count != 2 || len(resp.Fixtures) != 2 || resp.Fixtures[1].FixtureID != 8 {
		t.Fatalf("unexpected compact response %+v", resp)
	}
	if up.query.Encode() != "team=1" {
		t.Fatalf("unexpected upstream query %s", up.query.Encode())
	}
	if rec.Normalized() != 2 {
		t.Fatalf("expected 2 normalized fixtures recorded, got %d", rec.Normalized())
	}
}

func TestCompactFixturesFailsOnMalformedPayload(t *testing.T) {
	up := &stubUpstream{body: json.RawMessage(`{"errors":{"token":"bad"}}`)}
	svc := NewService(up, true, nil)

	_, err := svc.CompactFixtures(context.Background(), domainfixtures.Filter{League: "39"})
	if !errors.Is(err, domainfixtures.ErrMissingResponse) {
		t.Fatalf("expected ErrMissingResponse, got %v", err)
	}
}

func TestStandingsForwardsLeagueAndSeasonOnly(t *testing.T) {
	up := &stubUpstream{body: json.RawMessage(`{"response":[{"league":{}}]}`)}
	svc := NewService(up, true, nil)

	body, err := svc.Standings(context.Background(), domainfixtures.Filter{League: "39", Season: "2024", Team: "33"})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if string(body) != `{"response":[{"league":{}}]}` {
		t.Fatalf("expected body unchanged, got %s", body)
	}
	if up.path != PathStandings || up.query.Encode() != "league=39&season=2024" {
		t.Fatalf("unexpected upstream call path=%s query=%s", up.path, up.query.Encode())
	}
}

func TestStandingsRequiresSeason(t *testing.T) {
	up := &stubUpstream{}
	svc := NewService(up, true, nil)

	_, err := svc.Standings(context.Background(), domainfixtures.Filter{League: "39"})
	if !errors.Is(err, domainfixtures.ErrLeagueAndSeasonRequired) {
		t.Fatalf("expected ErrLeagueAndSeasonRequired, got %v", err)
	}
	if up.calls != 0 {
		t.Fatalf("expected no upstream call")
	}
}
