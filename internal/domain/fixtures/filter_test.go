package fixtures

import (
	"net/url"
	"testing"
)

func TestFilterFromQueryTreatsEmptyAsAbsent(t *testing.T) {
	q, _ := url.ParseQuery("date=&league=39&season=2024&team=&other=x")
	f := FilterFromQuery(q)

	if f.Date != "" || f.Team != "" {
		t.Fatalf("expected empty keys to be absent, got %+v", f)
	}
	if f.League != "39" || f.Season != "2024" {
		t.Fatalf("unexpected filter %+v", f)
	}

	v := f.Values()
	if _, ok := v[KeyDate]; ok {
		t.Fatalf("did not expect date to be forwarded")
	}
	if got := v.Encode(); got != "league=39&season=2024" {
		t.Fatalf("unexpected upstream query %q", got)
	}
}

func TestFilterValuesForwardsAllPresentKeys(t *testing.T) {
	f := Filter{Date: "2024-05-01", League: "39", Season: "2023", Team: "33"}
	if got := f.Values().Encode(); got != "date=2024-05-01&league=39&season=2023&team=33" {
		t.Fatalf("unexpected upstream query %q", got)
	}
}

func TestFilterStandingsValuesOnlyForwardsLeagueAndSeason(t *testing.T) {
	f := Filter{Date: "2024-05-01", League: "39", Season: "2023", Team: "33"}
	if got := f.StandingsValues().Encode(); got != "league=39&season=2023" {
		t.Fatalf("unexpected standings query %q", got)
	}
}
