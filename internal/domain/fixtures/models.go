package fixtures

// CompactFixture is the flattened fixture shape served by the compact route.
type CompactFixture struct {
	FixtureID  int64   `json:"fixture_id"`
	Date       string  `json:"date"`
	Timestamp  int64   `json:"timestamp"`
	LeagueID   int64   `json:"league_id"`
	LeagueName string  `json:"league_name"`
	HomeTeam   string  `json:"home_team"`
	AwayTeam   string  `json:"away_team"`
	HomeTeamID int64   `json:"home_team_id"`
	AwayTeamID int64   `json:"away_team_id"`
	Venue      *string `json:"venue"`
	Status     string  `json:"status"`
}

// CompactResponse is the payload returned by /fixtures/compact.
type CompactResponse struct {
	Count    int              `json:"count"`
	Fixtures []CompactFixture `json:"fixtures"`
}

// NewCompactResponse builds a CompactResponse whose count always matches its fixtures.
func NewCompactResponse(fixtures []CompactFixture) CompactResponse {
	if fixtures == nil {
		fixtures = []CompactFixture{}
	}
	return CompactResponse{
		Count:    len(fixtures),
		Fixtures: fixtures,
	}
}

// upstream shapes; pointers mark objects that must be present.
type rawPayload struct {
	Response *[]rawFixture `json:"response"`
}

type rawFixture struct {
	Fixture *rawFixtureInfo `json:"fixture"`
	League  *rawNamedRef    `json:"league"`
	Teams   *rawTeams       `json:"teams"`
}

type rawFixtureInfo struct {
	ID        int64      `json:"id"`
	Date      string     `json:"date"`
	Timestamp int64      `json:"timestamp"`
	Venue     *rawVenue  `json:"venue"`
	Status    *rawStatus `json:"status"`
}

type rawVenue struct {
	Name *string `json:"name"`
}

type rawStatus struct {
	Short string `json:"short"`
}

type rawNamedRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type rawTeams struct {
	Home *rawNamedRef `json:"home"`
	Away *rawNamedRef `json:"away"`
}
