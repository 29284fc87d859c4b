package fixtures

import "net/url"

// Query keys accepted by the fixture and standings routes.
const (
	KeyDate   = "date"
	KeyLeague = "league"
	KeySeason = "season"
	KeyTeam   = "team"
)

// Filter narrows an upstream fixtures or standings query.
// An empty field means the key was absent from the request.
type Filter struct {
	Date   string `json:"date"`
	League string `json:"league"`
	Season string `json:"season"`
	Team   string `json:"team"`
}

// FilterFromQuery copies the recognised keys out of a request query.
// Only the first value of a repeated key is used.
func FilterFromQuery(q url.Values) Filter {
	return Filter{
		Date:   q.Get(KeyDate),
		League: q.Get(KeyLeague),
		Season: q.Get(KeySeason),
		Team:   q.Get(KeyTeam),
	}
}

// Values returns the present keys as an upstream query.
func (f Filter) Values() url.Values {
	v := url.Values{}
	setIfPresent(v, KeyDate, f.Date)
	setIfPresent(v, KeyLeague, f.League)
	setIfPresent(v, KeySeason, f.Season)
	setIfPresent(v, KeyTeam, f.Team)
	return v
}

// StandingsValues returns only the keys the standings endpoint accepts.
func (f Filter) StandingsValues() url.Values {
	v := url.Values{}
	setIfPresent(v, KeyLeague, f.League)
	setIfPresent(v, KeySeason, f.Season)
	return v
}

func setIfPresent(v url.Values, key, value string) {
	if value != "" {
		v.Set(key, value)
	}
}
