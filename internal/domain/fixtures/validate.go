package fixtures

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	// ErrTooBroad rejects a dated fixtures query that names neither a league nor a team.
	ErrTooBroad = errors.New("request too broad: provide league or team")
	// ErrLeagueOrTeamRequired rejects a compact query without a league or team.
	ErrLeagueOrTeamRequired = errors.New("league or team is required for a compact response")
	// ErrLeagueAndSeasonRequired rejects a standings query missing either key.
	ErrLeagueAndSeasonRequired = errors.New("league and season are required")
)

// ValidationError reports a query that cannot be forwarded upstream.
// Reason is one of the Err* sentinels; Fields carries the per-key detail.
type ValidationError struct {
	Reason error
	Fields validation.Errors
}

func (e *ValidationError) Error() string {
	return e.Reason.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Reason
}

// ValidateForFixtures allows any combination except a date on its own.
func (f Filter) ValidateForFixtures() error {
	return guard(ErrTooBroad, validation.ValidateStruct(&f,
		validation.Field(&f.League, validation.Required.When(f.Date != "" && f.Team == "")),
	))
}

// ValidateForCompact requires a league or a team, whatever else is set.
func (f Filter) ValidateForCompact() error {
	return guard(ErrLeagueOrTeamRequired, validation.ValidateStruct(&f,
		validation.Field(&f.League, validation.Required.When(f.Team == "")),
	))
}

// ValidateForStandings requires both league and season.
func (f Filter) ValidateForStandings() error {
	return guard(ErrLeagueAndSeasonRequired, validation.ValidateStruct(&f,
		validation.Field(&f.League, validation.Required),
		validation.Field(&f.Season, validation.Required),
	))
}

func guard(reason error, err error) error {
	if err == nil {
		return nil
	}
	var fields validation.Errors
	if !errors.As(err, &fields) {
		return err
	}
	return &ValidationError{Reason: reason, Fields: fields}
}
