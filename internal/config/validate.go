package config

import (
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Validate checks the loaded configuration. A missing API key is not an error:
// the proxy still serves the health route and the permissive passthrough routes.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Port, validation.Required, validation.By(validPort)),
		validation.Field(&c.APIFootball),
		validation.Field(&c.Metrics),
	)
}

// Validate checks the upstream settings.
func (c APIFootballConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.BaseURL, validation.Required, is.URL),
		validation.Field(&c.Timeout, validation.Required, validation.Min(Duration(1))),
	)
}

// Validate checks the telemetry settings; the port only matters when enabled.
func (c MetricsConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Port, validation.When(c.Enabled, validation.Required, validation.By(validPort))),
	)
}

func validPort(value interface{}) error {
	s, _ := value.(string)
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > 65535 {
		return validation.NewError("validation_invalid_port", "must be a port number between 0 and 65535")
	}
	return nil
}
