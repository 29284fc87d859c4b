package providers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// UpstreamError captures a non-2xx response from an upstream API.
type UpstreamError struct {
	Upstream   string
	StatusCode int
	Body       string
	RetryAfter time.Duration
}

func (e *UpstreamError) Error() string {
	name := e.Upstream
	if name == "" {
		name = "upstream"
	}
	body := strings.TrimSpace(e.Body)
	if body == "" {
		return fmt.Sprintf("%s %d", name, e.StatusCode)
	}
	return fmt.Sprintf("%s %d: %s", name, e.StatusCode, body)
}

// RateLimited reports whether the upstream rejected the call with HTTP 429.
func (e *UpstreamError) RateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests
}

// AsUpstreamError attempts to unwrap an error into an UpstreamError.
func AsUpstreamError(err error) (*UpstreamError, bool) {
	var upErr *UpstreamError
	if errors.As(err, &upErr) {
		return upErr, true
	}
	return nil, false
}
