package providers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/url"
	"time"

	"github.com/preston-bernstein/api-football-proxy/internal/logging"
	"github.com/preston-bernstein/api-football-proxy/internal/metrics"
)

// instrumentedUpstream wraps an Upstream with metrics and failure logging.
// It makes exactly one call per Fetch.
type instrumentedUpstream struct {
	inner   Upstream
	logger  *slog.Logger
	metrics *metrics.Recorder
	name    string
	now     func() time.Time
}

// NewInstrumentedUpstream decorates inner so every call is counted and timed per endpoint.
func NewInstrumentedUpstream(inner Upstream, logger *slog.Logger, recorder *metrics.Recorder, name string) Upstream {
	return &instrumentedUpstream{
		inner:   inner,
		logger:  logger,
		metrics: recorder,
		name:    name,
		now:     time.Now,
	}
}

func (u *instrumentedUpstream) Fetch(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	start := u.now()
	body, err := u.inner.Fetch(ctx, path, query)
	elapsed := u.now().Sub(start)

	u.metrics.RecordUpstreamAttempt(path, elapsed, err)
	if err == nil {
		return body, nil
	}

	args := []any{
		logging.FieldEndpoint, path,
		logging.FieldDurationMS, elapsed.Milliseconds(),
		logging.FieldError, err,
	}
	if upErr, ok := AsUpstreamError(err); ok {
		args = append(args, logging.FieldStatusCode, upErr.StatusCode)
		if upErr.RateLimited() {
			u.metrics.RecordRateLimit(path, upErr.RetryAfter)
			logWithUpstream(ctx, u.loggerFor(ctx), slog.LevelWarn, u.name, "upstream rate limited", append(args, "retry_after", upErr.RetryAfter.String())...)
			return nil, err
		}
	}
	logWithUpstream(ctx, u.loggerFor(ctx), slog.LevelWarn, u.name, "upstream fetch failed", args...)
	return nil, err
}

func (u *instrumentedUpstream) loggerFor(ctx context.Context) *slog.Logger {
	return logging.FromContext(ctx, u.logger)
}
