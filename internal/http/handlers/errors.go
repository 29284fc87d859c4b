package handlers

import (
	"errors"
	"net/http"

	appfixtures "github.com/preston-bernstein/api-football-proxy/internal/app/fixtures"
	domainfixtures "github.com/preston-bernstein/api-football-proxy/internal/domain/fixtures"
	"github.com/preston-bernstein/api-football-proxy/internal/logging"
)

const (
	msgMethodNotAllowed   = "method not allowed"
	msgNotFound           = "not found"
	msgMissingCredential  = "API_FOOTBALL_KEY is not configured"
	msgUpstreamFailed     = "upstream request failed"
	msgUpstreamCompactErr = "upstream request failed (compact)"
)

// writeServiceError maps a use-case error onto a status. Upstream detail is logged, never returned.
func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error, upstreamMsg string) {
	var vErr *domainfixtures.ValidationError
	switch {
	case errors.As(err, &vErr):
		writeError(w, r, http.StatusBadRequest, vErr.Error(), h.logger)
	case errors.Is(err, appfixtures.ErrMissingCredential):
		writeError(w, r, http.StatusServiceUnavailable, msgMissingCredential, h.logger)
	default:
		logging.Error(loggerFromContext(r, h.logger), "upstream request failed", err)
		writeError(w, r, http.StatusBadGateway, upstreamMsg, h.logger)
	}
}
