package handlers

import (
	"log/slog"
	nethttp "net/http"
	"time"

	appfixtures "github.com/preston-bernstein/api-football-proxy/internal/app/fixtures"
	domainfixtures "github.com/preston-bernstein/api-football-proxy/internal/domain/fixtures"
	"github.com/preston-bernstein/api-football-proxy/internal/logging"
)

// ServiceName is reported by the health route.
const ServiceName = "api-football-proxy"

type nowFunc func() time.Time

// HealthResponse is the payload returned by GET /.
type HealthResponse struct {
	Status  string  `json:"status"`
	Service string  `json:"service"`
	Uptime  float64 `json:"uptime"`
}

// Handler wires HTTP routes to the fixtures service.
type Handler struct {
	svc       *appfixtures.Service
	logger    *slog.Logger
	now       nowFunc
	startedAt time.Time
}

// NewHandler constructs a Handler; uptime is measured from this call.
func NewHandler(svc *appfixtures.Service, logger *slog.Logger) *Handler {
	return &Handler{
		svc:       svc,
		logger:    logger,
		now:       time.Now,
		startedAt: time.Now(),
	}
}

// Register installs every route on mux. Method checks stay in the handlers
// so each route answers 405 as JSON.
func (h *Handler) Register(mux *nethttp.ServeMux) {
	mux.HandleFunc("/{$}", h.Health)
	mux.HandleFunc("/fixtures", h.Fixtures)
	mux.HandleFunc("/fixtures/compact", h.CompactFixtures)
	mux.HandleFunc("/standings", h.Standings)
	mux.HandleFunc("/", h.NotFound)
}

// Health reports liveness and process uptime. It never calls upstream and
// always answers 200 to a GET.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !h.allowGet(w, r) {
		return
	}
	uptime := h.now().Sub(h.startedAt).Seconds()
	if uptime < 0 {
		uptime = 0
	}
	writeJSON(w, nethttp.StatusOK, HealthResponse{
		Status:  "ok",
		Service: ServiceName,
		Uptime:  uptime,
	}, h.logger)
}

// Fixtures proxies /fixtures and returns the upstream payload unchanged.
func (h *Handler) Fixtures(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !h.allowGet(w, r) {
		return
	}
	body, err := h.svc.Fixtures(r.Context(), domainfixtures.FilterFromQuery(r.URL.Query()))
	if err != nil {
		h.writeServiceError(w, r, err, msgUpstreamFailed)
		return
	}
	logging.Info(loggerFromContext(r, h.logger), "served fixtures", "bytes", len(body))
	writeRaw(w, nethttp.StatusOK, body, h.logger)
}

// CompactFixtures proxies /fixtures and returns the compact projection.
func (h *Handler) CompactFixtures(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !h.allowGet(w, r) {
		return
	}
	resp, err := h.svc.CompactFixtures(r.Context(), domainfixtures.FilterFromQuery(r.URL.Query()))
	if err != nil {
		h.writeServiceError(w, r, err, msgUpstreamCompactErr)
		return
	}
	logging.Info(loggerFromContext(r, h.logger), "served compact fixtures", logging.FieldCount, resp.Count)
	writeJSON(w, nethttp.StatusOK, resp, h.logger)
}

// Standings proxies /standings and returns the upstream payload unchanged.
func (h *Handler) Standings(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !h.allowGet(w, r) {
		return
	}
	body, err := h.svc.Standings(r.Context(), domainfixtures.FilterFromQuery(r.URL.Query()))
	if err != nil {
		h.writeServiceError(w, r, err, msgUpstreamFailed)
		return
	}
	logging.Info(loggerFromContext(r, h.logger), "served standings", "bytes", len(body))
	writeRaw(w, nethttp.StatusOK, body, h.logger)
}

// NotFound answers unknown paths with a JSON 404.
func (h *Handler) NotFound(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusNotFound, msgNotFound, h.logger)
}

func (h *Handler) allowGet(w nethttp.ResponseWriter, r *nethttp.Request) bool {
	if r.Method == nethttp.MethodGet {
		return true
	}
	w.Header().Set("Allow", nethttp.MethodGet)
	writeError(w, r, nethttp.StatusMethodNotAllowed, msgMethodNotAllowed, h.logger)
	return false
}
