package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	jsoniter "github.com/json-iterator/go"

	"github.com/preston-bernstein/api-football-proxy/internal/logging"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// Recover turns a handler panic into a logged 500 so other requests are unaffected.
// http.ErrAbortHandler is re-panicked to keep net/http's abort semantics.
func Recover(baseLogger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logging.Error(logging.FromContext(r.Context(), baseLogger), "handler panic",
				fmt.Errorf("panic: %v", rec),
				"stack", string(debug.Stack()),
			)

			body := map[string]string{"error": "internal server error"}
			if reqID := RequestIDFromContext(r.Context()); reqID != "" {
				body["requestId"] = reqID
			}
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_ = jsonAPI.NewEncoder(w).Encode(body)
		}()
		next.ServeHTTP(w, r)
	})
}
