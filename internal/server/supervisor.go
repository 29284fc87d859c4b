package server

import (
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/preston-bernstein/api-football-proxy/internal/logging"
)

// supervise runs fn on its own goroutine. A panic is logged as a process
// error and swallowed so the rest of the process keeps running. The returned
// channel closes once fn has returned or panicked.
func supervise(logger *slog.Logger, name string, fn func()) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer func() {
			if rec := recover(); rec != nil {
				logging.Error(logger, "process error", fmt.Errorf("panic in %s: %v", name, rec),
					"goroutine", name,
					"stack", string(debug.Stack()),
				)
			}
		}()
		fn()
	}()
	return done
}
