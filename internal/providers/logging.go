package providers

import (
	"context"
	"log/slog"

	"github.com/preston-bernstein/api-football-proxy/internal/logging"
)

// logWithUpstream emits a log entry if logger is non-nil and always includes the upstream name.
func logWithUpstream(ctx context.Context, logger *slog.Logger, level slog.Level, upstream string, msg string, args ...any) {
	if logger == nil {
		return
	}
	args = append(args, slog.String(logging.FieldUpstream, upstream))
	logger.Log(ctx, level, msg, args...)
}
