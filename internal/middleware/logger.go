package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/Lixing-Zhang/table-orders/internal/handlers"
)

// Middleware wraps a command handler
type Middleware func(next handlers.HandlerFunc) handlers.HandlerFunc

// Logger middleware logs every handled command
func Logger(logger *slog.Logger) Middleware {
	return func(next handlers.HandlerFunc) handlers.HandlerFunc {
		return func(ctx context.Context, line string) (handlers.Result, error) {
			start := time.Now()

			// Process command
			result, err := next(ctx, line)

			if err != nil {
				logger.Info("command rejected",
					"line", line,
					"duration", time.Since(start),
					"error", err,
				)
				return result, err
			}

			// Blank lines are not worth a record
			if result.Action == handlers.ActionNone {
				return result, nil
			}

			logger.Debug("command handled",
				"action", result.Action.String(),
				"line", line,
				"duration", time.Since(start),
				"halt", result.Halt,
			)
			return result, nil
		}
	}
}

// Chain applies middlewares so the first one listed runs outermost
func Chain(h handlers.HandlerFunc, mws ...Middleware) handlers.HandlerFunc {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}
