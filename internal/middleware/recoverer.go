package middleware

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/Lixing-Zhang/table-orders/internal/handlers"
)

var ErrCommandPanicked = errors.New("command failed unexpectedly")

// Recoverer turns a panic inside a command into an error so the
// session keeps accepting input
func Recoverer(logger *slog.Logger) Middleware {
	return func(next handlers.HandlerFunc) handlers.HandlerFunc {
		return func(ctx context.Context, line string) (result handlers.Result, err error) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("command panicked",
						"line", line,
						"panic", rec,
						"stack", string(debug.Stack()),
					)
					result = handlers.Result{}
					err = fmt.Errorf("%w: %v", ErrCommandPanicked, rec)
				}
			}()

			return next(ctx, line)
		}
	}
}
