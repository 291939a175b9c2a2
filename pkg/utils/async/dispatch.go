package async

import (
	"context"
	"runtime/debug"

	"github.com/m-mizutani/ctxlog"
)

// Dispatch runs handler on a new goroutine. The handler gets a fresh
// background context carrying the caller's logger, so cancellation of the
// request context does not abort it. Panics are recovered and logged,
// returned errors are logged.
func Dispatch(ctx context.Context, handler func(ctx context.Context) error) {
	newCtx := ctxlog.With(context.Background(), ctxlog.From(ctx))

	go func() {
		defer func() {
			if r := recover(); r != nil {
				ctxlog.From(newCtx).Error("panic in async handler",
					"recover", r,
					"stack", string(debug.Stack()),
				)
			}
		}()

		if err := handler(newCtx); err != nil {
			ctxlog.From(newCtx).Error("error in async handler", "error", err)
		}
	}()
}
