package http

import (
	"log/slog"

	"github.com/google/uuid"
)

type Middleware func(next Handler) Handler

func RecoverMiddleware(logger *slog.Logger) Middleware {
	return func(next Handler) Handler {
		return func(ctx *RequestCtx) {
			defer func() {
				if recovered := recover(); recovered != nil {
					logger.Error("handler panic", "panic", recovered)

					ctx.Response.Reset()
					ctx.Response.WithStatus(StatusInternalServerError).WithText("something went wrong")
				}
			}()

			next(ctx)
		}
	}
}

// RequestIDMiddleware tags every response with a fresh x-request-id so a
// client report can be matched to server logs.
func RequestIDMiddleware() Middleware {
	return func(next Handler) Handler {
		return func(ctx *RequestCtx) {
			ctx.Response.SetHeader([]byte("x-request-id"), []byte(uuid.NewString()))

			next(ctx)
		}
	}
}

func LoggingMiddleware(logger *slog.Logger) Middleware {
	return func(next Handler) Handler {
		return func(ctx *RequestCtx) {
			next(ctx)

			logger.Info("request handled",
				"method", string(ctx.Request.Method),
				"path", string(ctx.Request.Path),
				"status", int(ctx.Response.Status))
		}
	}
}
