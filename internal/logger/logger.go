// Package logger carries a request-scoped zap logger and request id through context.
package logger

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/alnoi/pr-workload-dashboard/internal/domain"
)

type (
	loggerKey    struct{}
	requestIDKey struct{}
)

func New() *zap.Logger {
	logger, _ := zap.NewDevelopment(zap.AddStacktrace(zap.ErrorLevel))
	return logger
}

func WithContext(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

func FromContext(ctx context.Context) *zap.Logger {
	if lg, ok := ctx.Value(loggerKey{}).(*zap.Logger); ok {
		return lg
	}

	return zap.L()
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromContext returns the id set by Middleware, or "" outside a request.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// LogDomainAware picks the level from the error: caller mistakes and busy rejections
// are info, upstream failures warn, anything untyped is an error.
func LogDomainAware(ctx context.Context, err error, msg string, fields ...zap.Field) {
	log := FromContext(ctx)

	var derr *domain.DomainError
	if !errors.As(err, &derr) {
		log.Error(msg, append(fields, zap.Error(err))...)
		return
	}

	level := zapcore.WarnLevel
	switch derr.Code {
	case domain.ErrorCodeBusy, domain.ErrorCodeInvalidInput:
		level = zapcore.InfoLevel
	}

	log.Log(level, msg,
		append(fields,
			zap.String("code", string(derr.Code)),
			zap.Error(err),
		)...,
	)
}

// Middleware tags every request with an id (the caller's X-Request-ID when present)
// and injects a logger carrying it.
func Middleware(base *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			reqID := c.Request().Header.Get(echo.HeaderXRequestID)
			if reqID == "" {
				reqID = uuid.NewString()
			}
			c.Response().Header().Set(echo.HeaderXRequestID, reqID)

			reqLogger := base.With(
				zap.String("request_id", reqID),
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
			)

			ctx := WithRequestID(c.Request().Context(), reqID)
			ctx = WithContext(ctx, reqLogger)
			c.SetRequest(c.Request().WithContext(ctx))

			err := next(c)

			status := c.Response().Status
			var he *echo.HTTPError
			if errors.As(err, &he) {
				status = he.Code
			}

			fields := []zap.Field{
				zap.Int("status", status),
				zap.Duration("latency", time.Since(start)),
			}
			if err != nil {
				fields = append(fields, zap.Error(err))
			}

			switch {
			case status >= http.StatusInternalServerError || (err != nil && he == nil):
				reqLogger.Error("request finished", fields...)
			case status >= http.StatusBadRequest:
				reqLogger.Warn("request finished", fields...)
			default:
				reqLogger.Info("request finished", fields...)
			}

			return err
		}
	}
}
