package middleware

import (
	"errors"
	"time"

	"akbstore/internal/metrics"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RequestLogger is a Fiber middleware that logs every request and records
// it in m. Either argument may be nil.
func RequestLogger(logger *zap.Logger, m *metrics.Metrics) fiber.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		elapsed := time.Since(start)

		status := c.Response().StatusCode()
		if err != nil {
			// The app error handler has not written the response yet.
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}

		route := c.Route().Path
		m.ObserveRequest(c.Method(), route, status, elapsed)

		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("route", route),
			zap.Int("status", status),
			zap.Duration("duration", elapsed),
		}
		switch {
		case status >= fiber.StatusInternalServerError:
			logger.Error("request.complete", fields...)
		case status >= fiber.StatusBadRequest:
			logger.Warn("request.complete", fields...)
		default:
			logger.Info("request.complete", fields...)
		}
		return err
	}
}
