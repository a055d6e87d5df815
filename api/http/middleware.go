package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/careerpathai/backend/pkg/metrics"
)

// RequestMetrics logs every request and records its latency histogram. Route
// patterns, not raw paths, feed the metric labels to keep cardinality down.
func RequestMetrics(log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		chainErr := c.Next()
		if chainErr != nil {
			if err := c.App().Config().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}
		elapsed := time.Since(start)
		status := c.Response().StatusCode()
		route := c.Route().Path

		metrics.RecordHTTPRequest(c.Method(), route, strconv.Itoa(status), elapsed)
		log.Info("http request",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Duration("duration", elapsed),
		)
		return nil
	}
}
