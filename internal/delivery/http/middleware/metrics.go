package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/pexiblock-checkout/pkg/metrics"
)

func Metrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		duration := float64(time.Since(start).Milliseconds())

		path := c.Route().Path
		if path == "" {
			path = c.Path()
		}

		metrics.HTTPRequests.WithLabelValues(c.Method(), path, strconv.Itoa(c.Response().StatusCode())).Inc()
		metrics.HTTPDuration.WithLabelValues(c.Method(), path).Observe(duration)

		return err
	}
}
