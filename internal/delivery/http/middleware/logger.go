package middleware

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/pexiblock-checkout/pkg/constant"
	"github.com/savioruz/pexiblock-checkout/pkg/logger"
)

// Paths not worth a log line per hit.
var quietPaths = map[string]struct{}{
	"/metrics": {},
}

func buildRequestMessage(ctx *fiber.Ctx, elapsed time.Duration) string {
	var result strings.Builder

	result.WriteString(ctx.IP())
	result.WriteString(" - ")
	result.WriteString(ctx.Method())
	result.WriteString(" ")
	result.WriteString(ctx.OriginalURL())
	result.WriteString(" - ")
	result.WriteString(strconv.Itoa(ctx.Response().StatusCode()))
	result.WriteString(" ")
	result.WriteString(strconv.Itoa(len(ctx.Response().Body())))
	result.WriteString(" - ")
	result.WriteString(strconv.FormatInt(elapsed.Milliseconds(), 10))
	result.WriteString("ms")

	if id, ok := ctx.Locals(constant.LocalsRequestID).(string); ok {
		result.WriteString(" - request_id: ")
		result.WriteString(id)
	}

	return result.String()
}

// Logger writes one line per request, at warn for 4xx and error for 5xx.
func Logger(l logger.Interface) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if _, ok := quietPaths[ctx.Path()]; ok {
			return ctx.Next()
		}

		start := time.Now()

		err := ctx.Next()

		msg := buildRequestMessage(ctx, time.Since(start))

		switch status := ctx.Response().StatusCode(); {
		case status >= fiber.StatusInternalServerError:
			l.Error(msg)
		case status >= fiber.StatusBadRequest:
			l.Warn(msg)
		default:
			l.Info(msg)
		}

		return err
	}
}
