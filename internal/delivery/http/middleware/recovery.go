package middleware

import (
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/savioruz/pexiblock-checkout/pkg/constant"
	"github.com/savioruz/pexiblock-checkout/pkg/logger"
)

func buildPanicMessage(ctx *fiber.Ctx, err interface{}) string {
	var result strings.Builder

	result.WriteString(ctx.Method())
	result.WriteString(" ")
	result.WriteString(ctx.OriginalURL())

	for _, key := range []string{constant.LocalsRequestID, constant.LocalsSessionID} {
		if v, ok := ctx.Locals(key).(string); ok && v != "" {
			result.WriteString(" - " + key + ": " + v)
		}
	}

	result.WriteString(" - panic: ")
	result.WriteString(fmt.Sprintf("%v\n%s", err, debug.Stack()))

	return result.String()
}

func Recovery(l logger.Interface) fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(ctx *fiber.Ctx, err interface{}) {
			l.Error(buildPanicMessage(ctx, err))
		},
	})
}
