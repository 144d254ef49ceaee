package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/savioruz/pexiblock-checkout/pkg/constant"
)

func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(constant.RequestHeaderID)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set(constant.RequestHeaderID, requestID)
		c.Locals(constant.LocalsRequestID, requestID)

		return c.Next()
	}
}
