package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/savioruz/pexiblock-checkout/config"
	"github.com/savioruz/pexiblock-checkout/pkg/constant"
)

// CORS is a pass-through unless enabled. Credentials are never allowed
// together with a wildcard origin.
func CORS(cfg *config.Config) fiber.Handler {
	if !cfg.CORS.Enable {
		return func(c *fiber.Ctx) error {
			return c.Next()
		}
	}

	origins := cfg.CORS.AllowedOrigins
	if origins == "" {
		origins = "*"
	}

	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     cfg.CORS.AllowedMethods,
		AllowHeaders:     cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials && origins != "*",
		ExposeHeaders:    constant.RequestHeaderID,
		MaxAge:           cfg.CORS.MaxAgeSeconds,
	})
}
