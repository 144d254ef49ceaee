package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/savioruz/pexiblock-checkout/config"
	_ "github.com/savioruz/pexiblock-checkout/docs" // Swagger docs
	checkoutHandler "github.com/savioruz/pexiblock-checkout/internal/domains/checkout/handler"
	paymentHandler "github.com/savioruz/pexiblock-checkout/internal/domains/payments/handler"

	"github.com/savioruz/pexiblock-checkout/internal/delivery/http/middleware"
	"github.com/savioruz/pexiblock-checkout/pkg/logger"
)

type Handlers struct {
	Checkout *checkoutHandler.Handler
	Payment  *paymentHandler.Handler
}

// NewRouter initializes the HTTP router and registers the routes for the application.
// Swagger spec:
// @title Pexiblock Checkout API
// @BasePath /v1
func NewRouter(
	app *fiber.App,
	cfg *config.Config,
	l logger.Interface,
	handlers Handlers,
) {
	// Options
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(l))
	app.Use(middleware.Recovery(l))
	app.Use(middleware.Metrics())
	app.Use(middleware.CORS(cfg))

	if cfg.Swagger.Enabled {
		app.Get("/swagger/*", swagger.HandlerDefault)
	}

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	handlers.Checkout.RegisterRoutes(app)

	apiV1Group := app.Group("/v1")
	{
		handlers.Checkout.RegisterAPIRoutes(apiV1Group)
		handlers.Payment.RegisterRoutes(apiV1Group)
	}

	app.Use("*", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "route not found",
		})
	})
}
