//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/savioruz/pexiblock-checkout/config"
	"github.com/savioruz/pexiblock-checkout/internal/delivery/http"

	checkoutController "github.com/savioruz/pexiblock-checkout/internal/domains/checkout/controller"
	checkoutHandler "github.com/savioruz/pexiblock-checkout/internal/domains/checkout/handler"

	paymentHandler "github.com/savioruz/pexiblock-checkout/internal/domains/payments/handler"
	paymentService "github.com/savioruz/pexiblock-checkout/internal/domains/payments/service"
)

var paymentDomain = wire.NewSet(
	paymentService.New,
	paymentHandler.New,
)

var checkoutDomain = wire.NewSet(
	checkoutController.NewRegistry,
	checkoutHandler.New,
)

var domains = wire.NewSet(
	paymentDomain,
	checkoutDomain,
)

func InitializeApp(cfg *config.Config) (*Application, error) {
	wire.Build(
		// Infrastructure providers
		provideLogger,
		provideValidator,
		providePexiblock,

		domains,

		wire.Struct(new(http.Handlers), "*"),

		// HTTP server
		provideHTTPServer,

		// Application
		wire.Struct(new(Application), "*"),
	)

	return &Application{}, nil
}
