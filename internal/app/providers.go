package app

import (
	"github.com/go-playground/validator/v10"
	"github.com/savioruz/pexiblock-checkout/config"
	"github.com/savioruz/pexiblock-checkout/internal/delivery/http"
	checkoutController "github.com/savioruz/pexiblock-checkout/internal/domains/checkout/controller"
	"github.com/savioruz/pexiblock-checkout/pkg/httpserver"
	"github.com/savioruz/pexiblock-checkout/pkg/logger"
	"github.com/savioruz/pexiblock-checkout/pkg/pexiblock"
	"github.com/savioruz/pexiblock-checkout/pkg/validation"
)

// Application represents the dependency-injected app
type Application struct {
	HTTPServer *httpserver.Server
	Logger     logger.Interface
	Registry   *checkoutController.Registry
}

func provideLogger(cfg *config.Config) logger.Interface {
	return logger.New(cfg.Log.Level, cfg.Log.File)
}

func provideValidator() *validator.Validate {
	return validation.New()
}

func providePexiblock(cfg *config.Config) pexiblock.Client {
	return pexiblock.New(cfg.App.Name)
}

func provideHTTPServer(cfg *config.Config, l logger.Interface, h http.Handlers) *httpserver.Server {
	srv := httpserver.New(
		httpserver.Port(cfg.HTTP.Port),
		httpserver.ReadTimeout(cfg.HTTP.ReadTimeout),
		httpserver.WriteTimeout(cfg.HTTP.WriteTimeout),
	)

	http.NewRouter(srv.App, cfg, l, h)

	return srv
}
