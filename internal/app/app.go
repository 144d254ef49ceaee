package app

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/savioruz/pexiblock-checkout/config"
)

//go:generate go run github.com/google/wire/cmd/wire

func Run(cfg *config.Config) {
	app, err := InitializeApp(cfg)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize application: %v", err))
	}

	if !cfg.Backend.HasCredentials() {
		app.Logger.Warn("app - Run - PEXIBLOCK_API_KEY or PEXIBLOCK_API_SECRET not set, payment attempts will fail")
	}

	scheduler, err := Cron(app.Registry, cfg, app.Logger)
	if err != nil {
		app.Logger.Fatal(err)

		return
	}
	defer scheduler.Stop()

	app.HTTPServer.Start()
	app.Logger.Info("app - Run - listening on %s", app.HTTPServer.Address())

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		app.Logger.Info("app - Run - signal: " + s.String())
	case err = <-app.HTTPServer.Notify():
		app.Logger.Error(fmt.Errorf("app - Run - httpServer.Notify: %w", err))
	}

	err = app.HTTPServer.Shutdown()
	if err != nil {
		app.Logger.Error(fmt.Errorf("app - Run - httpServer.Shutdown: %w", err))
	}
}
