package app

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/savioruz/pexiblock-checkout/config"
	"github.com/savioruz/pexiblock-checkout/internal/domains/checkout/controller"
	"github.com/savioruz/pexiblock-checkout/pkg/logger"
)

// Cron schedules idle checkout session eviction. The returned scheduler is
// already started.
func Cron(r *controller.Registry, cfg *config.Config, l logger.Interface) (*cron.Cron, error) {
	maxIdle, err := time.ParseDuration(cfg.Session.IdleTimeout)
	if err != nil {
		return nil, fmt.Errorf("app - Cron - time.ParseDuration: %w", err)
	}

	if maxIdle <= 0 {
		return nil, fmt.Errorf("app - Cron - idle timeout must be positive, got %s", maxIdle)
	}

	c := cron.New(cron.WithSeconds())

	_, err = c.AddFunc(cfg.Session.EvictSchedule, func() {
		if n := r.EvictIdle(maxIdle); n > 0 {
			l.Info("Cron job - EvictIdle removed %d sessions", n)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("app - Cron - AddFunc: %w", err)
	}

	c.Start()

	return c, nil
}
