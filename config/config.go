package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type (
	Config struct {
		App     App
		CORS    CORS
		HTTP    HTTP
		Log     Log
		Swagger Swagger
		Backend Backend
		Session Session
	}

	App struct {
		Name    string `env:"APP_NAME"    envDefault:"pexiblock-checkout"`
		Version string `env:"APP_VERSION" envDefault:"0.1.0"`
	}

	CORS struct {
		AllowCredentials bool   `env:"APP_CORS_ALLOW_CREDENTIALS"`
		AllowedHeaders   string `env:"APP_CORS_ALLOWED_HEADERS"`
		AllowedMethods   string `env:"APP_CORS_ALLOWED_METHODS"`
		AllowedOrigins   string `env:"APP_CORS_ALLOWED_ORIGINS"`
		Enable           bool   `env:"APP_CORS_ENABLE"`
		MaxAgeSeconds    int    `env:"APP_CORS_MAX_AGE_SECONDS"`
	}

	HTTP struct {
		Port         string        `env:"HTTP_PORT"          envDefault:"3000"`
		ReadTimeout  time.Duration `env:"HTTP_READ_TIMEOUT"  envDefault:"10s"`
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"30s"`
	}

	Log struct {
		Level string `env:"LOG_LEVEL" envDefault:"info"`
		File  string `env:"LOG_FILE"`
	}

	Swagger struct {
		Enabled bool `env:"SWAGGER_ENABLED" envDefault:"false"`
	}

	// Backend points at the merchant backend. Key and secret are optional at boot,
	// every payment attempt fails until both are set.
	Backend struct {
		BaseURL   string `env:"PEXIBLOCK_BACKEND_URL" envDefault:"http://localhost:8000"`
		APIKey    string `env:"PEXIBLOCK_API_KEY"`
		APISecret string `env:"PEXIBLOCK_API_SECRET"`
	}

	Session struct {
		CookieName    string `env:"SESSION_COOKIE_NAME"    envDefault:"checkout_session"`
		IdleTimeout   string `env:"SESSION_IDLE_TIMEOUT"   envDefault:"30m"`
		EvictSchedule string `env:"SESSION_EVICT_SCHEDULE" envDefault:"0 */5 * * * *"`
	}
)

// HasCredentials reports whether both API credentials are configured.
func (b Backend) HasCredentials() bool {
	return b.APIKey != "" && b.APISecret != ""
}

func New() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config failed: %w", err)
	}

	return cfg, nil
}
