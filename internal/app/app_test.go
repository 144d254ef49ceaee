package app

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/pexiblock-checkout/config"
	"github.com/savioruz/pexiblock-checkout/internal/domains/checkout/controller"
	"github.com/savioruz/pexiblock-checkout/pkg/logger/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg, err := config.New()
	require.NoError(t, err)

	return cfg
}

func TestInitializeApp(t *testing.T) {
	cfg := testConfig(t)

	app, err := InitializeApp(cfg)
	require.NoError(t, err)
	require.NotNil(t, app.HTTPServer)
	require.NotNil(t, app.Registry)

	t.Run("success: checkout page", func(t *testing.T) {
		resp, err := app.HTTPServer.App.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), fiber.MIMETextHTML)
		assert.Equal(t, 1, app.Registry.Len())
	})

	t.Run("success: metrics", func(t *testing.T) {
		resp, err := app.HTTPServer.App.Test(httptest.NewRequest(fiber.MethodGet, "/metrics", nil))
		require.NoError(t, err)
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Contains(t, string(body), "checkout_active_sessions")
	})

	t.Run("error: unknown route", func(t *testing.T) {
		resp, err := app.HTTPServer.App.Test(httptest.NewRequest(fiber.MethodGet, "/nowhere", nil))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}

func TestCron(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	l := mock.NewMockInterface(ctrl)
	registry := controller.NewRegistry(nil, nil, l)

	t.Run("success: scheduler started", func(t *testing.T) {
		cfg := testConfig(t)

		c, err := Cron(registry, cfg, l)
		require.NoError(t, err)
		defer c.Stop()

		assert.Len(t, c.Entries(), 1)
	})

	t.Run("error: invalid idle timeout", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.Session.IdleTimeout = "forever"

		c, err := Cron(registry, cfg, l)
		assert.Error(t, err)
		assert.Nil(t, c)
	})

	t.Run("error: non-positive idle timeout", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.Session.IdleTimeout = "0s"

		_, err := Cron(registry, cfg, l)
		assert.Error(t, err)
	})

	t.Run("error: invalid schedule", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.Session.EvictSchedule = "every now and then"

		_, err := Cron(registry, cfg, l)
		assert.Error(t, err)
	})
}
