package httpserver

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/pexiblock-checkout/pkg/failure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("success: defaults", func(t *testing.T) {
		s := New()

		require.NotNil(t, s.App)
		assert.Equal(t, _defaultAddr, s.Address())
		assert.Equal(t, _defaultReadTimeout, s.readTimeout)
		assert.Equal(t, _defaultWriteTimeout, s.writeTimeout)
	})

	t.Run("success: options", func(t *testing.T) {
		s := New(
			Port("8081"),
			ReadTimeout(time.Second),
			WriteTimeout(2*time.Second),
			ShutdownTimeout(time.Millisecond),
		)

		assert.Equal(t, ":8081", s.Address())
		assert.Equal(t, time.Second, s.readTimeout)
		assert.Equal(t, 2*time.Second, s.writeTimeout)
		assert.Equal(t, time.Millisecond, s.shutdownTimeout)
	})

	t.Run("success: zero timeouts keep defaults", func(t *testing.T) {
		s := New(ReadTimeout(0), WriteTimeout(-time.Second))

		assert.Equal(t, _defaultReadTimeout, s.readTimeout)
		assert.Equal(t, _defaultWriteTimeout, s.writeTimeout)
	})

	t.Run("success: custom app", func(t *testing.T) {
		app := fiber.New()
		s := New(App(app))

		assert.Same(t, app, s.App)
	})
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"fiber error", fiber.NewError(fiber.StatusMethodNotAllowed, "nope"), fiber.StatusMethodNotAllowed, "nope"},
		{"failure", failure.Conflict("busy"), fiber.StatusConflict, "busy"},
		{"plain error", io.ErrUnexpectedEOF, fiber.StatusInternalServerError, io.ErrUnexpectedEOF.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			s.App.Get("/", func(_ *fiber.Ctx) error {
				return tt.err
			})

			resp, err := s.App.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.wantCode, resp.StatusCode)

			var body map[string]string
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tt.wantMsg, body["error"])
		})
	}
}
