package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("success: defaults", func(t *testing.T) {
		t.Setenv("PEXIBLOCK_API_KEY", "")
		t.Setenv("PEXIBLOCK_API_SECRET", "")

		cfg, err := New()
		require.NoError(t, err)

		assert.Equal(t, "http://localhost:8000", cfg.Backend.BaseURL)
		assert.Equal(t, "3000", cfg.HTTP.Port)
		assert.Equal(t, 10*time.Second, cfg.HTTP.ReadTimeout)
		assert.Equal(t, 30*time.Second, cfg.HTTP.WriteTimeout)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "checkout_session", cfg.Session.CookieName)
		assert.False(t, cfg.Backend.HasCredentials())
	})

	t.Run("success: overrides from environment", func(t *testing.T) {
		t.Setenv("PEXIBLOCK_BACKEND_URL", "https://merchant.example.com")
		t.Setenv("PEXIBLOCK_API_KEY", "key")
		t.Setenv("PEXIBLOCK_API_SECRET", "secret")
		t.Setenv("HTTP_PORT", "8080")

		cfg, err := New()
		require.NoError(t, err)

		assert.Equal(t, "https://merchant.example.com", cfg.Backend.BaseURL)
		assert.Equal(t, "8080", cfg.HTTP.Port)
		assert.True(t, cfg.Backend.HasCredentials())
	})

	t.Run("error: invalid duration", func(t *testing.T) {
		t.Setenv("HTTP_READ_TIMEOUT", "soon")

		_, err := New()
		assert.Error(t, err)
	})

	t.Run("error: invalid bool", func(t *testing.T) {
		t.Setenv("SWAGGER_ENABLED", "maybe")

		_, err := New()
		assert.Error(t, err)
	})
}

func TestBackend_HasCredentials(t *testing.T) {
	tests := []struct {
		name    string
		backend Backend
		want    bool
	}{
		{"both set", Backend{APIKey: "k", APISecret: "s"}, true},
		{"missing key", Backend{APISecret: "s"}, false},
		{"missing secret", Backend{APIKey: "k"}, false},
		{"neither", Backend{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.backend.HasCredentials())
		})
	}
}
