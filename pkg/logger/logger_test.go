package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))

	return line
}

func TestLogger_Levels(t *testing.T) {
	t.Run("success: message is formatted with args", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewWithWriter("debug", &buf)

		l.Info("endpoint %s", "http://localhost:8000/api/payment/create/")

		line := decodeLine(t, &buf)
		assert.Equal(t, "info", line["level"])
		assert.Equal(t, "endpoint http://localhost:8000/api/payment/create/", line["message"])
	})

	t.Run("success: error values are logged by their text", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewWithWriter("debug", &buf)

		l.Error(errors.New("dial tcp: connection refused"))

		line := decodeLine(t, &buf)
		assert.Equal(t, "error", line["level"])
		assert.Equal(t, "dial tcp: connection refused", line["message"])
	})

	t.Run("success: messages below the level are dropped", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewWithWriter("warn", &buf)

		l.Debug("debug")
		l.Info("info")

		assert.Empty(t, buf.String())

		l.Warn("warn")
		line := decodeLine(t, &buf)
		assert.Equal(t, "warn", line["level"])
	})
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel("warn"))
	assert.Equal(t, zerolog.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("verbose"))
}
