package bootstrap

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/abgdnv/bakery-inventory/pkg/config"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToLevel(t *testing.T) {
	testCases := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, toLevel(tc.input))
		})
	}
}

func TestNewLoggerTo_AddsRequestID(t *testing.T) {
	// given
	var buf bytes.Buffer
	logger := NewLoggerTo(&buf, config.LogConfig{Level: "info"})
	ctx := context.WithValue(context.Background(), middleware.RequestIDKey, "req-42")

	// when
	logger.DebugContext(ctx, "hidden")
	logger.InfoContext(ctx, "stock adjusted", "id", 1)

	// then
	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "stock adjusted", record["msg"])
	assert.Equal(t, "req-42", record["request_id"])
	assert.Equal(t, float64(1), record["id"])
}

func TestNewLoggerTo_TextFormat(t *testing.T) {
	// given
	var buf bytes.Buffer
	logger := NewLoggerTo(&buf, config.LogConfig{Level: "warn", Format: "text"})

	// when
	logger.Info("hidden")
	logger.Warn("circuit breaker state changed", "to", "open")

	// then
	line := buf.String()
	assert.Contains(t, line, "level=WARN")
	assert.Contains(t, line, `msg="circuit breaker state changed"`)
	assert.Contains(t, line, "to=open")
	assert.NotContains(t, line, "hidden")
}

func TestNewDbPool_RejectsMalformedURL(t *testing.T) {
	// when
	_, err := NewDbPool(context.Background(), config.PostgresConfig{URL: "postgres://%zz", Timeout: time.Second})

	// then
	assert.ErrorContains(t, err, "failed to parse database url")
}
