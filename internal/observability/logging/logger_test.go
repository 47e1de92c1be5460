package logging

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"conduit/internal/handler/http/requestid"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name     string
		logLevel string
	}{
		{name: "default log level (info)", logLevel: ""},
		{name: "debug log level", logLevel: "debug"},
		{name: "invalid log level defaults to info", logLevel: "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.logLevel != "" {
				t.Setenv("LOG_LEVEL", tt.logLevel)
			}

			logger := NewLogger()
			assert.NotNil(t, logger, "logger should not be nil")
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in       string
		expected slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"garbage", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, parseLevel(tt.in), "level for %q", tt.in)
	}
}

func TestWithRequestID(t *testing.T) {
	logger := slog.Default()

	t.Run("without request ID returns same logger", func(t *testing.T) {
		got := WithRequestID(context.Background(), logger)
		assert.Equal(t, logger, got)
	})

	t.Run("with request ID returns derived logger", func(t *testing.T) {
		ctx := requestid.WithRequestID(context.Background(), "req-123")
		got := WithRequestID(ctx, logger)
		assert.NotEqual(t, logger, got)
	})
}
