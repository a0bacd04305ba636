// Package logger_test contains tests for the logger package
package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/phrazzld/bookshelf-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// restoreDefault resets the global slog default after a test replaces it.
func restoreDefault(t *testing.T) {
	t.Helper()
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })
}

func TestSetup(t *testing.T) {
	restoreDefault(t)

	var buf bytes.Buffer
	l, err := logger.Setup(logger.LoggerConfig{Level: "info", Output: &buf})
	require.NoError(t, err)
	require.NotNil(t, l)

	l.Info("book created", slog.Int64("book_id", 42))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "book created", entry["msg"])
	assert.Equal(t, float64(42), entry["book_id"])

	assert.Same(t, l, slog.Default(), "Setup installs the logger as the default")
}

func TestLogLevelParsing(t *testing.T) {
	tests := []struct {
		level       string
		debugLogged bool
		infoLogged  bool
		warnLogged  bool
	}{
		{level: "debug", debugLogged: true, infoLogged: true, warnLogged: true},
		{level: "INFO", debugLogged: false, infoLogged: true, warnLogged: true},
		{level: "warn", debugLogged: false, infoLogged: false, warnLogged: true},
		{level: "error", debugLogged: false, infoLogged: false, warnLogged: false},
		{level: "verbose", debugLogged: false, infoLogged: true, warnLogged: true},
	}

	for _, tc := range tests {
		t.Run(tc.level, func(t *testing.T) {
			restoreDefault(t)

			var buf bytes.Buffer
			l, err := logger.Setup(logger.LoggerConfig{Level: tc.level, Output: &buf})
			require.NoError(t, err)

			l.Debug("debug message")
			l.Info("info message")
			l.Warn("warn message")

			out := buf.String()
			assert.Equal(t, tc.debugLogged, strings.Contains(out, "debug message"))
			assert.Equal(t, tc.infoLogged, strings.Contains(out, "info message"))
			assert.Equal(t, tc.warnLogged, strings.Contains(out, "warn message"))
		})
	}
}

func TestFromContextOrDefault(t *testing.T) {
	defaultLogger := slog.Default()
	customLogger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	tests := []struct {
		name     string
		ctx      context.Context
		expected *slog.Logger
	}{
		{
			name:     "nil_context_returns_default",
			ctx:      nil,
			expected: defaultLogger,
		},
		{
			name:     "context_without_logger_returns_default",
			ctx:      context.Background(),
			expected: defaultLogger,
		},
		{
			name:     "context_with_logger_returns_context_logger",
			ctx:      logger.WithLogger(context.Background(), customLogger),
			expected: customLogger,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			//nolint:staticcheck // nil context is exercised on purpose
			result := logger.FromContextOrDefault(tt.ctx, defaultLogger)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestWithLogger(t *testing.T) {
	t.Run("valid_logger", func(t *testing.T) {
		customLogger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
		ctx := logger.WithLogger(context.Background(), customLogger)

		assert.Equal(t, customLogger, logger.FromContext(ctx))
	})

	t.Run("nil_logger_panics", func(t *testing.T) {
		assert.Panics(t, func() {
			logger.WithLogger(context.Background(), nil)
		})
	})
}
