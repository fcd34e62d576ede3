package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/enumkit/pkg/environment"
	"github.com/dmitrymomot/enumkit/pkg/logger"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNew(t *testing.T) {
	t.Run("creates JSON logger", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))
		require.NotNil(t, log)
		log.Info("hello")
		entry := decode(t, buf)
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("text format", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithFormat(logger.FormatText))
		log.Info("hello")
		assert.Contains(t, buf.String(), "level=INFO")
		assert.Contains(t, buf.String(), "msg=hello")
	})

	t.Run("invalid format panics", func(t *testing.T) {
		assert.Panics(t, func() { logger.New(logger.WithFormat("xml")) })
	})

	t.Run("level by name", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithLevelName("warn"))
		log.Info("dropped")
		assert.Empty(t, buf.String())
		log.Warn("kept")
		assert.Equal(t, "kept", decode(t, buf)["msg"])

		assert.Panics(t, func() { logger.New(logger.WithLevelName("loud")) })
	})

	t.Run("includes static attributes", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithAttr(slog.String("file", "status.yaml")))
		log.Info("msg")
		assert.Equal(t, "status.yaml", decode(t, buf)["file"])
	})

	t.Run("extracts from context", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithContextExtractors(environment.LoggerExtractor(), nil),
		)
		ctx := environment.WithContext(context.Background(), environment.Staging)
		log.InfoContext(ctx, "msg")
		assert.Equal(t, "staging", decode(t, buf)["env"])

		buf.Reset()
		log.Info("no context")
		_, ok := decode(t, buf)["env"]
		assert.False(t, ok)
	})

	t.Run("discard", func(t *testing.T) {
		assert.NotPanics(t, func() { logger.Discard().Error("nothing") })
	})
}

func TestWithEnvironment(t *testing.T) {
	t.Run("development", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithEnvironment(environment.Development, "enumctl"),
			logger.WithContextExtractors(environment.LoggerExtractor()),
			logger.WithOutput(buf),
		)
		ctx := environment.WithContext(context.Background(), environment.Development)
		log.DebugContext(ctx, "msg")
		out := buf.String()
		assert.Contains(t, out, "level=DEBUG")
		assert.Contains(t, out, "service=enumctl")
		assert.Contains(t, out, "env=development")
	})

	t.Run("production", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithEnvironment(environment.Production, "enumctl"),
			logger.WithContextExtractors(environment.LoggerExtractor()),
			logger.WithOutput(buf),
		)
		ctx := environment.WithContext(context.Background(), environment.Production)
		log.DebugContext(ctx, "dropped")
		assert.Empty(t, buf.String())
		log.InfoContext(ctx, "msg")
		entry := decode(t, buf)
		assert.Equal(t, "enumctl", entry["service"])
		assert.Equal(t, "production", entry["env"])
	})

	t.Run("env only from context", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithEnvironment(environment.Production, ""),
			logger.WithContextExtractors(environment.LoggerExtractor()),
			logger.WithOutput(buf),
		)
		log.Info("msg")
		_, ok := decode(t, buf)["env"]
		assert.False(t, ok)
	})

	t.Run("unknown falls back to development", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithEnvironment(environment.Environment("qa"), ""),
			logger.WithOutput(buf),
		)
		log.Debug("msg")
		assert.Contains(t, buf.String(), "level=DEBUG")
		assert.Contains(t, buf.String(), "msg=msg")
	})
}
