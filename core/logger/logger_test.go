package logger_test

import (
	"net/http/httptest"
	"testing"

	"levelcode/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     logger.Config
		enabled zapcore.Level
		wantErr bool
	}{
		{"DebugConsole", logger.Config{Level: "debug", Format: "console"}, zapcore.DebugLevel, false},
		{"InfoJSON", logger.Config{Level: "info", Format: "json"}, zapcore.InfoLevel, false},
		{"Warn", logger.Config{Level: "warn"}, zapcore.WarnLevel, false},
		{"Default", logger.Config{}, zapcore.InfoLevel, false},
		{"Invalid", logger.Config{Level: "loud"}, zapcore.InfoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := logger.New(&tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, l.Core().Enabled(tt.enabled))
			assert.False(t, l.Core().Enabled(tt.enabled-1))
		})
	}
}

func TestWithRayID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	base := zap.New(core)

	app := fiber.New()
	app.Get("/with", func(c *fiber.Ctx) error {
		c.Locals(logger.RayIDKey, "abc-123")
		logger.WithRayID(base, c).Info("with")
		return nil
	})
	app.Get("/without", func(c *fiber.Ctx) error {
		logger.WithRayID(base, c).Info("without")
		return nil
	})

	_, err := app.Test(httptest.NewRequest("GET", "/with", nil))
	require.NoError(t, err)
	_, err = app.Test(httptest.NewRequest("GET", "/without", nil))
	require.NoError(t, err)

	with := logs.FilterMessage("with").All()
	require.Len(t, with, 1)
	assert.Equal(t, "abc-123", with[0].ContextMap()[logger.RayIDKey])

	without := logs.FilterMessage("without").All()
	require.Len(t, without, 1)
	assert.NotContains(t, without[0].ContextMap(), logger.RayIDKey)
}
