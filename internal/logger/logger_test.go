package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"

	"github.com/pageza/ingrecipe/backend/config"
)

func TestNew(t *testing.T) {
	t.Run("respects level", func(t *testing.T) {
		log := New(Config{Level: "warn", Format: "json"})
		assert.False(t, log.Core().Enabled(zapcore.InfoLevel))
		assert.True(t, log.Core().Enabled(zapcore.WarnLevel))
	})

	t.Run("unknown level falls back to info", func(t *testing.T) {
		log := New(Config{Level: "chatty", Format: "console", Development: true})
		assert.True(t, log.Core().Enabled(zapcore.InfoLevel))
		assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
	})
}

func TestFromConfig(t *testing.T) {
	cfg := &config.Config{Environment: config.Development, LogLevel: "debug", LogFormat: "console"}
	assert.Equal(t, Config{Level: "debug", Format: "console", Development: true}, FromConfig(cfg))
}
