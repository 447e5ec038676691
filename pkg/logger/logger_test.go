package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/limaJavier/cycle-timetabling/pkg/config"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Config
		enabled zapcore.Level
		skipped zapcore.Level
	}{
		{"development default", config.Config{Env: config.EnvDevelopment}, zapcore.DebugLevel, zapcore.DebugLevel - 1},
		{"production info", config.Config{Env: config.EnvProduction, Log: config.LogConfig{Level: "info"}}, zapcore.InfoLevel, zapcore.DebugLevel},
		{"explicit warn", config.Config{Log: config.LogConfig{Level: "warn", Format: "console"}}, zapcore.WarnLevel, zapcore.InfoLevel},
		{"invalid level", config.Config{Log: config.LogConfig{Level: "loud"}}, zapcore.InfoLevel, zapcore.DebugLevel},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			logger, err := New(&test.cfg)

			require.NoError(t, err)
			assert.True(t, logger.Core().Enabled(test.enabled))
			assert.False(t, logger.Core().Enabled(test.skipped))
		})
	}
}
