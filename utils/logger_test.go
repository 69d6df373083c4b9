package utils

import (
	"testing"

	"fotoagenda/config"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestLoggerConfigHonorsLogLevel(t *testing.T) {
	saved := config.AppConfig
	t.Cleanup(func() { config.AppConfig = saved })

	cases := []struct {
		env, level string
		want       zapcore.Level
	}{
		{"development", "", zapcore.DebugLevel},
		{"development", "warn", zapcore.WarnLevel},
		{"production", "", zapcore.InfoLevel},
		{"production", "debug", zapcore.DebugLevel},
		{"development", "loud", zapcore.DebugLevel},
	}
	for _, tc := range cases {
		config.AppConfig.Env = tc.env
		config.AppConfig.LogLevel = tc.level
		assert.Equal(t, tc.want, loggerConfig().Level.Level(), tc.env+"/"+tc.level)
	}
}
