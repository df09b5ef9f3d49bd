package logging_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"coffee-insights/internal/config"
	"coffee-insights/internal/logging"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.LoggingConfig
		enabled zapcore.Level
		muted   zapcore.Level
	}{
		{
			name:    "production info",
			cfg:     config.LoggingConfig{Level: "info"},
			enabled: zapcore.InfoLevel,
			muted:   zapcore.DebugLevel,
		},
		{
			name:    "development warn",
			cfg:     config.LoggingConfig{Level: "warn", Development: true},
			enabled: zapcore.ErrorLevel,
			muted:   zapcore.InfoLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := logging.New(tt.cfg)
			require.NoError(t, err)
			assert.True(t, logger.Core().Enabled(tt.enabled))
			assert.False(t, logger.Core().Enabled(tt.muted))
		})
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := logging.New(config.LoggingConfig{Level: "loud"})
	assert.Error(t, err)
}
