package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestBuildConfig(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		level       string
		wantLevel   zapcore.Level
		wantJSON    bool
		wantSampled bool
	}{
		{name: "development console", environment: "development", level: "debug", wantLevel: zapcore.DebugLevel},
		{name: "production json", environment: "production", level: "warn", wantLevel: zapcore.WarnLevel, wantJSON: true, wantSampled: true},
		{name: "unknown level falls back to info", environment: "production", level: "loud", wantLevel: zapcore.InfoLevel, wantJSON: true, wantSampled: true},
		{name: "unknown environment is production", environment: "staging", level: "", wantLevel: zapcore.InfoLevel, wantJSON: true, wantSampled: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := buildConfig(tt.environment, tt.level)

			assert.Equal(t, tt.wantLevel, cfg.Level.Level())
			assert.Equal(t, tt.wantJSON, cfg.Encoding == "json")
			assert.Equal(t, tt.wantSampled, cfg.Sampling != nil)
			assert.Equal(t, ServiceName, cfg.InitialFields["service"])
			assert.Equal(t, tt.environment, cfg.InitialFields["environment"])
		})
	}
}

func TestNewLogger_LevelIsApplied(t *testing.T) {
	logger, err := NewLogger("production", "warn")
	require.NoError(t, err)
	defer logger.Sync()

	core := logger.Zap().Core()
	assert.False(t, core.Enabled(zapcore.InfoLevel))
	assert.True(t, core.Enabled(zapcore.WarnLevel))
}

func TestNewObserved_RecordsEntriesWithFields(t *testing.T) {
	logger, logs := NewObserved(zapcore.InfoLevel)

	logger.Debug("dropped")
	logger.With(zap.String("request_id", "123")).Warn("kept", zap.Int("entry_id", 5))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "kept", entry.Message)
	assert.Equal(t, zapcore.WarnLevel, entry.Level)
	assert.Equal(t, map[string]interface{}{"request_id": "123", "entry_id": int64(5)}, entry.ContextMap())
}

func TestZap_SharesCoreWithWrapper(t *testing.T) {
	logger, logs := NewObserved(zapcore.InfoLevel)

	logger.Zap().Info("direct")

	assert.Equal(t, 1, logs.FilterMessage("direct").Len())
}

func TestNoOpLogger(t *testing.T) {
	logger := NewNoOpLogger()

	logger.Debug("ignored")
	logger.Info("ignored")
	logger.Warn("ignored")
	logger.Error("ignored")

	assert.Same(t, logger, logger.With(zap.String("key", "value")))
	assert.NotNil(t, logger.Zap())
	assert.NoError(t, logger.Sync())
}
