package logging

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "console", cfg.Format)
	assert.Empty(t, cfg.File)
}

func TestConfigTransportLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"DEBUG", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"fatal", zapcore.FatalLevel},
		{"unknown", zapcore.InfoLevel},
		{"", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			cfg := Config{Level: tt.level}
			assert.Equal(t, tt.expected, cfg.TransportLevel())
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.applyDefaults()

	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "console", cfg.Format)
	assert.Equal(t, 7, cfg.MaxAge)
	assert.Equal(t, 10, cfg.MaxSize)
	assert.Equal(t, 3, cfg.MaxBackups)

	// Set fields survive.
	cfg = Config{Level: "debug", MaxSize: 50}
	cfg.applyDefaults()
	assert.Equal(t, "debug", cfg.Level)
	assert.Equal(t, 50, cfg.MaxSize)
}

func TestNewLoggerWithFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "logs", "drsb.log")

	logger := NewLogger(Config{Level: "debug", Format: "json", File: file})
	require.NotNil(t, logger)

	logger.Info("hello")
	logger.Debugf("value %d", 42)
	_ = logger.Sync()

	assert.FileExists(t, file)
}

func TestGlobalLogger(t *testing.T) {
	require.NotNil(t, Global())

	custom := NewLogger(Config{Level: "error"})
	SetGlobal(custom)
	assert.Equal(t, custom, Global())
}

func TestNamedAndWith(t *testing.T) {
	logger := NewLogger(DefaultConfig())

	named := logger.Named("processor")
	require.NotNil(t, named)
	assert.NotEqual(t, logger, named)

	child := logger.WithError(assert.AnError)
	require.NotNil(t, child)
}
