package logging

import (
	"os"
	"path/filepath"

	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// getZapCores builds the cores for the configured outputs: console output
// on stderr, plus a rotated log file when Config.File is set.
func getZapCores(config Config) []zapcore.Core {
	level := config.TransportLevel()
	cores := []zapcore.Core{
		zapcore.NewCore(GetEncoder(config), zapcore.Lock(os.Stderr), level),
	}

	if config.File != "" {
		cores = append(cores, zapcore.NewCore(GetEncoder(config), fileWriter(config), level))
	}

	return cores
}

// fileWriter returns a rotation-aware WriteSyncer for the configured log file.
func fileWriter(config Config) zapcore.WriteSyncer {
	_ = os.MkdirAll(filepath.Dir(config.File), 0755)

	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   config.File,
		MaxSize:    config.MaxSize,
		MaxBackups: config.MaxBackups,
		MaxAge:     config.MaxAge,
		Compress:   config.Compress,
		LocalTime:  true,
	})
}
