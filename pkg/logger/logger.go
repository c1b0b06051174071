package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const envDev = "dev"

var log = zap.NewNop()

// SetupLogger builds the process-wide logger. Dev gets the console encoder,
// everything else structured JSON.
func SetupLogger(env string, level string) *zap.Logger {
	var cfg zap.Config
	if env == envDev {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	if lvl, err := zapcore.ParseLevel(level); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	log = zap.Must(cfg.Build())

	return log
}

func Logger() *zap.Logger {
	return log
}

func Debug(msg string, fields ...zap.Field) {
	log.Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	log.Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	log.Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	log.Error(msg, fields...)
}
