package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the global logger. It is a no-op logger until Init is called.
var Log = zap.NewNop()

// Init configures the global logger. env "production" selects JSON output;
// anything else selects the development console encoder. An empty path
// discards all output, which the terminal viewer relies on since it owns the
// screen; "stderr" and "stdout" are accepted as paths.
func Init(env, path string) error {
	if path == "" {
		Log = zap.NewNop()
		return nil
	}

	var config zap.Config
	if env == "production" {
		config = zap.NewProductionConfig()
		config.EncoderConfig.TimeKey = "timestamp"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	config.OutputPaths = []string{path}
	config.ErrorOutputPaths = []string{"stderr"}

	l, err := config.Build()
	if err != nil {
		return err
	}
	Log = l
	return nil
}

// FromEnv initialises the logger from CHARTKIT_ENV and CHARTKIT_LOG.
func FromEnv() error {
	return Init(os.Getenv("CHARTKIT_ENV"), os.Getenv("CHARTKIT_LOG"))
}

func Info(msg string, fields ...zapcore.Field) {
	Log.Info(msg, fields...)
}

func Error(msg string, fields ...zapcore.Field) {
	Log.Error(msg, fields...)
}

func Debug(msg string, fields ...zapcore.Field) {
	Log.Debug(msg, fields...)
}

func Warn(msg string, fields ...zapcore.Field) {
	Log.Warn(msg, fields...)
}

// Sync flushes any buffered log entries
func Sync() error {
	return Log.Sync()
}
