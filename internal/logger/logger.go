package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var sharedLogger *zap.SugaredLogger

// Init builds the shared console logger. An empty or unknown level means info.
func Init(level string) {
	if sharedLogger != nil {
		return
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "T",
		LevelKey:       "L",
		MessageKey:     "M",
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05.0000"),
		EncodeDuration: zapcore.StringDurationEncoder,
	}

	lvl := zapcore.InfoLevel
	if level != "" {
		if parsed, err := zapcore.ParseLevel(level); err == nil {
			lvl = parsed
		}
	}

	// stderr keeps stdout free for the summary
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(os.Stderr),
		lvl,
	)

	sharedLogger = zap.New(core).Sugar()
}

// Get returns the shared logger, initializing it at info level if needed
func Get() *zap.SugaredLogger {
	if sharedLogger == nil {
		Init(os.Getenv("LOG_LEVEL"))
	}
	return sharedLogger
}

// Sync flushes buffered log entries
func Sync() {
	if sharedLogger != nil {
		_ = sharedLogger.Sync()
	}
}
