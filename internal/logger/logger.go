package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the process-wide logger. Call Init before using it.
var Log *zap.Logger

// Init builds the global logger. Calling it again is a no-op.
func Init() {
	if Log != nil {
		return
	}

	config := zap.NewDevelopmentConfig()
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

	var err error
	Log, err = config.Build()
	if err != nil {
		Log = zap.NewNop()
	}
}
