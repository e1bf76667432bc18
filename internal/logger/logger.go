// Package logger builds the zap logger used for diagnostics and carries it
// on a context.
//
// Logs go to stderr so they never mix with the report on stdout. The level
// is warn by default and debug in verbose mode.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New creates a console logger writing to sink. A nil sink means stderr.
func New(verbose bool, sink zapcore.WriteSyncer) *zap.Logger {
	if sink == nil {
		sink = zapcore.Lock(os.Stderr)
	}

	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.TimeKey = ""
	encoderCfg.CallerKey = ""

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), sink, level)
	return zap.New(core)
}
