// Package logging builds the zap loggers used across the server.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ParseLevel maps a config level name to a zap level. Unknown names are info.
func ParseLevel(levelStr string) zapcore.Level {
	switch levelStr {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	}
	return zapcore.InfoLevel
}

// New builds a production (json) or development (console) logger.
// Output always goes to stderr: in stdio mode stdout carries the MCP
// protocol and must stay clean.
func New(levelStr, format string) (*zap.Logger, error) {
	var cfg zap.Config
	if format == "json" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(ParseLevel(levelStr))
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}

// Must is New for callers that cannot continue without a logger. It falls
// back to a no-op logger rather than panicking.
func Must(levelStr, format string) *zap.Logger {
	logger, err := New(levelStr, format)
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
