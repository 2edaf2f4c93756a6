// Package zlog builds the zap loggers used across hivedrive, with log
// levels selected by name.
package zlog

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// LevelDebug selects debug logging
	LevelDebug = "debug"

	// LevelInfo selects info logging
	LevelInfo = "info"

	// LevelNone disables logging entirely
	LevelNone = "none"
)

// New returns a production zap logger at the named level, or a nop logger
// for LevelNone.
func New(level string) (*zap.Logger, error) {
	if level == "" || level == LevelNone {
		return zap.NewNop(), nil
	}
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}

// MustNew returns a logger at the named level or panics.
func MustNew(level string) *zap.Logger {
	l, err := New(level)
	if err != nil {
		panic(err)
	}
	return l
}
