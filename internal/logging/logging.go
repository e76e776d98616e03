// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logging builds the zap loggers used by the CLI and the data
// source. Diagnostics go to stderr so query results on stdout stay clean.
package logging

import (
	"fmt"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

// New returns a console logger writing to stderr at the named level
// (debug, info, warn, error). An empty level means warn.
func New(level string) (*zap.SugaredLogger, error) {
	lvl := zapcore.WarnLevel
	if level != "" {
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			return nil, fmt.Errorf("parsing log level %q: %w", level, err)
		}
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")

	l, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return l.Sugar(), nil
}

// Nop returns a logger that discards everything.
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

// Test returns a logger that writes through tb.
func Test(tb testing.TB) *zap.SugaredLogger {
	tb.Helper()
	return zaptest.NewLogger(tb).Sugar()
}

// TestObserved returns a test logger plus the entries it records at lvl
// and above.
func TestObserved(tb testing.TB, lvl zapcore.Level) (*zap.SugaredLogger, *observer.ObservedLogs) {
	tb.Helper()
	core, logs := observer.New(lvl)
	tee := zap.WrapCore(func(c zapcore.Core) zapcore.Core {
		return zapcore.NewTee(c, core)
	})
	return zaptest.NewLogger(tb, zaptest.WrapOptions(tee)).Sugar(), logs
}
