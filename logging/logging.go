// Package logging provides the leveled logger used throughout motionkit. It is a
// small wrapper around zap's SugaredLogger that adds a mutable level and named
// sub-loggers, mirroring the interface the planner expects without dragging in
// the server-wide log routing (net appenders, pattern-based level configs) that
// the full logger package carries.
package logging

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
)

// Level is a logging severity, ordered least to most severe.
type Level int

// The supported log levels, in increasing order of severity.
const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
)

func (l Level) zapLevel() zapcore.Level {
	switch l {
	case DEBUG:
		return zapcore.DebugLevel
	case WARN:
		return zapcore.WarnLevel
	case ERROR:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Logger is the logging interface consumed by every motionkit component that
// reports progress or diagnostics: the Repairer's fix-up attempts and
// failures, and the cmd-line driver.
type Logger interface {
	Debug(args ...interface{})
	Debugf(template string, args ...interface{})
	Info(args ...interface{})
	Infof(template string, args ...interface{})
	Warn(args ...interface{})
	Warnf(template string, args ...interface{})
	Error(args ...interface{})
	Errorf(template string, args ...interface{})

	SetLevel(level Level)
	Sublogger(name string) Logger
}

type impl struct {
	name  string
	level *zap.AtomicLevel
	sugar *zap.SugaredLogger
}

func newConfig(level zapcore.Level) zap.Config {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.DisableStacktrace = true
	return cfg
}

// NewLogger returns a logger that emits Info-and-above records to stderr.
func NewLogger(name string) Logger {
	return newLoggerAtLevel(name, zapcore.InfoLevel)
}

// NewDebugLogger returns a logger that emits Debug-and-above records to stderr.
func NewDebugLogger(name string) Logger {
	return newLoggerAtLevel(name, zapcore.DebugLevel)
}

// NewTestLogger returns a logger that writes through the testing.T so that output
// is attributed to the right test and suppressed on success.
func NewTestLogger(tb testing.TB) Logger {
	level := zap.NewAtomicLevelAt(zapcore.DebugLevel)
	core := zaptest.NewLogger(tb, zaptest.Level(level)).Core()
	zl := zap.New(core)
	return &impl{name: tb.Name(), level: &level, sugar: zl.Sugar()}
}

func newLoggerAtLevel(name string, level zapcore.Level) Logger {
	cfg := newConfig(level)
	zl, err := cfg.Build()
	if err != nil {
		// Misconfigured encoder config is a programmer error; surface it loudly
		// rather than silently logging nowhere.
		panic(err)
	}
	return &impl{name: name, level: &cfg.Level, sugar: zl.Sugar().Named(name)}
}

func (l *impl) SetLevel(level Level) {
	l.level.SetLevel(level.zapLevel())
}

func (l *impl) Sublogger(name string) Logger {
	sub := name
	if l.name != "" {
		sub = l.name + "." + name
	}
	return &impl{name: sub, level: l.level, sugar: l.sugar.Named(name)}
}

func (l *impl) Debug(args ...interface{})                   { l.sugar.Debug(args...) }
func (l *impl) Debugf(template string, args ...interface{}) { l.sugar.Debugf(template, args...) }
func (l *impl) Info(args ...interface{})                    { l.sugar.Info(args...) }
func (l *impl) Infof(template string, args ...interface{})  { l.sugar.Infof(template, args...) }
func (l *impl) Warn(args ...interface{})                    { l.sugar.Warn(args...) }
func (l *impl) Warnf(template string, args ...interface{})  { l.sugar.Warnf(template, args...) }
func (l *impl) Error(args ...interface{})                   { l.sugar.Error(args...) }
func (l *impl) Errorf(template string, args ...interface{}) { l.sugar.Errorf(template, args...) }
