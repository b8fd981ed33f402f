// Package log is the structured logger of the planar commands, backed by zap.
package log

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Level uint8

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

type Field = zap.Field

var (
	String   = zap.String
	Int      = zap.Int
	Uint64   = zap.Uint64
	Float64  = zap.Float64
	Duration = zap.Duration
	Stringer = zap.Stringer
	Error    = zap.Error
)

// ParseLevel parses one of debug, info, warn or error.
func ParseLevel(value string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", value)
	}
}

func (l Level) String() string {
	return toZapLevel(l).String()
}

type Logger struct {
	zapLogger *zap.Logger
	level     zap.AtomicLevel
}

// New builds a logger writing console encoded records to stderr.
func New(level Level) *Logger {
	atomicLevel := zap.NewAtomicLevelAt(toZapLevel(level))

	config := zap.Config{
		Level:            atomicLevel,
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}

	zapLogger, err := config.Build()
	if err != nil {
		panic(err)
	}

	return &Logger{zapLogger: zapLogger, level: atomicLevel}
}

// NewWithCore wraps an existing zap core, the level is applied on top of it.
func NewWithCore(core zapcore.Core, level Level) *Logger {
	atomicLevel := zap.NewAtomicLevelAt(toZapLevel(level))

	filtered, err := zapcore.NewIncreaseLevelCore(core, atomicLevel)
	if err != nil {
		// the core is more restrictive than the level, use it unchanged
		filtered = core
	}

	return &Logger{zapLogger: zap.New(filtered), level: atomicLevel}
}

func (l *Logger) Debug(msg string, fields ...Field) {
	l.zapLogger.Debug(msg, fields...)
}

func (l *Logger) Info(msg string, fields ...Field) {
	l.zapLogger.Info(msg, fields...)
}

func (l *Logger) Warn(msg string, fields ...Field) {
	l.zapLogger.Warn(msg, fields...)
}

func (l *Logger) Error(msg string, fields ...Field) {
	l.zapLogger.Error(msg, fields...)
}

func (l *Logger) With(fields ...Field) *Logger {
	return &Logger{
		zapLogger: l.zapLogger.With(fields...),
		level:     l.level,
	}
}

func (l *Logger) Enabled(level Level) bool {
	return l.level.Enabled(toZapLevel(level))
}

func (l *Logger) SetLevel(level Level) {
	l.level.SetLevel(toZapLevel(level))
}

// Sync flushes buffered records.
func (l *Logger) Sync() error {
	return l.zapLogger.Sync()
}

func toZapLevel(level Level) zapcore.Level {
	switch level {
	case LevelDebug:
		return zap.DebugLevel
	case LevelInfo:
		return zap.InfoLevel
	case LevelWarn:
		return zap.WarnLevel
	case LevelError:
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}
