package logger

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	DEBUG int = iota
	INFO
	WARNING
	ERROR
	SILENCE
)

type Logger interface {
	Debugf(msg string, a ...any)
	Infof(msg string, a ...any)
	Warnf(msg string, a ...any)
	Errorf(msg string, a ...any)
}

type defaultLogger struct {
	level int
	sugar *zap.SugaredLogger
}

// NewLogger returns a JSON logger writing to stderr which drops every message
// below level. Stdout is left to command output.
func NewLogger(level int) *defaultLogger {
	if level >= SILENCE {
		return &defaultLogger{level: level, sugar: zap.NewNop().Sugar()}
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.Lock(os.Stderr),
		zapLevel(level),
	)

	l := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1), zap.AddStacktrace(zap.ErrorLevel))
	return &defaultLogger{level: level, sugar: l.Sugar()}
}

// ParseLevel converts a level name from the configs into a level constant.
func ParseLevel(s string) (int, error) {
	switch strings.ToLower(s) {
	case "debug":
		return DEBUG, nil
	case "", "info":
		return INFO, nil
	case "warn", "warning":
		return WARNING, nil
	case "error":
		return ERROR, nil
	case "silence", "silent", "off":
		return SILENCE, nil
	}

	return INFO, fmt.Errorf("invalid log level %q", s)
}

func zapLevel(level int) zapcore.Level {
	switch level {
	case DEBUG:
		return zapcore.DebugLevel
	case INFO:
		return zapcore.InfoLevel
	case WARNING:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}

func (l *defaultLogger) Level() int {
	return l.level
}

func (l *defaultLogger) Debugf(msg string, a ...any) {
	l.sugar.Debugf(msg, a...)
}

func (l *defaultLogger) Infof(msg string, a ...any) {
	l.sugar.Infof(msg, a...)
}

func (l *defaultLogger) Warnf(msg string, a ...any) {
	l.sugar.Warnf(msg, a...)
}

func (l *defaultLogger) Errorf(msg string, a ...any) {
	l.sugar.Errorf(msg, a...)
}

// Sync flushes buffered entries. Call it before the process exits.
func (l *defaultLogger) Sync() error {
	return l.sugar.Sync()
}
