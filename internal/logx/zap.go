package logx

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapAdapter adapts a *zap.Logger to the logx.Logger interface.
type ZapAdapter struct {
	l *zap.Logger
}

// NewZapAdapter returns a Logger implementation backed by the provided *zap.Logger.
func NewZapAdapter(l *zap.Logger) Logger {
	if l == nil {
		l = zap.NewNop()
	}
	return &ZapAdapter{l: l}
}

// NewZapProduction builds a JSON zap logger writing to stdout at the given level.
func NewZapProduction(level string) (Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapLevel(level))
	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return NewZapAdapter(l), nil
}

// Debug logs a debug-level message with optional structured fields.
func (z *ZapAdapter) Debug(msg string, fields ...Field) { z.l.Debug(msg, toZapFields(fields)...) }

// Info logs an info-level message with optional structured fields.
func (z *ZapAdapter) Info(msg string, fields ...Field) { z.l.Info(msg, toZapFields(fields)...) }

// Warn logs a warning-level message with optional structured fields.
func (z *ZapAdapter) Warn(msg string, fields ...Field) { z.l.Warn(msg, toZapFields(fields)...) }

// Error logs an error-level message with optional structured fields.
func (z *ZapAdapter) Error(msg string, fields ...Field) { z.l.Error(msg, toZapFields(fields)...) }

// With returns a new logger with the provided fields attached.
func (z *ZapAdapter) With(fields ...Field) Logger {
	return &ZapAdapter{l: z.l.With(toZapFields(fields)...)}
}

// Sync flushes buffered entries.
func (z *ZapAdapter) Sync() error { return z.l.Sync() }

func toZapFields(fields []Field) []zap.Field {
	out := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		if err, ok := f.Value.(error); ok {
			out = append(out, zap.NamedError(f.Key, err))
			continue
		}
		out = append(out, zap.Any(f.Key, f.Value))
	}
	return out
}

func zapLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
