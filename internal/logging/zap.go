package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/recom/types"
)

// ZapLogger adapts a zap.SugaredLogger to types.Logger.
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

// Compile-time assertion that ZapLogger implements Logger.
var _ types.Logger = (*ZapLogger)(nil)

// NewZap wraps an existing zap logger. A nil logger yields zap.NewNop.
func NewZap(l *zap.Logger) *ZapLogger {
	if l == nil {
		l = zap.NewNop()
	}

	return &ZapLogger{sugar: l.Sugar()}
}

// NewProduction builds a JSON production logger; verbose lowers the level to debug.
func NewProduction(verbose bool) (*ZapLogger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}

	return NewZap(l), nil
}

// NewDevelopment builds a human-readable console logger.
func NewDevelopment(verbose bool) (*ZapLogger, error) {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}
	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}

	return NewZap(l), nil
}

// With returns a child logger carrying the given fields on every entry.
func (z *ZapLogger) With(keysAndValues ...any) *ZapLogger {
	return &ZapLogger{sugar: z.sugar.With(keysAndValues...)}
}

// Debug logs at debug level.
func (z *ZapLogger) Debug(msg string, keysAndValues ...any) { z.sugar.Debugw(msg, keysAndValues...) }

// Info logs at info level.
func (z *ZapLogger) Info(msg string, keysAndValues ...any) { z.sugar.Infow(msg, keysAndValues...) }

// Warn logs at warn level.
func (z *ZapLogger) Warn(msg string, keysAndValues ...any) { z.sugar.Warnw(msg, keysAndValues...) }

// Error logs at error level.
func (z *ZapLogger) Error(msg string, keysAndValues ...any) { z.sugar.Errorw(msg, keysAndValues...) }

// Sync flushes buffered entries.
func (z *ZapLogger) Sync() error { return z.sugar.Sync() }
