package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_Fields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewZap(zap.New(core)).With("chain", "0")

	l.Debug("tree drawn", "draws", 2)
	l.Info("chain started", "steps", 100)
	l.Warn("exhausted")
	l.Error("invariant", "step", 7)

	entries := logs.All()
	require.Len(t, entries, 4)
	assert.Equal(t, "chain started", entries[1].Message)
	assert.Equal(t, zapcore.InfoLevel, entries[1].Level)
	fields := entries[1].ContextMap()
	assert.Equal(t, "0", fields["chain"])
	assert.EqualValues(t, 100, fields["steps"])
	assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)
}

func TestNewZap_NilIsNop(t *testing.T) {
	l := NewZap(nil)
	assert.NotPanics(t, func() { l.Info("dropped", "k", "v") })
}

func TestFormatKeyValues(t *testing.T) {
	assert.Equal(t, "", formatKeyValues(nil))
	assert.Equal(t, "a=1 b=x", formatKeyValues([]any{"a", 1, "b", "x"}))
	assert.Equal(t, "a=1 b=<missing>", formatKeyValues([]any{"a", 1, "b"}))
}

func TestNopAndTestLoggers(t *testing.T) {
	NewNop().Error("ignored", "k", 1)
	NewTest(t).Info("visible in -v output", "k", 1)
}
