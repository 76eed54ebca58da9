package logging

import (
	"context"
	"testing"

	"github.com/Carmen-Shannon/oxy-gl/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	data := []struct {
		name  string
		level zapcore.Level
		ok    bool
	}{
		{"debug", zapcore.DebugLevel, true},
		{"INFO", zapcore.InfoLevel, true},
		{"", zapcore.InfoLevel, true},
		{"warning", zapcore.WarnLevel, true},
		{"error", zapcore.ErrorLevel, true},
		{"chatty", zapcore.InfoLevel, false},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			level, err := ParseLevel(d.name)
			assert.Equal(t, d.level, level)
			assert.Equal(t, d.ok, err == nil)
		})
	}
}

func TestNew(t *testing.T) {
	logger, err := New(config.Logging{Level: "warn"})
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))

	logger, err = New(config.Logging{Level: "debug", Development: true})
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))

	_, err = New(config.Logging{Level: "nope"})
	assert.Error(t, err)
}

func TestContextRoundTrip(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	ctx := Context(context.Background(), logger)
	sub, ctx := SubFrom(ctx, "camera")
	sub.Info("moved")
	From(ctx).Info("again")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "camera", entries[0].LoggerName)
	assert.Equal(t, "camera", entries[1].LoggerName)
}

func TestFromFallsBackToRoot(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	SetRoot(zap.New(core))
	defer SetRoot(nil)

	From(context.Background()).Info("root")
	assert.Equal(t, 1, logs.Len())
}
