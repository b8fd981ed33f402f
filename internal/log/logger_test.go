package log

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   LevelDebug,
		"":        LevelInfo,
		"INFO":    LevelInfo,
		" warn ":  LevelWarn,
		"warning": LevelWarn,
		"error":   LevelError,
	}

	for input, expected := range cases {
		level, err := ParseLevel(input)
		require.NoError(t, err, input)
		require.Equal(t, expected, level, input)
	}

	_, err := ParseLevel("verbose")
	require.Error(t, err)
}

func TestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := NewWithCore(core, LevelInfo)

	logger.Debug("dropped")
	logger.With(String("buffer", "b0")).Info("frame", Int("frame", 3), Float64("ms", 1.5))

	require.Equal(t, 1, logs.Len())

	entry := logs.All()[0]
	require.Equal(t, "frame", entry.Message)
	require.Equal(t, zapcore.InfoLevel, entry.Level)

	fields := entry.ContextMap()
	require.Equal(t, "b0", fields["buffer"])
	require.EqualValues(t, 3, fields["frame"])
	require.Equal(t, 1.5, fields["ms"])

	logger.SetLevel(LevelDebug)
	require.True(t, logger.Enabled(LevelDebug))

	logger.Debug("kept")
	require.Equal(t, 2, logs.Len())
}

func TestLevel_String(t *testing.T) {
	require.Equal(t, "warn", LevelWarn.String())
	require.Equal(t, "debug", LevelDebug.String())
}
