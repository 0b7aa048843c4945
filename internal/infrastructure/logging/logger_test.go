package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "warn", cfg.Level)
	assert.False(t, cfg.Development)
	assert.Equal(t, []string{"stderr"}, cfg.OutputPaths)
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(Config{Level: "chatty"})
	assert.Error(t, err)
}

func TestNewBuildsLevelledLogger(t *testing.T) {
	logger, err := New(Config{Level: "error"})
	require.NoError(t, err)
	defer logger.Sync() //nolint:errcheck

	assert.False(t, logger.Core().Enabled(zapcore.WarnLevel))
	assert.True(t, logger.Core().Enabled(zapcore.ErrorLevel))
}

func TestNewDevelopment(t *testing.T) {
	logger := NewDevelopment()
	require.NotNil(t, logger.Logger)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}

// TestFromSettings tests preset selection and level override
func TestFromSettings(t *testing.T) {
	dev, err := FromSettings("", true)
	require.NoError(t, err)
	assert.True(t, dev.Core().Enabled(zapcore.DebugLevel))

	devWarn, err := FromSettings("warn", true)
	require.NoError(t, err)
	assert.False(t, devWarn.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, devWarn.Core().Enabled(zapcore.WarnLevel))

	prod, err := FromSettings("", false)
	require.NoError(t, err)
	assert.False(t, prod.Core().Enabled(zapcore.InfoLevel))

	_, err = FromSettings("chatty", true)
	assert.Error(t, err)
}

func TestEncoderConfig(t *testing.T) {
	assert.Equal(t, "timestamp", encoderConfig(false).TimeKey)
	assert.NotEqual(t, "timestamp", encoderConfig(true).TimeKey)
}

func TestNewNop(t *testing.T) {
	logger := NewNop()
	require.NotNil(t, logger.Logger)
	assert.False(t, logger.Core().Enabled(zapcore.ErrorLevel))
}

func TestWarnerImplementations(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)

	var w Warner = &Logger{Logger: zap.New(core)}
	w.Warn("directory does not exist", zap.String("path", "/missing"))

	var z Warner = zap.New(core)
	z.Warn("second")

	require.Equal(t, 2, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "directory does not exist", entry.Message)
	assert.Equal(t, "/missing", entry.ContextMap()["path"])
}
