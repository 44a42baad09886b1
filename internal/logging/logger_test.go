package logging

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInitLogger(t *testing.T) {
	err := InitLogger()
	require.NoError(t, err)
	assert.NotNil(t, Logger)
	assert.NotNil(t, Logger.logger)
}

func TestInitLogger_WithLogLevel(t *testing.T) {
	os.Setenv("LOG_LEVEL", "debug")
	defer os.Unsetenv("LOG_LEVEL")

	err := InitLogger()
	require.NoError(t, err)
	assert.NotNil(t, Logger)
}

func TestInitLogger_WithInvalidLogLevel(t *testing.T) {
	// Invalid level should still succeed with the default
	os.Setenv("LOG_LEVEL", "invalid")
	defer os.Unsetenv("LOG_LEVEL")

	err := InitLogger()
	require.NoError(t, err)
	assert.NotNil(t, Logger)
}

func TestSafeLogger_NilReceiver(t *testing.T) {
	var logger *SafeLogger

	// Should not panic
	logger.Debug("debug")
	logger.Info("info")
	logger.Warn("warn")
	logger.Error("error")
	assert.Nil(t, logger.With(zap.String("key", "value")))
}

func TestSafeLogger_Logging(t *testing.T) {
	logger := NewSafeLogger(zap.NewNop())

	// Should not panic
	logger.Debug("test debug", zap.Bool("flag", true))
	logger.Info("test message")
	logger.Info("test with fields", zap.String("key", "value"))
	logger.Warn("test warning", zap.Int("count", 42))
	logger.Error("test error")
}

func TestSafeLogger_With(t *testing.T) {
	logger := NewSafeLogger(zap.NewNop())

	child := logger.With(zap.String("component", "test"))
	require.NotNil(t, child)
	child.Info("message from child")
}
