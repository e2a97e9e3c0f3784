// internal/common/logger/logger_test.go
package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedLogger() (Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return NewZapAdapter(zap.New(core)), logs
}

func TestZapAdapter_Levels(t *testing.T) {
	log, logs := newObservedLogger()

	log.Debug("d", nil)
	log.Info("i", nil)
	log.Warn("w", nil)
	log.Error("e", nil)

	entries := logs.All()
	assert.Len(t, entries, 4)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, zapcore.InfoLevel, entries[1].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)
}

func TestZapAdapter_Fields(t *testing.T) {
	log, logs := newObservedLogger()

	log.Info("resolved", map[string]interface{}{"place": "Paris", "attempt": 1})

	entries := logs.All()
	assert.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "Paris", fields["place"])
	assert.EqualValues(t, 1, fields["attempt"])
}

func TestZapAdapter_WithFields(t *testing.T) {
	log, logs := newObservedLogger()

	scoped := log.WithFields(map[string]interface{}{"provider": "geocoding"})
	scoped.Info("lookup", map[string]interface{}{"place": "Tokyo"})

	// The parent logger is not mutated by the derived one.
	log.Info("bare", nil)

	entries := logs.All()
	assert.Len(t, entries, 2)
	assert.Equal(t, "geocoding", entries[0].ContextMap()["provider"])
	assert.Equal(t, "Tokyo", entries[0].ContextMap()["place"])
	assert.NotContains(t, entries[1].ContextMap(), "provider")
}

func TestZapAdapter_WithError(t *testing.T) {
	log, logs := newObservedLogger()

	log.WithError(errors.New("connection refused")).Warn("degraded", nil)

	entries := logs.All()
	assert.Len(t, entries, 1)
	assert.Equal(t, "connection refused", entries[0].ContextMap()["error"])
}

func TestConstructors(t *testing.T) {
	// Smoke checks: every constructor yields a usable logger.
	assert.NotNil(t, New("debug", "json"))
	assert.NotNil(t, New("unknown-level", "console"))

	NewStructured("info", "console").Info("structured", nil)
	NewNoOpLogger().Error("dropped", map[string]interface{}{"k": "v"})
	NewTestLogger(t).Debug("through testing.T", nil)
}
