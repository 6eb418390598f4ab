package utils

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLoggingWith(t *testing.T) {
	prevLogger := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prevLogger) })

	t.Run("JSON handler honors the level", func(t *testing.T) {
		var buf bytes.Buffer
		initLoggingWith(&buf, HandlerTypeJSON, LogLevelWarn)
		slog.Info("Dropped record.")
		slog.Warn("Kept record.", "key", "value")

		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		assert.Equal(t, "Kept record.", record["msg"])
		assert.Equal(t, "value", record["key"])
	})

	t.Run("Text handler", func(t *testing.T) {
		var buf bytes.Buffer
		initLoggingWith(&buf, HandlerTypeText, LogLevelDebug)
		slog.Debug("Debug record.")
		assert.Contains(t, buf.String(), "msg=\"Debug record.\"")
	})

	t.Run("Flags", func(t *testing.T) {
		SetTestFlag(t, "log_handler_type", "JSON")
		SetTestFlag(t, "log_level", "error")
		InitLogging()
		assert.False(t, slog.Default().Enabled(t.Context(), slog.LevelWarn))
		assert.True(t, slog.Default().Enabled(t.Context(), slog.LevelError))
	})
}
