package logging_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/mailersend-go/internal/logging"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()

	var entries []map[string]interface{}

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}

		var entry map[string]interface{}

		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}

	return entries
}

func TestNewZerolog(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := logging.NewZerolog(&buf, "debug")
	logger.Debug("HTTP Request", map[string]interface{}{"method": "GET", "status": 200})
	logger.Error("send failed", map[string]interface{}{"error": errors.New("boom")})

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 2)

	assert.Equal(t, "debug", entries[0]["level"])
	assert.Equal(t, "HTTP Request", entries[0]["message"])
	assert.Equal(t, "GET", entries[0]["method"])
	assert.InDelta(t, 200, entries[0]["status"], 0)
	assert.Contains(t, entries[0], "time")

	assert.Equal(t, "error", entries[1]["level"])
	assert.Equal(t, "boom", entries[1]["error"])
}

func TestLevelFiltering(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		level    string
		expected []string
	}{
		{name: "debug", level: "debug", expected: []string{"debug", "info", "warn", "error"}},
		{name: "warn", level: "WARN", expected: []string{"warn", "error"}},
		{name: "unknown falls back to info", level: "chatty", expected: []string{"info", "warn", "error"}},
		{name: "empty falls back to info", level: "", expected: []string{"info", "warn", "error"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			logger := logging.NewZerolog(&buf, tt.level)
			logger.Debug("d", nil)
			logger.Info("i", nil)
			logger.Warn("w", nil)
			logger.Error("e", nil)

			levels := make([]string, 0, len(tt.expected))
			for _, entry := range decodeLines(t, &buf) {
				levels = append(levels, entry["level"].(string))
			}

			assert.Equal(t, tt.expected, levels)
		})
	}
}

func TestWithComponent(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logging.NewZerolog(&buf, "info").WithComponent("http").Info("ready", nil)

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "http", entries[0][logging.FieldComponent])
}

func TestNewConsole(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logging.NewConsole(&buf, "info", true).Info("sent", map[string]interface{}{"id": "msg-1"})

	out := buf.String()
	assert.Contains(t, out, "sent")
	assert.Contains(t, out, "id=msg-1")
	assert.Contains(t, out, "INF")
}

func TestNew_Format(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logging.New(&buf, "info", logging.FormatJSON).Info("sent", nil)

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "sent", entries[0]["message"])
}
