package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"component": "asset-loader", "tag": "wp_enqueue_scripts"})
	log.Info("registered callback")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "registered callback", entry["message"])
	require.Equal(t, "asset-loader", entry["component"])
	require.Equal(t, "wp_enqueue_scripts", entry["tag"])
	require.Equal(t, "info", entry["level"])
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log.Debug("this should not appear")
	require.Equal(t, "", strings.TrimSpace(buf.String()))
}

func TestLoggerErrorIncludesContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log = log.WithComponent("hooks")
	log.Error(errors.New("boom"), "failed")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "failed", entry["message"])
	require.Equal(t, "hooks", entry["component"])
	require.Equal(t, "boom", entry["error"])
}

func TestLoggerCorrelationIDGenerated(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Writer: buf})
	require.NoError(t, err)

	log.WithCorrelationID("").Info("setup")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	id, ok := entry["correlation_id"].(string)
	require.True(t, ok)
	_, parseErr := uuid.Parse(id)
	require.NoError(t, parseErr)
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
}

func TestNilLoggerIsSafe(t *testing.T) {
	t.Parallel()

	var log *Logger
	require.NotPanics(t, func() {
		log.With("k", "v").Info("ignored")
		log.Error(errors.New("x"), "ignored")
	})
}

func TestLoggerBaseFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Writer: buf, Fields: map[string]any{"app": "themecore"}})
	require.NoError(t, err)

	log.Warn("careful")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "themecore", entry["app"])
	require.Equal(t, "warn", entry["level"])
}

func TestLoggerConsoleWithoutColor(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Writer: buf, HumanReadable: true, NoColor: true})
	require.NoError(t, err)

	log.With("tag", "wp").Info("fired")
	out := buf.String()
	require.Contains(t, out, "fired")
	require.Contains(t, out, "tag=wp")
	require.NotContains(t, out, "\x1b[")
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	level, err := ParseLevel("")
	require.NoError(t, err)
	require.Equal(t, "info", level.String())

	level, err = ParseLevel(" DEBUG ")
	require.NoError(t, err)
	require.Equal(t, "debug", level.String())

	_, err = ParseLevel("loud")
	require.ErrorContains(t, err, `invalid log level "loud"`)
}
