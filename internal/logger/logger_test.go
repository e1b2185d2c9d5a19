package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", JSON: true, Writer: buf})
	require.NoError(t, err)

	log = log.WithComponent("registry").WithFields(map[string]any{"theme": "ocean"})
	log.Info("theme registered")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "theme registered", entry["message"])
	require.Equal(t, "registry", entry["component"])
	require.Equal(t, "ocean", entry["theme"])
	require.Equal(t, "info", entry["level"])
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", JSON: true, Writer: buf})
	require.NoError(t, err)

	log.Debug("this should not appear")
	require.Equal(t, "", strings.TrimSpace(buf.String()))
}

func TestLoggerErrorIncludesContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", JSON: true, Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"pack": "nord"})
	log.Error(errors.New("boom"), "update failed")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "update failed", entry["message"])
	require.Equal(t, "nord", entry["pack"])
	require.Equal(t, "boom", entry["error"])
}

func TestLoggerConsoleModeWrites(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{NoColor: true, Writer: buf})
	require.NoError(t, err)

	log.Info("hello")
	require.Contains(t, buf.String(), "hello")
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "chatty"})
	require.Error(t, err)
}

func TestLoggerNilReceiverIsSafe(t *testing.T) {
	t.Parallel()

	var log *Logger
	require.Nil(t, log.WithComponent("x"))
	require.NotPanics(t, func() {
		log.Info("ignored")
		log.Debug("ignored")
		log.Warn("ignored")
		log.Error(errors.New("x"), "ignored")
	})
}
