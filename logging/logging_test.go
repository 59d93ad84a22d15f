package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/0xalexb/kalla-conf/logging"

	"github.com/stretchr/testify/require"
)

func TestNewLogger_JSONOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	config := logging.LoggerConfig{Level: "INFO"}
	logger := logging.NewLogger(config, &buf)

	logger.Info("param resolved", slog.String("param", "Greeting"))

	var logEntry map[string]any

	err := json.Unmarshal(buf.Bytes(), &logEntry)
	require.NoError(t, err, "output should be valid JSON")
	require.Equal(t, "param resolved", logEntry["msg"])
	require.Equal(t, "Greeting", logEntry["param"])
	require.Equal(t, "INFO", logEntry["level"])
}

func TestNewLogger_Levels(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		configLevel string
		logLevel    slog.Level
		enabled     bool
	}{
		{name: "debug at debug", configLevel: "debug", logLevel: slog.LevelDebug, enabled: true},
		{name: "debug at info", configLevel: "info", logLevel: slog.LevelDebug, enabled: false},
		{name: "warn at info", configLevel: "info", logLevel: slog.LevelWarn, enabled: true},
		{name: "info at error", configLevel: "error", logLevel: slog.LevelInfo, enabled: false},
		{name: "warning alias", configLevel: "warning", logLevel: slog.LevelWarn, enabled: true},
		{name: "invalid defaults to info", configLevel: "chatty", logLevel: slog.LevelInfo, enabled: true},
		{name: "empty defaults to info", configLevel: "", logLevel: slog.LevelDebug, enabled: false},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			logger := logging.NewLogger(logging.LoggerConfig{Level: testCase.configLevel}, &buf)

			enabled := logger.Enabled(context.Background(), testCase.logLevel)
			require.Equal(t, testCase.enabled, enabled)
		})
	}
}

func TestNewLogger_AddSource(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := logging.NewLogger(logging.LoggerConfig{Level: "info", AddSource: true}, &buf)

	logger.Info("with source")

	var logEntry map[string]any

	err := json.Unmarshal(buf.Bytes(), &logEntry)
	require.NoError(t, err)
	require.Contains(t, logEntry, "source")
}

func TestNop_DiscardsEverything(t *testing.T) {
	t.Parallel()

	logger := logging.Nop()

	require.False(t, logger.Enabled(context.Background(), slog.LevelError))
}
