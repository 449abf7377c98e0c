package common

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	_ "liyu1981.xyz/battery-tracking-service/pkg/testing"
)

func TestLoggingCapture(t *testing.T) {
	var buf bytes.Buffer
	SetTestCaptureLogger(&buf, zapcore.InfoLevel)

	logger := GetLogger()
	logger.Info("Test log message", zap.String("key", "value"))

	logOutput := buf.String()
	if !strings.Contains(logOutput, "Test log message") {
		t.Errorf("expected log output to contain message, got: %s", logOutput)
	}
}

func TestNamedLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	SetTestCaptureLogger(&buf, zapcore.InfoLevel)

	GetLoggerWith(LoggerNameInventoryCore, zap.String(LoggerFieldCategory, LoggerCategoryBattery)).
		Info("Battery saved")

	var line map[string]any
	assert.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	assert.Equal(t, LoggerNameInventoryCore, line["logger"])
	assert.Equal(t, LoggerCategoryBattery, line["category"])
	assert.Equal(t, "Battery saved", line["msg"])
}

func TestLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	SetTestCaptureLogger(&buf, zapcore.WarnLevel)

	GetLogger().Info("dropped")
	assert.Empty(t, buf.String())
}

func readLogLines(t *testing.T, path string) []map[string]any {
	require.NoError(t, GetLogger().Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var lines []map[string]any
	for _, raw := range bytes.Split(bytes.TrimSpace(data), []byte("\n")) {
		var line map[string]any
		require.NoError(t, json.Unmarshal(raw, &line))
		lines = append(lines, line)
	}
	return lines
}

func TestSetupLoggerWritesToDir(t *testing.T) {
	t.Cleanup(SetTestLoggerNop)

	dir := filepath.Join(t.TempDir(), "server-logs")
	SetupLogger(dir, true)
	GetLoggerWith(LoggerNameRestfulServer).Info("Starting HTTP server")

	lines := readLogLines(t, filepath.Join(dir, "app.log"))
	require.Len(t, lines, 1)
	assert.Equal(t, LoggerNameRestfulServer, lines[0]["logger"])
	assert.Equal(t, "Starting HTTP server", lines[0]["msg"])
}

func TestSetFileOnlyLoggerWritesCliLog(t *testing.T) {
	t.Cleanup(SetTestLoggerNop)

	dir := t.TempDir()
	SetFileOnlyLogger(dir)
	GetLoggerWith(LoggerNameCli).Info("Battery added")

	lines := readLogLines(t, filepath.Join(dir, "cli.log"))
	require.Len(t, lines, 1)
	assert.Equal(t, "Battery added", lines[0]["msg"])

	_, err := os.Stat(filepath.Join(dir, "app.log"))
	assert.True(t, os.IsNotExist(err))
}
