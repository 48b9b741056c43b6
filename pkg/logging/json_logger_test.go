package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func splitNonEmpty(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func TestJSONLogger_NewJSONLogger_Stdout(t *testing.T) {
	logger, err := NewJSONLogger(LoggerConfig{Level: LevelInfo})
	require.NoError(t, err)
	assert.NotNil(t, logger)
	assert.NoError(t, logger.Close())
}

func TestJSONLogger_NewJSONLogger_File(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "nested", "test.log")

	logger, err := NewJSONLogger(LoggerConfig{
		OutputPath: logPath,
		Level:      LevelDebug,
		Verbose:    true,
	})
	require.NoError(t, err)

	logger.Info("hello", LogField("key", "val"))
	logger.Debug("debug msg")
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)

	lines := splitNonEmpty(string(data))
	require.Len(t, lines, 2)

	var entry LogEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "INFO", entry.Level)
	assert.Equal(t, "hello", entry.Message)
	assert.Equal(t, "val", entry.Fields["key"])
}

func TestJSONLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLoggerTo(&buf, LevelWarn)

	logger.Debug("should not appear")
	logger.Info("should not appear")
	logger.Warn("should appear")
	logger.Error("should appear")

	assert.Len(t, splitNonEmpty(buf.String()), 2)
}

func TestJSONLogger_WithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLoggerTo(&buf, LevelInfo)

	child := logger.WithFields(StringField("component", "guard"))
	child.Info("msg", IntField("n", 1))

	var entry LogEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "guard", entry.Fields["component"])
	assert.Equal(t, float64(1), entry.Fields["n"])
}

func TestJSONLogger_LogFailure(t *testing.T) {
	dir := t.TempDir()
	failurePath := filepath.Join(dir, "failures.log")

	logger, err := NewJSONLogger(LoggerConfig{
		OutputPath: filepath.Join(dir, "out.log"),
		FailureLog: failurePath,
		Level:      LevelInfo,
	})
	require.NoError(t, err)

	logger.LogFailure(FailureLog{
		Action:     "then_throw",
		Subject:    "x",
		Message:    "x must not be equal to 1",
		ErrorCount: 1,
	})
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(failurePath)
	require.NoError(t, err)

	var failure FailureLog
	require.NoError(t, json.Unmarshal([]byte(splitNonEmpty(string(data))[0]), &failure))
	assert.Equal(t, "x must not be equal to 1", failure.Message)
	assert.NotEmpty(t, failure.Timestamp)
}

func TestJSONLogger_ClosedDropsEntries(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLoggerTo(&buf, LevelInfo)
	require.NoError(t, logger.Close())
	require.NoError(t, logger.Close())

	logger.Info("dropped")
	assert.Empty(t, buf.String())
}

func TestJSONLogger_MarshalError(t *testing.T) {
	orig := jsonMarshal
	defer func() { jsonMarshal = orig }()
	jsonMarshal = func(any) ([]byte, error) {
		return nil, errors.New("marshal failed")
	}

	var buf bytes.Buffer
	NewJSONLoggerTo(&buf, LevelInfo).Info("lost")
	assert.Empty(t, buf.String())
}
