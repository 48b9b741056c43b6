package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsoleLogger_Levels(t *testing.T) {
	tests := []struct {
		name  string
		log   func(l *ConsoleLogger)
		level string
		msg   string
	}{
		{"info", func(l *ConsoleLogger) { l.Info("hello world") }, "INFO", "hello world"},
		{"warn", func(l *ConsoleLogger) { l.Warn("warning message") }, "WARN", "warning message"},
		{"error", func(l *ConsoleLogger) { l.Error("error occurred") }, "ERROR", "error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewConsoleLoggerTo(&buf, false)

			tt.log(logger)

			output := buf.String()
			assert.Contains(t, output, tt.level)
			assert.Contains(t, output, tt.msg)
		})
	}
}

func TestConsoleLogger_Debug(t *testing.T) {
	var buf bytes.Buffer
	NewConsoleLoggerTo(&buf, false).Debug("hidden")
	assert.Empty(t, buf.String())

	NewConsoleLoggerTo(&buf, true).Debug("shown")
	assert.Contains(t, buf.String(), "DEBUG")
	assert.Contains(t, buf.String(), "shown")
}

func TestConsoleLogger_WithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerTo(&buf, false).
		WithFields(StringField("package", "assertion"))

	logger.Info("checked", IntField("count", 2))

	output := buf.String()
	assert.Contains(t, output, "package=assertion")
	assert.Contains(t, output, "count=2")
}

func TestConsoleLogger_LogFailure(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerTo(&buf, false)

	logger.LogFailure(FailureLog{
		Action:     "then_throw",
		Subject:    "age",
		Message:    "age must not be negative",
		ErrorCount: 1,
	})

	output := buf.String()
	assert.Contains(t, output, "WARN")
	assert.Contains(t, output, "age must not be negative")
	assert.Contains(t, output, "subject=age")
	assert.NoError(t, logger.Close())
}
