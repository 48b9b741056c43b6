package logging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogLevel_String(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{LogLevel(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.level.String())
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name     string
		expected LogLevel
	}{
		{"debug", LevelDebug},
		{"WARN", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"info", LevelInfo},
		{"", LevelInfo},
		{"verbose", LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLevel(tt.name))
		})
	}
}

func TestFieldHelpers(t *testing.T) {
	assert.Equal(t, Field{Key: "k", Value: "v"}, LogField("k", "v"))
	assert.Equal(t, Field{Key: "name", Value: "x"}, StringField("name", "x"))
	assert.Equal(t, Field{Key: "count", Value: 3}, IntField("count", 3))
	assert.Equal(t, Field{Key: "ok", Value: true}, BoolField("ok", true))
	assert.Equal(t, Field{Key: "v", Value: "[1 2]"}, ValueField("v", []int{1, 2}))
}

func TestErrorField(t *testing.T) {
	f := ErrorField(errors.New("boom"))
	assert.Equal(t, "error", f.Key)
	assert.Equal(t, "boom", f.Value)

	f = ErrorField(nil)
	assert.Equal(t, "<nil>", f.Value)
}

func TestFailureLog_Fields(t *testing.T) {
	t.Run("without location", func(t *testing.T) {
		f := FailureLog{Action: "then_throw", Subject: "x", ErrorCount: 2}
		fields := f.Fields()
		assert.Len(t, fields, 3)
		assert.Equal(t, "then_throw", fields[0].Value)
	})

	t.Run("with kind and location", func(t *testing.T) {
		f := FailureLog{
			Action:   "then_throw",
			Subject:  "x",
			Kind:     "required",
			File:     "main.go",
			Line:     12,
			Function: "main.run",
		}
		fields := f.Fields()
		assert.Len(t, fields, 7)
		assert.Contains(t, fields, IntField("line", 12))
	})
}

func TestNullLogger(t *testing.T) {
	var l Logger = NullLogger{}
	// Should not panic
	l.Info("info", LogField("k", 1))
	l.Warn("warn")
	l.Error("error")
	l.Debug("debug")
	l.LogFailure(FailureLog{Message: "x must not be null"})
	assert.Equal(t, NullLogger{}, l.WithFields(LogField("a", 1)))
	assert.NoError(t, l.Close())
}
