package assertion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterMessage(t *testing.T) {
	t.Cleanup(ResetMessages)

	err := RegisterMessage("is_port", Template{
		Guard:     "<name> must not be a port ({0})",
		Condition: "<name> is a port",
	})
	require.NoError(t, err)

	isPort := func(v int) Result {
		if v < 1 || v > 65535 {
			return Passed()
		}
		return CheckResult("is_port", v)
	}

	assert.Equal(t, "p must not be a port (8080)", Int(8080, "p").Extend(isPort).String())
	assert.Equal(t, "x must not be zero when p is a port",
		Int(0, "x").IsZero().And().Int(8080, "p").Extend(isPort).String())
	assert.False(t, Int(0, "p").Extend(isPort).IsValid())
}

func TestRegisterMessage_Duplicate(t *testing.T) {
	err := RegisterMessage("is_zero", Template{Guard: "x"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestRegisterMessage_Invalid(t *testing.T) {
	err := RegisterMessage("", Template{Guard: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "message key must not be empty or whitespace")

	err = RegisterMessage("custom", Template{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "custom.guard must not be empty or whitespace")
}

func TestOverrideMessage(t *testing.T) {
	t.Cleanup(ResetMessages)

	require.NoError(t, OverrideMessage("is_empty", Template{Guard: "<name> is blank"}))
	assert.Equal(t, "s is blank", String("", "s").IsEmpty().String())

	tmpl, ok := MessageFor("is_empty")
	require.True(t, ok)
	assert.Equal(t, "<name> is blank", tmpl.Guard)

	ResetMessages()
	assert.Equal(t, "s must not be empty", String("", "s").IsEmpty().String())
}

func TestCheckResult_UnknownKey(t *testing.T) {
	r := CheckResult("no_such_check")

	assert.True(t, r.Valid)
	assert.Equal(t, "n is invalid (no_such_check)", withName(r.Message, "n"))
}

func TestExpand(t *testing.T) {
	at := time.Date(2024, time.March, 9, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		tmpl string
		args []any
		want string
	}{
		{"no args", "plain", nil, "plain"},
		{"ordered", "{1} then {0}", []any{"a", "b"}, "b then a"},
		{"repeated", "{0}{0}", []any{1}, "11"},
		{"missing arg", "{0} and {1}", []any{"x"}, "x and {1}"},
		{"time", "at {0}", []any{at}, "at 2024-03-09T12:00:00Z"},
		{"duration", "in {0}", []any{time.Minute}, "in 1m0s"},
		{"arg is not expanded", "{0}", []any{"{1}"}, "{1}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, withName(expand(tt.tmpl, tt.args), "n"))
		})
	}
}

func TestWithName_DoesNotTouchArguments(t *testing.T) {
	r := NewResult(true, "<name> must not match {0}", `(?P<name>\w+)`)

	assert.Equal(t, `s must not match (?P<name>\w+)`, withName(r.Message, "s"))
}
