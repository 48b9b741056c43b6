package assertion

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Unwrap(t *testing.T) {
	inner := errors.New("inner")
	err := &Error{Kind: ErrInvalidOperation, Message: "m", Inner: inner}

	assert.Equal(t, "m", err.Error())
	assert.ErrorIs(t, err, ErrInvalidOperation)
	assert.ErrorIs(t, err, inner)
	assert.NotErrorIs(t, err, ErrRequired)
}

func TestError_Nil(t *testing.T) {
	var err *Error

	assert.Equal(t, "required", err.Error())
	assert.Nil(t, err.Unwrap())
}

func TestMisuse(t *testing.T) {
	err := misuse(ErrInvalidArgument, "%s is nil", "callback")

	assert.Equal(t, "invalid argument: callback is nil", err.Error())
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestAccumulator_Render(t *testing.T) {
	var acc accumulator
	acc = acc.add("a must", "a is", andSeparator)
	acc = acc.add("b must", "b is", andSeparator)
	merged := acc.add("c must", "c is", ". ")

	assert.Equal(t, 2, acc.len())
	assert.Equal(t, "a must and b must", acc.render(false))
	assert.Equal(t, "a must and b must. c must", merged.render(false))
	assert.Equal(t, "a is and b is. c is", merged.render(true))
}
