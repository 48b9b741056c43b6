package assertion

import (
	"errors"
	"fmt"
)

var (
	// ErrRequired is the default kind of errors produced by
	// terminal actions. Misuse panics for missing callbacks use
	// it as well.
	ErrRequired = errors.New("required")

	// ErrInvalidOperation marks an operation that cannot be
	// applied to the assertion in its current shape.
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrInvalidArgument marks a nil or malformed argument passed
	// to a combinator or terminal action.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrMissingMember marks a subject that was asked to validate
	// itself but does not implement Validatable.
	ErrMissingMember = errors.New("missing member")

	// ErrInvalidPattern marks a regular expression that does not
	// compile.
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrRecoveredPanic wraps a panic recovered by Try.
	ErrRecoveredPanic = errors.New("recovered panic")
)

// Error is the error produced by terminal actions and by misuse
// panics. Error() returns the composed message unchanged.
type Error struct {
	// Kind is the sentinel matched by errors.Is.
	Kind error
	// Message is the composed assertion message.
	Message string
	// Subject is the name of the primary subject.
	Subject string
	// Inner is an optional cause, also matched by errors.Is.
	Inner error
	// Location is set when tracing is enabled.
	Location *Location
}

// Error returns the composed message.
func (e *Error) Error() string {
	if e == nil {
		return ErrRequired.Error()
	}
	return e.Message
}

// Unwrap exposes the kind and the inner error.
func (e *Error) Unwrap() []error {
	if e == nil {
		return nil
	}
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Inner != nil {
		errs = append(errs, e.Inner)
	}
	return errs
}

// misuse builds the error used for programmer mistakes. Callers
// panic with it immediately.
func misuse(kind error, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf("%s: %s", kind, fmt.Sprintf(format, args...)),
	}
}

// ThrowOption customises the error produced by ThenThrow,
// ThenPanic and Err.
type ThrowOption func(*throwOptions)

type throwOptions struct {
	kind    error
	message string
	inner   error
	factory func(string) error
}

// WithKind sets the sentinel the produced error unwraps to. The
// default is ErrRequired.
func WithKind(kind error) ThrowOption {
	return func(o *throwOptions) {
		if kind != nil {
			o.kind = kind
		}
	}
}

// WithMessage replaces the composed message.
func WithMessage(message string) ThrowOption {
	return func(o *throwOptions) {
		o.message = message
	}
}

// WithInner attaches a cause to the produced error.
func WithInner(inner error) ThrowOption {
	return func(o *throwOptions) {
		o.inner = inner
	}
}

// WithFactory builds the produced error from the message with a
// caller supplied constructor, for callers that need their own
// error type. Kind and inner options are ignored.
func WithFactory(factory func(message string) error) ThrowOption {
	return func(o *throwOptions) {
		o.factory = factory
	}
}
