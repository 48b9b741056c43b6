package assertion

import "strings"

// Validatable is implemented by types that declare their own
// checks for ObjectAssertion.IsInvalid.
type Validatable interface {
	IsInvalid() *Validation
}

// Validation is the composite returned by Validatable. It is valid
// when any of its parts is.
type Validation struct {
	parts []Asserter
}

// NewValidation combines evaluated assertions. Nil parts panic with
// ErrInvalidArgument.
func NewValidation(parts ...Asserter) *Validation {
	for i, p := range parts {
		if isNil(p) {
			panic(misuse(ErrInvalidArgument, "validation part %d is nil", i))
		}
	}
	return &Validation{parts: parts}
}

// IsValid reports whether any part is valid.
func (v *Validation) IsValid() bool {
	for _, p := range v.parts {
		if p.IsValid() {
			return true
		}
	}
	return false
}

// ErrorCount sums the counts of the valid parts.
func (v *Validation) ErrorCount() int {
	count := 0
	for _, p := range v.parts {
		if p.IsValid() {
			count += p.ErrorCount()
		}
	}
	return count
}

// String joins the messages of the valid parts with the configured
// Or separator.
func (v *Validation) String() string {
	var msgs []string
	for _, p := range v.parts {
		if p.IsValid() {
			if msg := p.String(); msg != "" {
				msgs = append(msgs, msg)
			}
		}
	}
	return strings.Join(msgs, loadSettings().config.OrSeparator)
}

// Err returns the joined message as an ErrRequired error when
// valid.
func (v *Validation) Err() error {
	if !v.IsValid() {
		return nil
	}
	return &Error{Kind: ErrRequired, Message: v.String()}
}
