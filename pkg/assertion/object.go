package assertion

import "strings"

// ObjectAssertion guards an arbitrary value. Nil pointers, maps,
// slices, channels, functions and interfaces are null.
type ObjectAssertion[T any] struct {
	*Assertion[T]
}

// Object starts an assertion over v.
func Object[T any](v T, name ...string) *ObjectAssertion[T] {
	return &ObjectAssertion[T]{newAssertion(v, isNil(any(v)), valueName(v, typeName[T]()), name)}
}

func (o *ObjectAssertion[T]) Extend(fn func(T) Result) *ObjectAssertion[T] {
	o.Assertion.Extend(fn)
	return o
}

func (o *ObjectAssertion[T]) IsTrue(pred func(T) bool, msg ...string) *ObjectAssertion[T] {
	o.Assertion.IsTrue(pred, msg...)
	return o
}

func (o *ObjectAssertion[T]) IsFalse(pred func(T) bool, msg ...string) *ObjectAssertion[T] {
	o.Assertion.IsFalse(pred, msg...)
	return o
}

func (o *ObjectAssertion[T]) IsEqualTo(v T) *ObjectAssertion[T] {
	o.Assertion.IsEqualTo(v)
	return o
}

func (o *ObjectAssertion[T]) IsNotEqualTo(v T) *ObjectAssertion[T] {
	o.Assertion.IsNotEqualTo(v)
	return o
}

// Or adds another subject of the same type.
func (o *ObjectAssertion[T]) Or(v T, name string) *ObjectAssertion[T] {
	o.Assertion.Or(v, name)
	return o
}

func (o *ObjectAssertion[T]) OrWith(other Asserter, sep ...string) *ObjectAssertion[T] {
	o.Assertion.OrWith(other, sep...)
	return o
}

func (o *ObjectAssertion[T]) StopIfNotValid() *ObjectAssertion[T] {
	o.Assertion.StopIfNotValid()
	return o
}

// IsNull reports a nil subject and stops the chain.
func (o *ObjectAssertion[T]) IsNull() *ObjectAssertion[T] {
	o.isNull()
	return o
}

// IsNotNull reports a non-nil subject and stops the chain.
func (o *ObjectAssertion[T]) IsNotNull() *ObjectAssertion[T] {
	o.isNotNull()
	return o
}

// IsInvalid runs the subject's own Validation and reports its
// message. Null subjects are skipped. A subject that does not
// implement Validatable panics with ErrMissingMember.
func (o *ObjectAssertion[T]) IsInvalid() *ObjectAssertion[T] {
	o.evaluate("is_invalid", func(s subject[T]) Result {
		if s.null {
			return Passed()
		}
		v, ok := validatable(&s.value)
		if !ok {
			panic(misuse(ErrMissingMember, "%s does not implement Validatable", valueName(s.value, typeName[T]())))
		}
		validation := v.IsInvalid()
		if validation == nil || !validation.IsValid() {
			return Passed()
		}
		return CheckResult("is_invalid", validation.String())
	})
	return o
}

func validatable[T any](p *T) (Validatable, bool) {
	if v, ok := any(*p).(Validatable); ok {
		return v, true
	}
	v, ok := any(p).(Validatable)
	return v, ok
}

// PropertyValuesMatch reports when the subject equals other field
// by field.
func (o *ObjectAssertion[T]) PropertyValuesMatch(other T) *ObjectAssertion[T] {
	o.check("property_values_match", func(s subject[T]) bool {
		return equal(s.value, other)
	}, other)
	return o
}

// PropertyValuesDoNotMatch reports when the subject differs from
// other and names the differing fields.
func (o *ObjectAssertion[T]) PropertyValuesDoNotMatch(other T) *ObjectAssertion[T] {
	o.evaluate("property_values_do_not_match", func(s subject[T]) Result {
		paths := diffPaths(s.value, other)
		if len(paths) == 0 {
			return Passed()
		}
		return CheckResult("property_values_do_not_match", other, strings.Join(paths, ", "))
	})
	return o
}
