package assertion

// NullableAssertion guards an optional value held by pointer.
type NullableAssertion[T any] struct {
	*Assertion[*T]
}

// Nullable starts an assertion over p. A nil p is null. The
// default name is the name of T.
func Nullable[T any](p *T, name ...string) *NullableAssertion[T] {
	return &NullableAssertion[T]{newAssertion(p, p == nil, typeName[T](), name)}
}

func (n *NullableAssertion[T]) Extend(fn func(*T) Result) *NullableAssertion[T] {
	n.Assertion.Extend(fn)
	return n
}

func (n *NullableAssertion[T]) IsTrue(pred func(*T) bool, msg ...string) *NullableAssertion[T] {
	n.Assertion.IsTrue(pred, msg...)
	return n
}

func (n *NullableAssertion[T]) IsFalse(pred func(*T) bool, msg ...string) *NullableAssertion[T] {
	n.Assertion.IsFalse(pred, msg...)
	return n
}

// Or adds another optional subject.
func (n *NullableAssertion[T]) Or(p *T, name string) *NullableAssertion[T] {
	n.or(p, p == nil, name)
	return n
}

func (n *NullableAssertion[T]) OrWith(other Asserter, sep ...string) *NullableAssertion[T] {
	n.Assertion.OrWith(other, sep...)
	return n
}

func (n *NullableAssertion[T]) StopIfNotValid() *NullableAssertion[T] {
	n.Assertion.StopIfNotValid()
	return n
}

// IsNull reports a missing value and stops the chain.
func (n *NullableAssertion[T]) IsNull() *NullableAssertion[T] {
	n.isNull()
	return n
}

// IsNotNull reports a present value and stops the chain.
func (n *NullableAssertion[T]) IsNotNull() *NullableAssertion[T] {
	n.isNotNull()
	return n
}

// IsEqualTo reports a present value equal to v.
func (n *NullableAssertion[T]) IsEqualTo(v T) *NullableAssertion[T] {
	n.check("is_equal_to", func(s subject[*T]) bool {
		return !s.null && equal(*s.value, v)
	}, v)
	return n
}

// IsNotEqualTo reports a missing value or one that differs from v.
func (n *NullableAssertion[T]) IsNotEqualTo(v T) *NullableAssertion[T] {
	n.check("is_not_equal_to", func(s subject[*T]) bool {
		return s.null || !equal(*s.value, v)
	}, v)
	return n
}
