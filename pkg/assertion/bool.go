package assertion

// BoolAssertion guards a bool.
type BoolAssertion struct {
	*Assertion[bool]
}

// Bool starts an assertion over b.
func Bool(b bool, name ...string) *BoolAssertion {
	return &BoolAssertion{newAssertion(b, false, "bool", name)}
}

// IsTrue reports a true subject.
func (b *BoolAssertion) IsTrue() *BoolAssertion {
	b.check("bool_is_true", func(s subject[bool]) bool { return s.value })
	return b
}

// IsFalse reports a false subject.
func (b *BoolAssertion) IsFalse() *BoolAssertion {
	b.check("bool_is_false", func(s subject[bool]) bool { return !s.value })
	return b
}

func (b *BoolAssertion) Extend(fn func(bool) Result) *BoolAssertion {
	b.Assertion.Extend(fn)
	return b
}

func (b *BoolAssertion) IsEqualTo(v bool) *BoolAssertion {
	b.Assertion.IsEqualTo(v)
	return b
}

func (b *BoolAssertion) IsNotEqualTo(v bool) *BoolAssertion {
	b.Assertion.IsNotEqualTo(v)
	return b
}

// Or adds another bool subject.
func (b *BoolAssertion) Or(v bool, name string) *BoolAssertion {
	b.Assertion.Or(v, name)
	return b
}

func (b *BoolAssertion) OrWith(other Asserter, sep ...string) *BoolAssertion {
	b.Assertion.OrWith(other, sep...)
	return b
}

func (b *BoolAssertion) StopIfNotValid() *BoolAssertion {
	b.Assertion.StopIfNotValid()
	return b
}
