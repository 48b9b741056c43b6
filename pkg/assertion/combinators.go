package assertion

import "time"

// Conjunction links the assertion it was created from to the next
// one. Its constructors mirror the package entry points.
type Conjunction struct {
	prev chained
}

func (c *Conjunction) attach(a interface{ attach(*Conjunction) }) {
	if c == nil || c.prev == nil {
		panic(misuse(ErrInvalidOperation, "And must follow an assertion"))
	}
	a.attach(c)
}

func (a *Assertion[T]) attach(c *Conjunction) {
	if a.link != nil {
		panic(misuse(ErrInvalidOperation, "assertion %s is already part of an And-combination", a.Name()))
	}
	a.link = c
}

// Int starts the next int assertion.
func (c *Conjunction) Int(v int, name ...string) *NumberAssertion[int] {
	return AndNumber(c, v, name...)
}

// Int64 starts the next int64 assertion.
func (c *Conjunction) Int64(v int64, name ...string) *NumberAssertion[int64] {
	return AndNumber(c, v, name...)
}

// Float64 starts the next float64 assertion.
func (c *Conjunction) Float64(v float64, name ...string) *NumberAssertion[float64] {
	return AndNumber(c, v, name...)
}

// String starts the next string assertion.
func (c *Conjunction) String(s string, name ...string) *StringAssertion {
	a := String(s, name...)
	c.attach(a)
	return a
}

// StringPtr starts the next string assertion from a pointer.
func (c *Conjunction) StringPtr(p *string, name ...string) *StringAssertion {
	a := StringPtr(p, name...)
	c.attach(a)
	return a
}

// Bool starts the next bool assertion.
func (c *Conjunction) Bool(b bool, name ...string) *BoolAssertion {
	a := Bool(b, name...)
	c.attach(a)
	return a
}

// Time starts the next time assertion.
func (c *Conjunction) Time(t time.Time, name ...string) *TimeAssertion {
	a := Time(t, name...)
	c.attach(a)
	return a
}

// Duration starts the next duration assertion.
func (c *Conjunction) Duration(d time.Duration, name ...string) *DurationAssertion {
	a := Duration(d, name...)
	c.attach(a)
	return a
}

// Object starts the next assertion over an arbitrary value.
func (c *Conjunction) Object(v any, name ...string) *ObjectAssertion[any] {
	return AndObject(c, v, name...)
}

// AndNumber starts the next numeric assertion.
func AndNumber[N Numeric](c *Conjunction, v N, name ...string) *NumberAssertion[N] {
	a := Number(v, name...)
	c.attach(a)
	return a
}

// AndSlice starts the next slice assertion.
func AndSlice[E any](c *Conjunction, s []E, name ...string) *SliceAssertion[E] {
	a := Slice(s, name...)
	c.attach(a)
	return a
}

// AndMap starts the next map assertion.
func AndMap[K comparable, V any](c *Conjunction, m map[K]V, name ...string) *MapAssertion[K, V] {
	a := Map(m, name...)
	c.attach(a)
	return a
}

// AndNullable starts the next nullable assertion.
func AndNullable[T any](c *Conjunction, p *T, name ...string) *NullableAssertion[T] {
	a := Nullable(p, name...)
	c.attach(a)
	return a
}

// AndObject starts the next object assertion.
func AndObject[T any](c *Conjunction, v T, name ...string) *ObjectAssertion[T] {
	a := Object(v, name...)
	c.attach(a)
	return a
}

// AnyOf starts an object assertion meant to be widened with Or.
func AnyOf[T any](v T, name string) *ObjectAssertion[T] {
	return Object(v, name)
}
