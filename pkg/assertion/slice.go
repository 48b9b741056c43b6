package assertion

import (
	"fmt"
	"strings"
)

// SliceAssertion guards a slice. A nil slice is null.
type SliceAssertion[E any] struct {
	*Assertion[[]E]
}

// Slice starts an assertion over s.
func Slice[E any](s []E, name ...string) *SliceAssertion[E] {
	return &SliceAssertion[E]{newAssertion(s, s == nil, typeName[[]E](), name)}
}

func (s *SliceAssertion[E]) Extend(fn func([]E) Result) *SliceAssertion[E] {
	s.Assertion.Extend(fn)
	return s
}

func (s *SliceAssertion[E]) IsTrue(pred func([]E) bool, msg ...string) *SliceAssertion[E] {
	s.Assertion.IsTrue(pred, msg...)
	return s
}

func (s *SliceAssertion[E]) IsFalse(pred func([]E) bool, msg ...string) *SliceAssertion[E] {
	s.Assertion.IsFalse(pred, msg...)
	return s
}

func (s *SliceAssertion[E]) IsEqualTo(v []E) *SliceAssertion[E] {
	s.Assertion.IsEqualTo(v)
	return s
}

func (s *SliceAssertion[E]) IsNotEqualTo(v []E) *SliceAssertion[E] {
	s.Assertion.IsNotEqualTo(v)
	return s
}

// Or adds another slice subject.
func (s *SliceAssertion[E]) Or(v []E, name string) *SliceAssertion[E] {
	s.Assertion.Or(v, name)
	return s
}

func (s *SliceAssertion[E]) OrWith(other Asserter, sep ...string) *SliceAssertion[E] {
	s.Assertion.OrWith(other, sep...)
	return s
}

func (s *SliceAssertion[E]) StopIfNotValid() *SliceAssertion[E] {
	s.Assertion.StopIfNotValid()
	return s
}

// IsNull reports a nil slice and stops the chain.
func (s *SliceAssertion[E]) IsNull() *SliceAssertion[E] {
	s.isNull()
	return s
}

// IsNotNull reports a non-nil slice and stops the chain.
func (s *SliceAssertion[E]) IsNotNull() *SliceAssertion[E] {
	s.isNotNull()
	return s
}

// IsEmpty reports a nil or empty slice.
func (s *SliceAssertion[E]) IsEmpty() *SliceAssertion[E] {
	s.check("is_empty", func(v subject[[]E]) bool { return len(v.value) == 0 })
	return s
}

// IsNotEmpty reports a slice with at least one item.
func (s *SliceAssertion[E]) IsNotEmpty() *SliceAssertion[E] {
	s.check("is_not_empty", func(v subject[[]E]) bool { return len(v.value) > 0 })
	return s
}

// ContainsLessThan reports fewer than n items.
func (s *SliceAssertion[E]) ContainsLessThan(n int) *SliceAssertion[E] {
	s.check("contains_less_than", func(v subject[[]E]) bool { return len(v.value) < n }, n)
	return s
}

// ContainsMoreThan reports more than n items.
func (s *SliceAssertion[E]) ContainsMoreThan(n int) *SliceAssertion[E] {
	s.check("contains_more_than", func(v subject[[]E]) bool { return len(v.value) > n }, n)
	return s
}

// Contains reports when any of items is missing.
func (s *SliceAssertion[E]) Contains(items ...E) *SliceAssertion[E] {
	s.missing("contains", items)
	return s
}

// DoesNotContain reports when any of items is missing and names
// the missing ones.
func (s *SliceAssertion[E]) DoesNotContain(items ...E) *SliceAssertion[E] {
	s.missing("collection_does_not_contain", items)
	return s
}

func (s *SliceAssertion[E]) missing(key string, items []E) {
	s.evaluate(key, func(v subject[[]E]) Result {
		var absent []string
		for _, item := range items {
			if !containsItem(v.value, item) {
				absent = append(absent, fmt.Sprint(item))
			}
		}
		if len(absent) == 0 {
			return Passed()
		}
		return CheckResult(key, strings.Join(absent, ", "))
	})
}

// ContainsDuplicates reports structurally equal elements.
func (s *SliceAssertion[E]) ContainsDuplicates() *SliceAssertion[E] {
	s.check("contains_duplicates", func(v subject[[]E]) bool {
		for i := range v.value {
			if containsItem(v.value[i+1:], v.value[i]) {
				return true
			}
		}
		return false
	})
	return s
}

func containsItem[E any](items []E, item E) bool {
	for _, e := range items {
		if equal(e, item) {
			return true
		}
	}
	return false
}
