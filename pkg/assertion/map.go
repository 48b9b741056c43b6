package assertion

// MapAssertion guards a map. A nil map is null.
type MapAssertion[K comparable, V any] struct {
	*Assertion[map[K]V]
}

// Map starts an assertion over m.
func Map[K comparable, V any](m map[K]V, name ...string) *MapAssertion[K, V] {
	return &MapAssertion[K, V]{newAssertion(m, m == nil, typeName[map[K]V](), name)}
}

func (m *MapAssertion[K, V]) Extend(fn func(map[K]V) Result) *MapAssertion[K, V] {
	m.Assertion.Extend(fn)
	return m
}

func (m *MapAssertion[K, V]) IsTrue(pred func(map[K]V) bool, msg ...string) *MapAssertion[K, V] {
	m.Assertion.IsTrue(pred, msg...)
	return m
}

func (m *MapAssertion[K, V]) IsFalse(pred func(map[K]V) bool, msg ...string) *MapAssertion[K, V] {
	m.Assertion.IsFalse(pred, msg...)
	return m
}

func (m *MapAssertion[K, V]) IsEqualTo(v map[K]V) *MapAssertion[K, V] {
	m.Assertion.IsEqualTo(v)
	return m
}

func (m *MapAssertion[K, V]) IsNotEqualTo(v map[K]V) *MapAssertion[K, V] {
	m.Assertion.IsNotEqualTo(v)
	return m
}

// Or adds another map subject.
func (m *MapAssertion[K, V]) Or(v map[K]V, name string) *MapAssertion[K, V] {
	m.Assertion.Or(v, name)
	return m
}

func (m *MapAssertion[K, V]) OrWith(other Asserter, sep ...string) *MapAssertion[K, V] {
	m.Assertion.OrWith(other, sep...)
	return m
}

func (m *MapAssertion[K, V]) StopIfNotValid() *MapAssertion[K, V] {
	m.Assertion.StopIfNotValid()
	return m
}

// IsNull reports a nil map and stops the chain.
func (m *MapAssertion[K, V]) IsNull() *MapAssertion[K, V] {
	m.isNull()
	return m
}

// IsNotNull reports a non-nil map and stops the chain.
func (m *MapAssertion[K, V]) IsNotNull() *MapAssertion[K, V] {
	m.isNotNull()
	return m
}

// IsEmpty reports a map without entries. A nil map is empty.
func (m *MapAssertion[K, V]) IsEmpty() *MapAssertion[K, V] {
	m.check("is_empty", func(s subject[map[K]V]) bool { return len(s.value) == 0 })
	return m
}

// IsNotEmpty reports a map with at least one entry.
func (m *MapAssertion[K, V]) IsNotEmpty() *MapAssertion[K, V] {
	m.check("is_not_empty", func(s subject[map[K]V]) bool { return len(s.value) > 0 })
	return m
}

// ContainsLessThan reports fewer than n entries.
func (m *MapAssertion[K, V]) ContainsLessThan(n int) *MapAssertion[K, V] {
	m.check("contains_less_than", func(s subject[map[K]V]) bool { return len(s.value) < n }, n)
	return m
}

// ContainsMoreThan reports more than n entries.
func (m *MapAssertion[K, V]) ContainsMoreThan(n int) *MapAssertion[K, V] {
	m.check("contains_more_than", func(s subject[map[K]V]) bool { return len(s.value) > n }, n)
	return m
}

// ContainsKey reports when key is present.
func (m *MapAssertion[K, V]) ContainsKey(key K) *MapAssertion[K, V] {
	m.check("contains_key", func(s subject[map[K]V]) bool {
		_, ok := s.value[key]
		return ok
	}, key)
	return m
}

// DoesNotContainKey reports when key is missing.
func (m *MapAssertion[K, V]) DoesNotContainKey(key K) *MapAssertion[K, V] {
	m.check("does_not_contain_key", func(s subject[map[K]V]) bool {
		_, ok := s.value[key]
		return !ok
	}, key)
	return m
}
