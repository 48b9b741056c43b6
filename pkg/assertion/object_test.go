package assertion

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type address struct {
	Street string
	Zip    string
}

func (a address) IsInvalid() *Validation {
	return NewValidation(
		String(a.Street, "street").IsEmpty(),
		String(a.Zip, "zip").IsNotValidZipCode(),
	)
}

type customer struct {
	Name    string
	Age     int
	Address address
}

func (c *customer) IsInvalid() *Validation {
	return NewValidation(
		String(c.Name, "name").IsEmptyOrWhitespace(),
		Int(c.Age, "age").IsNegative(),
		Object(c.Address, "address").IsInvalid(),
	)
}

type plain struct {
	Name string
}

func TestObject_IsInvalid(t *testing.T) {
	valid := &customer{Name: "Ada", Age: 36, Address: address{Street: "Main 1", Zip: "12345"}}
	assert.NoError(t, Object(valid, "customer").IsInvalid().Err())

	broken := &customer{Name: " ", Age: -1, Address: address{Zip: "1"}}
	err := Object(broken, "customer").IsInvalid().Err()

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRequired))
	assert.Equal(t,
		"name must not be empty or whitespace. age must not be negative. street must not be empty. zip must be a valid zip code",
		err.Error())
}

func TestObject_IsInvalidOnValueWithPointerMethod(t *testing.T) {
	broken := customer{Age: -1, Name: "x", Address: address{Street: "s", Zip: "12345"}}

	assert.Equal(t, "age must not be negative", Object(broken).IsInvalid().String())
}

func TestObject_IsInvalidMissingMember(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.ErrorIs(t, err, ErrMissingMember)
		assert.Contains(t, err.Error(), "plain does not implement Validatable")
	}()
	Object(plain{Name: "x"}).IsInvalid()
}

func TestObject_IsInvalidSkipsNull(t *testing.T) {
	var c *customer

	a := Object(c, "customer").IsInvalid()
	assert.False(t, a.IsValid())

	b := Object(c, "customer").IsNull().IsInvalid()
	assert.Equal(t, "customer is required", b.String())
}

func TestObject_Null(t *testing.T) {
	var p *plain
	var m map[string]int

	assert.True(t, Object(p).IsNull().IsValid())
	assert.True(t, Object(m).IsNull().IsValid())
	assert.True(t, Object[any](nil).IsNull().IsValid())
	assert.False(t, Object(plain{}).IsNull().IsValid())
	assert.Equal(t, "*assertion.plain", Object(p).Name())
}

func TestObject_Equality(t *testing.T) {
	var a, b *plain

	assert.True(t, Object(a).IsEqualTo(b).IsValid(), "nil equals nil")
	assert.True(t, Object(plain{Name: "x"}).IsEqualTo(plain{Name: "x"}).IsValid())
	assert.True(t, Object(&plain{Name: "x"}).IsNotEqualTo(&plain{Name: "y"}).IsValid())
	assert.False(t, Object(&plain{Name: "x"}).IsEqualTo(nil).IsValid())
}

func TestObject_PropertyValues(t *testing.T) {
	left := customer{Name: "Ada", Age: 36, Address: address{Street: "Main 1"}}
	same := left
	other := customer{Name: "Ada", Age: 37, Address: address{Street: "Side 2"}}

	assert.True(t, Object(left).PropertyValuesMatch(same).IsValid())
	assert.False(t, Object(left).PropertyValuesMatch(other).IsValid())

	assert.False(t, Object(left).PropertyValuesDoNotMatch(same).IsValid())
	diff := Object(left, "left").PropertyValuesDoNotMatch(other)
	require.True(t, diff.IsValid())
	assert.Contains(t, diff.String(), "differs in Age, Address.Street")
}

func TestAnyOf(t *testing.T) {
	var a, c *plain
	b := &plain{}

	msg := AnyOf(a, "a").Or(b, "b").Or(c, "c").IsNull().String()
	assert.Equal(t, "a is required and c is required", msg)
}

func TestObject_DefaultNameOfInterfaceSubject(t *testing.T) {
	var none any
	assert.Equal(t, "value", Object(none).Name())
	assert.Equal(t, "int", Object[any](3).Name())
	assert.Equal(t, "*assertion.plain", Object[any](&plain{}).Or(&plain{}, "").subjects[1].name)

	msg := Int(1, "x").IsEqualTo(1).And().Object(nil).IsNull().String()
	assert.Equal(t, "x must not be equal to 1 when value is null", msg)
}

func TestValidation(t *testing.T) {
	v := NewValidation(
		Int(0, "a").IsZero(),
		Int(1, "b").IsZero(),
		Int(-1, "c").IsNegative().IsZero(),
	)

	assert.True(t, v.IsValid())
	assert.Equal(t, 2, v.ErrorCount())
	assert.Equal(t, "a must not be zero. c must not be negative", v.String())
	assert.ErrorIs(t, v.Err(), ErrRequired)

	empty := NewValidation()
	assert.False(t, empty.IsValid())
	assert.NoError(t, empty.Err())

	assert.Panics(t, func() { NewValidation(nil) })
}

func TestValidation_UsesConfiguredSeparator(t *testing.T) {
	t.Cleanup(Reset)
	require.NoError(t, Configure(WithConfig(Config{OrSeparator: "; "})))

	v := NewValidation(Int(0, "a").IsZero(), Int(-1, "b").IsNegative())
	assert.Equal(t, "a must not be zero; b must not be negative", v.String())
}

func TestValidation_MergedWithOrWith(t *testing.T) {
	v := NewValidation(String("", "name").IsEmpty())

	a := Int(0, "id").IsZero().OrWith(v)
	assert.Equal(t, "id must not be zero. name must not be empty", a.String())
}
