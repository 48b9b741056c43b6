package assertion

import (
	"regexp"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"digital.vasic.assertions/pkg/validators"
)

// StringAssertion guards a string. A subject created from a nil
// pointer is null; other checks see it as "".
type StringAssertion struct {
	*Assertion[string]
	groups map[string]string
}

// String starts an assertion over s.
func String(s string, name ...string) *StringAssertion {
	return &StringAssertion{Assertion: newAssertion(s, false, "string", name)}
}

// StringPtr starts an assertion over *p. A nil p is null.
func StringPtr(p *string, name ...string) *StringAssertion {
	if p == nil {
		return &StringAssertion{Assertion: newAssertion("", true, "string", name)}
	}
	return &StringAssertion{Assertion: newAssertion(*p, false, "string", name)}
}

func (s *StringAssertion) Extend(fn func(string) Result) *StringAssertion {
	s.Assertion.Extend(fn)
	return s
}

func (s *StringAssertion) IsTrue(pred func(string) bool, msg ...string) *StringAssertion {
	s.Assertion.IsTrue(pred, msg...)
	return s
}

func (s *StringAssertion) IsFalse(pred func(string) bool, msg ...string) *StringAssertion {
	s.Assertion.IsFalse(pred, msg...)
	return s
}

func (s *StringAssertion) IsEqualTo(v string) *StringAssertion {
	s.Assertion.IsEqualTo(v)
	return s
}

func (s *StringAssertion) IsNotEqualTo(v string) *StringAssertion {
	s.Assertion.IsNotEqualTo(v)
	return s
}

// Or adds another string subject.
func (s *StringAssertion) Or(v string, name string) *StringAssertion {
	s.or(v, false, name)
	return s
}

// OrPtr adds another string subject from a pointer; nil is null.
func (s *StringAssertion) OrPtr(p *string, name string) *StringAssertion {
	if p == nil {
		s.or("", true, name)
	} else {
		s.or(*p, false, name)
	}
	return s
}

func (s *StringAssertion) OrWith(other Asserter, sep ...string) *StringAssertion {
	s.Assertion.OrWith(other, sep...)
	return s
}

func (s *StringAssertion) StopIfNotValid() *StringAssertion {
	s.Assertion.StopIfNotValid()
	return s
}

// IsNull reports a null subject and stops the chain.
func (s *StringAssertion) IsNull() *StringAssertion {
	s.isNull()
	return s
}

// IsNotNull reports a non-null subject and stops the chain.
func (s *StringAssertion) IsNotNull() *StringAssertion {
	s.isNotNull()
	return s
}

// IsEmpty reports a null or empty string.
func (s *StringAssertion) IsEmpty() *StringAssertion {
	s.check("is_empty", func(v subject[string]) bool { return v.null || v.value == "" })
	return s
}

// IsNotEmpty reports a non-null, non-empty string.
func (s *StringAssertion) IsNotEmpty() *StringAssertion {
	s.check("is_not_empty", func(v subject[string]) bool { return !v.null && v.value != "" })
	return s
}

// IsEmptyOrWhitespace reports a null, empty or blank string.
func (s *StringAssertion) IsEmptyOrWhitespace() *StringAssertion {
	s.check("is_empty_or_whitespace", func(v subject[string]) bool {
		return v.null || strings.TrimSpace(v.value) == ""
	})
	return s
}

// IsShorterThan reports fewer than n runes.
func (s *StringAssertion) IsShorterThan(n int) *StringAssertion {
	s.check("is_shorter_than", func(v subject[string]) bool {
		return utf8.RuneCountInString(v.value) < n
	}, n)
	return s
}

// IsLongerThan reports more than n runes.
func (s *StringAssertion) IsLongerThan(n int) *StringAssertion {
	s.check("is_longer_than", func(v subject[string]) bool {
		return utf8.RuneCountInString(v.value) > n
	}, n)
	return s
}

// IsNotLength reports a rune count other than n.
func (s *StringAssertion) IsNotLength(n int) *StringAssertion {
	s.check("is_not_length", func(v subject[string]) bool {
		return utf8.RuneCountInString(v.value) != n
	}, n)
	return s
}

// Contains reports when sub occurs in the subject.
func (s *StringAssertion) Contains(sub string) *StringAssertion {
	s.check("string_contains", func(v subject[string]) bool {
		return strings.Contains(v.value, sub)
	}, sub)
	return s
}

// DoesNotContain reports when sub does not occur in the subject.
func (s *StringAssertion) DoesNotContain(sub string) *StringAssertion {
	s.check("string_does_not_contain", func(v subject[string]) bool {
		return !strings.Contains(v.value, sub)
	}, sub)
	return s
}

// DoesNotStartWith reports a string lacking prefix.
func (s *StringAssertion) DoesNotStartWith(prefix string) *StringAssertion {
	s.check("does_not_start_with", func(v subject[string]) bool {
		return !strings.HasPrefix(v.value, prefix)
	}, prefix)
	return s
}

// DoesNotEndWith reports a string lacking suffix.
func (s *StringAssertion) DoesNotEndWith(suffix string) *StringAssertion {
	s.check("does_not_end_with", func(v subject[string]) bool {
		return !strings.HasSuffix(v.value, suffix)
	}, suffix)
	return s
}

// DoesNotContainDigit reports a string without any Unicode digit.
func (s *StringAssertion) DoesNotContainDigit() *StringAssertion {
	s.lacks("does_not_contain_digit", unicode.IsDigit)
	return s
}

// DoesNotContainUpperCase reports a string without an upper case letter.
func (s *StringAssertion) DoesNotContainUpperCase() *StringAssertion {
	s.lacks("does_not_contain_upper_case", unicode.IsUpper)
	return s
}

// DoesNotContainLowerCase reports a string without a lower case letter.
func (s *StringAssertion) DoesNotContainLowerCase() *StringAssertion {
	s.lacks("does_not_contain_lower_case", unicode.IsLower)
	return s
}

// DoesNotContainSpecialCharacter reports a subject without any
// punctuation or symbol.
func (s *StringAssertion) DoesNotContainSpecialCharacter() *StringAssertion {
	s.lacks("does_not_contain_special_character", func(r rune) bool {
		return unicode.IsPunct(r) || unicode.IsSymbol(r)
	})
	return s
}

func (s *StringAssertion) lacks(key string, class func(rune) bool) {
	s.check(key, func(v subject[string]) bool {
		return !strings.ContainsFunc(v.value, class)
	})
}

// Match reports when the subject matches pattern. An invalid
// pattern panics with ErrInvalidPattern.
func (s *StringAssertion) Match(pattern string) *StringAssertion {
	re := compile(pattern)
	s.check("match", func(v subject[string]) bool {
		return s.capture(re, v.value)
	}, pattern)
	return s
}

// DoesNotMatch reports when the subject does not match pattern.
func (s *StringAssertion) DoesNotMatch(pattern string) *StringAssertion {
	re := compile(pattern)
	s.check("does_not_match", func(v subject[string]) bool {
		return !s.capture(re, v.value)
	}, pattern)
	return s
}

// Groups returns the named groups of the last successful match.
func (s *StringAssertion) Groups() map[string]string {
	groups := make(map[string]string, len(s.groups))
	for k, v := range s.groups {
		groups[k] = v
	}
	return groups
}

func (s *StringAssertion) capture(re *regexp.Regexp, value string) bool {
	m := re.FindStringSubmatch(value)
	if m == nil {
		return false
	}
	groups := make(map[string]string)
	for i, name := range re.SubexpNames() {
		if name != "" && i < len(m) {
			groups[name] = m[i]
		}
	}
	s.groups = groups
	return true
}

var patterns sync.Map

func compile(pattern string) *regexp.Regexp {
	if re, ok := patterns.Load(pattern); ok {
		return re.(*regexp.Regexp)
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		e := misuse(ErrInvalidPattern, "%q: %v", pattern, err)
		e.Inner = err
		panic(e)
	}
	actual, _ := patterns.LoadOrStore(pattern, re)
	return actual.(*regexp.Regexp)
}

func (s *StringAssertion) invalid(key string, valid func(string) bool) *StringAssertion {
	s.check(key, func(v subject[string]) bool { return !valid(v.value) })
	return s
}

// IsNotValidEmail reports a string that is not a bare email address.
func (s *StringAssertion) IsNotValidEmail() *StringAssertion {
	return s.invalid("is_not_valid_email", validators.Email)
}

// IsNotValidURL reports a string that is not an absolute URL with a host.
func (s *StringAssertion) IsNotValidURL() *StringAssertion {
	return s.invalid("is_not_valid_url", validators.URL)
}

// IsNotValidUUID reports a string that does not parse as a UUID.
func (s *StringAssertion) IsNotValidUUID() *StringAssertion {
	return s.invalid("is_not_valid_uuid", validators.UUID)
}

// IsNotValidIBAN reports a wrong length for the country or a failed mod-97 check.
func (s *StringAssertion) IsNotValidIBAN() *StringAssertion {
	return s.invalid("is_not_valid_iban", validators.IBAN)
}

// IsNotValidSWIFT reports a string that is not an 8 or 11 character BIC.
func (s *StringAssertion) IsNotValidSWIFT() *StringAssertion {
	return s.invalid("is_not_valid_swift", validators.SWIFT)
}

// IsNotValidISBN reports a string that is neither a valid ISBN-10 nor ISBN-13.
func (s *StringAssertion) IsNotValidISBN() *StringAssertion {
	return s.invalid("is_not_valid_isbn", validators.ISBN)
}

// IsNotValidIMO reports a ship number with a bad IMO check digit.
func (s *StringAssertion) IsNotValidIMO() *StringAssertion {
	return s.invalid("is_not_valid_imo", validators.IMO)
}

// IsNotValidLuhn reports digits failing the Luhn checksum.
func (s *StringAssertion) IsNotValidLuhn() *StringAssertion {
	return s.invalid("is_not_valid_luhn", validators.Luhn)
}

// IsNotValidPersonalNumber checks Swedish personal and
// coordination numbers.
func (s *StringAssertion) IsNotValidPersonalNumber() *StringAssertion {
	return s.invalid("is_not_valid_personal_number", validators.PersonalNumber)
}

// IsNotValidZipCode reports a string that is not a US ZIP or ZIP+4 code.
func (s *StringAssertion) IsNotValidZipCode() *StringAssertion {
	return s.invalid("is_not_valid_zip_code", validators.ZipCode)
}

// IsNotValidPhoneNumber reports fewer than 7 or more than 15 digits.
func (s *StringAssertion) IsNotValidPhoneNumber() *StringAssertion {
	return s.invalid("is_not_valid_phone_number", validators.PhoneNumber)
}

// IsNotValidSSN reports a malformed or never-issued US social security number.
func (s *StringAssertion) IsNotValidSSN() *StringAssertion {
	return s.invalid("is_not_valid_ssn", validators.SSN)
}
