package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type predicateCase struct {
	input string
	valid bool
}

func runPredicate(t *testing.T, predicate func(string) bool, tests []predicateCase) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.valid, predicate(tt.input))
		})
	}
}

func TestEmail(t *testing.T) {
	runPredicate(t, Email, []predicateCase{
		{"user@example.com", true},
		{"first.last+tag@sub.example.org", true},
		{"", false},
		{"not-an-email", false},
		{"John <john@example.com>", false},
		{"@example.com", false},
	})
}

func TestURL(t *testing.T) {
	runPredicate(t, URL, []predicateCase{
		{"https://example.com/path?q=1", true},
		{"ftp://files.example.com", true},
		{"/relative/path", false},
		{"example.com", false},
		{"  ", false},
	})
}

func TestUUID(t *testing.T) {
	runPredicate(t, UUID, []predicateCase{
		{"f47ac10b-58cc-0372-8567-0e02b2c3d479", true},
		{"F47AC10B-58CC-0372-8567-0E02B2C3D479", true},
		{"f47ac10b58cc", false},
		{"", false},
	})
}

func TestIBAN(t *testing.T) {
	runPredicate(t, IBAN, []predicateCase{
		{"GB82 WEST 1234 5698 7654 32", true},
		{"DE89370400440532013000", true},
		{"se4550000000058398257466", true},
		{"GB82 WEST 1234 5698 7654 33", false},
		{"DE8937040044053201300", false},
		{"ZZ89370400440532013000", false},
		{"DE89-3704-0044-0532-0130-00", false},
		{"short", false},
	})
}

func TestSWIFT(t *testing.T) {
	runPredicate(t, SWIFT, []predicateCase{
		{"DEUTDEFF", true},
		{"DEUTDEFF500", true},
		{"eslssess", true},
		{"DEUT", false},
		{"DEUTDEFF5", false},
		{"1EUTDEFF", false},
	})
}

func TestISBN(t *testing.T) {
	runPredicate(t, ISBN, []predicateCase{
		{"0-306-40615-2", true},
		{"0-8044-2957-X", true},
		{"978-0-306-40615-7", true},
		{"978 0 306 40615 7", true},
		{"0-306-40615-3", false},
		{"978-0-306-40615-8", false},
		{"X-306-40615-2", false},
		{"12345", false},
	})
}

func TestIMO(t *testing.T) {
	runPredicate(t, IMO, []predicateCase{
		{"IMO 9074729", true},
		{"IMO9074729", true},
		{"9074729", true},
		{"imo 9074729", true},
		{"IMO 9074728", false},
		{"IMO 907472", false},
	})
}

func TestLuhn(t *testing.T) {
	runPredicate(t, Luhn, []predicateCase{
		{"79927398713", true},
		{"4111 1111 1111 1111", true},
		{"79927398710", false},
		{"7992a398713", false},
		{"", false},
	})
}

func TestPersonalNumber(t *testing.T) {
	runPredicate(t, PersonalNumber, []predicateCase{
		{"811228-9874", true},
		{"8112289874", true},
		{"19811228-9874", true},
		{"198112289874", true},
		{"811228+9874", true},
		{"811228-9875", false},
		{"811328-9874", false},
		{"810231-1234", false},
		{"81122-9874", false},
	})
}

func TestZipCode(t *testing.T) {
	runPredicate(t, ZipCode, []predicateCase{
		{"12345", true},
		{"12345-6789", true},
		{"1234", false},
		{"12345-678", false},
		{"ABCDE", false},
	})
}

func TestPhoneNumber(t *testing.T) {
	runPredicate(t, PhoneNumber, []predicateCase{
		{"+46 (0)8-123 456", true},
		{"555.123.4567", true},
		{"12345", false},
		{"1234567890123456", false},
		{"555-CALL-NOW", false},
	})
}

func TestSSN(t *testing.T) {
	runPredicate(t, SSN, []predicateCase{
		{"123-45-6789", true},
		{"123456789", true},
		{"000-45-6789", false},
		{"666-45-6789", false},
		{"912-45-6789", false},
		{"123-00-6789", false},
		{"123-45-0000", false},
		{"12-345-6789", false},
	})
}
