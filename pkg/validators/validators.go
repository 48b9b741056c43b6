// Package validators holds string predicates for common identifier
// and contact formats. Each predicate reports whether the input is
// well formed; none of them panic.
package validators

import (
	"net/mail"
	"net/url"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

var (
	swiftPattern = regexp.MustCompile(`^[A-Z]{6}[A-Z0-9]{2}([A-Z0-9]{3})?$`)
	zipPattern   = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
	ssnPattern   = regexp.MustCompile(`^(\d{3})-?(\d{2})-?(\d{4})$`)
	imoPattern   = regexp.MustCompile(`^(?:IMO ?)?(\d{7})$`)
	pnrPattern   = regexp.MustCompile(`^(\d{2})?(\d{2})(\d{2})(\d{2})[-+]?(\d{4})$`)
)

// ibanLengths maps ISO country codes to the IBAN length used by
// that country.
var ibanLengths = map[string]int{
	"AD": 24, "AE": 23, "AL": 28, "AT": 20, "AZ": 28, "BA": 20,
	"BE": 16, "BG": 22, "BH": 22, "BR": 29, "CH": 21, "CR": 22,
	"CY": 28, "CZ": 24, "DE": 22, "DK": 18, "DO": 28, "EE": 20,
	"ES": 24, "FI": 18, "FO": 18, "FR": 27, "GB": 22, "GE": 22,
	"GI": 23, "GL": 18, "GR": 27, "GT": 28, "HR": 21, "HU": 28,
	"IE": 22, "IL": 23, "IS": 26, "IT": 27, "JO": 30, "KW": 30,
	"KZ": 20, "LB": 28, "LI": 21, "LT": 20, "LU": 20, "LV": 21,
	"MC": 27, "MD": 24, "ME": 22, "MK": 19, "MR": 27, "MT": 31,
	"MU": 30, "NL": 18, "NO": 15, "PK": 24, "PL": 28, "PS": 29,
	"PT": 25, "QA": 29, "RO": 24, "RS": 22, "SA": 24, "SE": 24,
	"SI": 19, "SK": 24, "SM": 27, "TN": 24, "TR": 26, "UA": 29,
	"VG": 24, "XK": 20,
}

// Email reports whether s is a bare RFC 5322 address such as
// "user@example.com". Display-name forms are rejected.
func Email(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	return addr.Address == s
}

// URL reports whether s is an absolute URL with scheme and host.
func URL(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	u, err := url.ParseRequestURI(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}

// UUID reports whether s parses as a UUID in any of the forms
// accepted by github.com/google/uuid.
func UUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

// IBAN reports whether s is a valid international bank account
// number. Spaces are ignored and letters are case-insensitive.
func IBAN(s string) bool {
	iban := strings.ToUpper(strings.ReplaceAll(s, " ", ""))
	if len(iban) < 15 {
		return false
	}

	want, ok := ibanLengths[iban[:2]]
	if !ok || len(iban) != want {
		return false
	}

	rearranged := iban[4:] + iban[:4]
	remainder := 0
	for _, r := range rearranged {
		switch {
		case r >= '0' && r <= '9':
			remainder = (remainder*10 + int(r-'0')) % 97
		case r >= 'A' && r <= 'Z':
			remainder = (remainder*100 + int(r-'A') + 10) % 97
		default:
			return false
		}
	}
	return remainder == 1
}

// SWIFT reports whether s is a well formed SWIFT/BIC code.
func SWIFT(s string) bool {
	return swiftPattern.MatchString(strings.ToUpper(s))
}

// ISBN reports whether s is a valid ISBN-10 or ISBN-13. Hyphens
// and spaces are ignored.
func ISBN(s string) bool {
	clean := strings.NewReplacer("-", "", " ", "").Replace(s)
	switch len(clean) {
	case 10:
		return isbn10(clean)
	case 13:
		return isbn13(clean)
	default:
		return false
	}
}

func isbn10(s string) bool {
	sum := 0
	for i, r := range s {
		var d int
		switch {
		case r >= '0' && r <= '9':
			d = int(r - '0')
		case (r == 'X' || r == 'x') && i == 9:
			d = 10
		default:
			return false
		}
		sum += d * (10 - i)
	}
	return sum%11 == 0
}

func isbn13(s string) bool {
	sum := 0
	for i, r := range s {
		if r < '0' || r > '9' {
			return false
		}
		d := int(r - '0')
		if i%2 == 1 {
			d *= 3
		}
		sum += d
	}
	return sum%10 == 0
}

// IMO reports whether s is a valid IMO ship identification number,
// with or without the "IMO" prefix.
func IMO(s string) bool {
	m := imoPattern.FindStringSubmatch(strings.ToUpper(strings.TrimSpace(s)))
	if m == nil {
		return false
	}

	digits := m[1]
	sum := 0
	for i := 0; i < 6; i++ {
		sum += int(digits[i]-'0') * (7 - i)
	}
	return sum%10 == int(digits[6]-'0')
}

// Luhn reports whether s is a digit string passing the Luhn
// checksum. Spaces are ignored.
func Luhn(s string) bool {
	clean := strings.ReplaceAll(s, " ", "")
	if clean == "" {
		return false
	}

	sum := 0
	double := false
	for i := len(clean) - 1; i >= 0; i-- {
		c := clean[i]
		if c < '0' || c > '9' {
			return false
		}
		d := int(c - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

// PersonalNumber reports whether s is a valid Swedish personal
// identity number in the 10 or 12 digit form, with an optional
// "-" or "+" separator. Coordination numbers (day + 60) are
// accepted.
func PersonalNumber(s string) bool {
	m := pnrPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return false
	}

	century, yy, mm, dd, tail := m[1], m[2], m[3], m[4], m[5]

	day := atoi(dd)
	if day > 60 {
		day -= 60
	}

	year := atoi(yy) + 2000
	if century != "" {
		year = atoi(century)*100 + atoi(yy)
	}

	month := atoi(mm)
	if month < 1 || month > 12 || day < 1 {
		return false
	}
	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if date.Day() != day {
		return false
	}

	return Luhn(yy + mm + dd + tail)
}

// ZipCode reports whether s is a US ZIP or ZIP+4 code.
func ZipCode(s string) bool {
	return zipPattern.MatchString(s)
}

// PhoneNumber reports whether s contains between 7 and 15 digits
// once common formatting characters are removed.
func PhoneNumber(s string) bool {
	clean := strings.NewReplacer(
		" ", "", "-", "", "(", "", ")", "", ".", "", "+", "",
	).Replace(s)

	if len(clean) < 7 || len(clean) > 15 {
		return false
	}
	for _, r := range clean {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// SSN reports whether s is a plausible US social security number.
// Area 000, 666 and 900-999, group 00 and serial 0000 are never
// issued.
func SSN(s string) bool {
	m := ssnPattern.FindStringSubmatch(s)
	if m == nil {
		return false
	}

	area, group, serial := m[1], m[2], m[3]
	if area == "000" || area == "666" || area[0] == '9' {
		return false
	}
	return group != "00" && serial != "0000"
}

func atoi(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}
