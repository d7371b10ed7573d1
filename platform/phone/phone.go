// Package phone wraps the libphonenumber port behind a small parsing
// capability. This is part of the platform layer and contains no business logic.
package phone

import (
	"errors"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// ErrUnparseable is returned when a raw string cannot be interpreted as a
// phone number, even with a country hint.
var ErrUnparseable = errors.New("unparseable phone number")

// Parsed is the structured decomposition of a raw number string.
type Parsed struct {
	// Country is the detected ISO 3166-1 alpha-2 region, or "" when the
	// number cannot be attributed to any region.
	Country string
	// NationalNumber is the national significant number, digits only.
	NationalNumber string
	// Valid reports whether the number matches a known numbering plan.
	Valid bool
	// Possible reports whether the number has a plausible length/pattern.
	Possible bool
	// E164 is the canonical international form, set only for valid numbers.
	E164 string
}

// Parser decomposes raw number strings into Parsed values.
type Parser interface {
	// Parse interprets raw using hintCountry to disambiguate national-format
	// input. It returns ErrUnparseable for input it cannot interpret.
	Parse(raw, hintCountry string) (Parsed, error)
	// FormatIncomplete reformats a possibly partial number for display while
	// the user is still typing. It falls back to the trimmed input whenever
	// no better rendering exists.
	FormatIncomplete(raw, hintCountry string) string
}

// LibParser implements Parser on github.com/nyaruka/phonenumbers.
type LibParser struct{}

// NewParser creates the libphonenumber-backed parser.
func NewParser() LibParser {
	return LibParser{}
}

// Parse implements Parser.
func (LibParser) Parse(raw, hintCountry string) (Parsed, error) {
	num, err := phonenumbers.Parse(raw, hintCountry)
	if err != nil {
		return Parsed{}, ErrUnparseable
	}
	if !phonenumbers.IsPossibleNumber(num) {
		// The library accepts digit runs that cannot possibly be dialed
		// under any numbering plan (wrong length for every plan). There is
		// no structured number in that input.
		return Parsed{}, ErrUnparseable
	}

	parsed := Parsed{
		Country:        phonenumbers.GetRegionCodeForNumber(num),
		NationalNumber: phonenumbers.GetNationalSignificantNumber(num),
		Valid:          phonenumbers.IsValidNumber(num),
		Possible:       phonenumbers.IsPossibleNumber(num),
	}
	if parsed.Valid {
		parsed.E164 = phonenumbers.Format(num, phonenumbers.E164)
	}
	return parsed, nil
}

// FormatIncomplete implements Parser.
func (LibParser) FormatIncomplete(raw, hintCountry string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return trimmed
	}

	num, err := phonenumbers.Parse(trimmed, hintCountry)
	if err != nil {
		return trimmed
	}
	if !phonenumbers.IsPossibleNumber(num) {
		return trimmed
	}

	if hintCountry != "" && phonenumbers.GetRegionCodeForNumber(num) == hintCountry {
		return phonenumbers.Format(num, phonenumbers.NATIONAL)
	}
	return phonenumbers.Format(num, phonenumbers.INTERNATIONAL)
}
