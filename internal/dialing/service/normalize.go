package service

import (
	"strings"
	"unicode"

	"dialplan_backend/internal/dialing/registry"
	"dialplan_backend/platform/phone"
)

// InvalidE164 is the sentinel rendered in place of a canonical number when
// the input does not normalize to a valid one.
const InvalidE164 = "---"

// PartialConfig carries the caller-supplied formatting hints. Nil fields are
// absent and fall back to the engine defaults during the overlay merge.
type PartialConfig struct {
	Country        *string
	TrunkPrefix    *string
	AddLeadingZero *bool
}

// Result is the outcome of one normalization. It is always produced; failure
// is encoded in IsValid plus the sentinel strings, never as an error.
type Result struct {
	E164       string
	DialFormat string
	IsValid    bool
}

// effectiveConfig is the complete formatting rule in force for one
// normalization call.
type effectiveConfig struct {
	Country string
	registry.CountryConfig
}

// mergeConfig overlays the caller's set fields onto the engine defaults
// (empty country, empty trunk prefix, no leading zero). Caller fields win.
func mergeConfig(caller PartialConfig) effectiveConfig {
	var eff effectiveConfig
	if caller.Country != nil {
		eff.Country = *caller.Country
	}
	if caller.TrunkPrefix != nil {
		eff.TrunkPrefix = *caller.TrunkPrefix
	}
	if caller.AddLeadingZero != nil {
		eff.AddLeadingZero = *caller.AddLeadingZero
	}
	return eff
}

// Normalize turns a raw user-entered number into its canonical E.164 form and
// the dialing format for the switch, applying the per-country rule from reg
// when the parsed country has one. The registry rule replaces the caller
// config wholesale; caller hints never leak through once the actual country
// is known.
//
// Normalize is total: parser failures produce an IsValid=false result with
// the sentinel E.164 and an empty dialing format. No error ever escapes.
func Normalize(parser phone.Parser, reg *registry.Registry, raw string, caller PartialConfig) Result {
	eff := mergeConfig(caller)

	parsed, err := parser.Parse(raw, eff.Country)
	if err != nil {
		return unparseableResult()
	}
	if parsed.Country == "" {
		// Parsed, but the hint was not enough to attribute the input to any
		// country: no structured number to work with.
		return unparseableResult()
	}

	// Registry rule for the detected country overrides everything the caller
	// supplied, country included.
	if cfg, ok := reg.Get(parsed.Country); ok {
		eff = effectiveConfig{Country: parsed.Country, CountryConfig: cfg}
	}

	processed := parsed.NationalNumber
	if eff.AddLeadingZero && !strings.HasPrefix(processed, "0") {
		processed = "0" + processed
	}

	candidate := processed
	if eff.TrunkPrefix != "" {
		candidate = eff.TrunkPrefix + processed
	}

	isValid := parsed.Valid && parsed.Possible

	e164 := InvalidE164
	if isValid {
		e164 = parsed.E164
	}

	// The nationalized dialing format is only produced when the detected
	// country matches the config in force; otherwise the switch gets the raw
	// input with whitespace stripped, even for a valid parse.
	dialFormat := stripWhitespace(raw)
	if isValid && parsed.Country == eff.Country {
		dialFormat = candidate
	}

	return Result{E164: e164, DialFormat: dialFormat, IsValid: isValid}
}

func unparseableResult() Result {
	return Result{E164: InvalidE164, DialFormat: "", IsValid: false}
}

func stripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
