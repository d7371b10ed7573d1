package transport

// NormalizeRequest contains the raw number and the caller's formatting hints.
// All hint fields are optional; a missing country falls back to the session's
// default country before normalization runs.
type NormalizeRequest struct {
	Raw            string  `json:"raw"`
	Country        *string `json:"country,omitempty" validate:"omitempty,iso3166_1_alpha2"`
	TrunkPrefix    *string `json:"trunkPrefix,omitempty" validate:"omitempty,max=8"`
	AddLeadingZero *bool   `json:"addLeadingZero,omitempty"`
}

// NormalizeResponse is the normalization outcome. IsValid is the sole failure
// signal; consumers must branch on it, not on HTTP status.
type NormalizeResponse struct {
	E164       string `json:"e164"`
	DialFormat string `json:"dialFormat"`
	IsValid    bool   `json:"isValid"`
}

// PreviewRequest contains a possibly partial number for live-input display.
type PreviewRequest struct {
	Raw     string  `json:"raw"`
	Country *string `json:"country,omitempty" validate:"omitempty,iso3166_1_alpha2"`
}

// PreviewResponse carries the display rendering of a partial number.
type PreviewResponse struct {
	Formatted string `json:"formatted"`
}

// UpsertDialConfigRequest contains the per-country rule to store. The trunk
// prefix is applied literally by the switch and is deliberately not
// syntax-checked beyond a length cap.
type UpsertDialConfigRequest struct {
	TrunkPrefix    string `json:"trunkPrefix" validate:"max=8"`
	AddLeadingZero bool   `json:"addLeadingZero"`
}

// SetDefaultCountryRequest selects the session's default country.
type SetDefaultCountryRequest struct {
	Country string `json:"country" validate:"required,iso3166_1_alpha2"`
}

// DialConfigResponse represents one per-country rule in API responses.
type DialConfigResponse struct {
	Country        string `json:"country"`
	TrunkPrefix    string `json:"trunkPrefix"`
	AddLeadingZero bool   `json:"addLeadingZero"`
}

// DialConfigListResponse wraps the stored rules plus the session default.
type DialConfigListResponse struct {
	Items          []DialConfigResponse `json:"items"`
	Total          int                  `json:"total"`
	DefaultCountry string               `json:"defaultCountry"`
}

// DefaultCountryResponse reports the default country after a change.
type DefaultCountryResponse struct {
	DefaultCountry string `json:"defaultCountry"`
}
