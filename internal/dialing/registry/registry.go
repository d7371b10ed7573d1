// Package registry holds the per-country dial configuration for the lifetime
// of a session. Entries live in memory only and are never persisted.
package registry

import (
	"sort"
	"sync"
)

// FallbackCountry is the well-known default-country constant. The registry
// resets its default to this value whenever the entry backing the current
// default is removed.
const FallbackCountry = "EG"

// CountryConfig is the formatting rule for one country. It is an immutable
// value: upserts replace the whole entry, fields are never merged.
type CountryConfig struct {
	// TrunkPrefix is prepended literally to the national number when building
	// the switch dialing format. May be empty.
	TrunkPrefix string
	// AddLeadingZero prepends a single '0' to the national number unless one
	// is already present.
	AddLeadingZero bool
}

// Entry pairs a country code with its config for list displays.
type Entry struct {
	Country string
	Config  CountryConfig
}

// Registry maps ISO 3166-1 alpha-2 country codes to dial configs and tracks
// the session's default country. All operations are total: unknown keys are
// handled by no-op or fallback substitution, never by an error.
type Registry struct {
	mu             sync.RWMutex
	entries        map[string]CountryConfig
	defaultCountry string
}

// New creates an empty registry. An empty defaultCountry falls back to
// FallbackCountry so the default never starts out unset.
func New(defaultCountry string) *Registry {
	if defaultCountry == "" {
		defaultCountry = FallbackCountry
	}
	return &Registry{
		entries:        make(map[string]CountryConfig),
		defaultCountry: defaultCountry,
	}
}

// Upsert inserts or replaces the config for country. Last write wins.
// Trunk prefix syntax is not validated; the switch applies it literally.
func (r *Registry) Upsert(country string, cfg CountryConfig) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[country] = cfg
}

// Remove deletes the entry for country. Removing an unknown key is a no-op.
// When the removed entry backs the current default country, the default is
// reset to FallbackCountry; the returned flag reports that reset.
func (r *Registry) Remove(country string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, country)
	if country == r.defaultCountry {
		r.defaultCountry = FallbackCountry
		return true
	}
	return false
}

// SetDefault unconditionally points the default at country and returns the
// previous default. The target is allowed to be missing from the entries:
// a config for it may be added immediately after, mid-edit.
func (r *Registry) SetDefault(country string) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	previous := r.defaultCountry
	r.defaultCountry = country
	return previous
}

// Get returns the config for country, or false when absent.
func (r *Registry) Get(country string) (CountryConfig, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cfg, ok := r.entries[country]
	return cfg, ok
}

// DefaultCountry returns the current default country.
func (r *Registry) DefaultCountry() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.defaultCountry
}

// List returns a snapshot of all entries sorted by country code.
func (r *Registry) List() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]Entry, 0, len(r.entries))
	for country, cfg := range r.entries {
		entries = append(entries, Entry{Country: country, Config: cfg})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Country < entries[j].Country
	})
	return entries
}
