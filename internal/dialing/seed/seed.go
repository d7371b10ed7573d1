// Package seed loads the optional startup seed file for the dial-plan
// registry. The file is read-only input; the registry is never written back.
package seed

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"dialplan_backend/internal/dialing/registry"
)

// File is the on-disk seed format.
type File struct {
	DefaultCountry string       `yaml:"defaultCountry"`
	Configs        []SeedConfig `yaml:"configs"`
}

// SeedConfig is one per-country rule in the seed file.
type SeedConfig struct {
	Country        string `yaml:"country"`
	TrunkPrefix    string `yaml:"trunkPrefix"`
	AddLeadingZero bool   `yaml:"addLeadingZero"`
}

// Apply reads the seed file at path and loads its entries into reg.
func Apply(reg *registry.Registry, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parse seed file: %w", err)
	}

	for _, c := range f.Configs {
		country := strings.ToUpper(strings.TrimSpace(c.Country))
		if len(country) != 2 {
			return fmt.Errorf("seed config country %q is not an ISO 3166-1 alpha-2 code", c.Country)
		}
		reg.Upsert(country, registry.CountryConfig{
			TrunkPrefix:    c.TrunkPrefix,
			AddLeadingZero: c.AddLeadingZero,
		})
	}

	if f.DefaultCountry != "" {
		country := strings.ToUpper(strings.TrimSpace(f.DefaultCountry))
		if len(country) != 2 {
			return fmt.Errorf("seed defaultCountry %q is not an ISO 3166-1 alpha-2 code", f.DefaultCountry)
		}
		reg.SetDefault(country)
	}

	return nil
}
