package seed

import (
	"os"
	"path/filepath"
	"testing"

	"dialplan_backend/internal/dialing/registry"
)

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dialplan.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write seed file: %v", err)
	}
	return path
}

func TestApplyLoadsConfigsAndDefaultCountry(t *testing.T) {
	path := writeSeedFile(t, `
defaultCountry: nl
configs:
  - country: eg
    trunkPrefix: "0"
  - country: NL
    trunkPrefix: ""
    addLeadingZero: true
`)
	reg := registry.New("EG")

	if err := Apply(reg, path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := reg.DefaultCountry(); got != "NL" {
		t.Fatalf("expected default NL, got %q", got)
	}
	eg, ok := reg.Get("EG")
	if !ok || eg.TrunkPrefix != "0" || eg.AddLeadingZero {
		t.Fatalf("unexpected EG entry %+v (ok=%v)", eg, ok)
	}
	nl, ok := reg.Get("NL")
	if !ok || !nl.AddLeadingZero {
		t.Fatalf("unexpected NL entry %+v (ok=%v)", nl, ok)
	}
}

func TestApplyRejectsMalformedCountryCode(t *testing.T) {
	path := writeSeedFile(t, `
configs:
  - country: EGY
    trunkPrefix: "0"
`)
	reg := registry.New("EG")

	if err := Apply(reg, path); err == nil {
		t.Fatal("expected error for three-letter country code")
	}
}

func TestApplyRejectsMissingFile(t *testing.T) {
	reg := registry.New("EG")

	if err := Apply(reg, filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing seed file")
	}
}

func TestApplyRejectsInvalidYAML(t *testing.T) {
	path := writeSeedFile(t, "configs: [broken")
	reg := registry.New("EG")

	if err := Apply(reg, path); err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}
