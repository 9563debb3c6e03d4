package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Units.System != "si" {
		t.Errorf("Expected si default system, got %q", cfg.Units.System)
	}
	if cfg.Units.PressureUnit != "MPa" {
		t.Errorf("Expected MPa default pressure unit, got %q", cfg.Units.PressureUnit)
	}
	if cfg.Costing.Currency != "USD" {
		t.Errorf("Expected USD default currency, got %q", cfg.Costing.Currency)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Units.System != "si" {
		t.Errorf("Expected default config, got %+v", cfg)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.json")

	cfg := Default()
	cfg.Units.System = "imperial"
	cfg.Units.PressureUnit = "ksi"
	cfg.Costing.Currency = "EUR"

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Units.System != "imperial" || loaded.Units.PressureUnit != "ksi" {
		t.Errorf("Round trip lost unit settings: %+v", loaded.Units)
	}
	if loaded.Costing.Currency != "EUR" {
		t.Errorf("Round trip lost currency: %q", loaded.Costing.Currency)
	}
}

func TestLoadPartialOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"units":{"system":"imperial"}}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Units.System != "imperial" {
		t.Errorf("Expected overlay, got %q", cfg.Units.System)
	}
	if cfg.Costing.Currency != "USD" {
		t.Errorf("Expected default currency retained, got %q", cfg.Costing.Currency)
	}
}

func TestGlobalGetSet(t *testing.T) {
	original := Get()
	defer Set(original)

	cfg := Default()
	cfg.Costing.Currency = "GBP"
	Set(cfg)
	if Get().Costing.Currency != "GBP" {
		t.Error("Set should replace the global configuration")
	}
}
