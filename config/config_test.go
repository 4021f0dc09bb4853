package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_EmbeddedDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\"): %v", err)
	}

	if cfg.Growth.LUE != 1.3 {
		t.Errorf("default LUE = %f, want 1.3", cfg.Growth.LUE)
	}
	if cfg.Growth.BaseTempC != 7.0 || cfg.Growth.OptTempC != 18.0 || cfg.Growth.MaxTempC != 30.0 {
		t.Errorf("unexpected default cardinal temps: %f %f %f",
			cfg.Growth.BaseTempC, cfg.Growth.OptTempC, cfg.Growth.MaxTempC)
	}
	if cfg.Chamber.HeatCapacityKJPerK != 1200.0 {
		t.Errorf("default thermal mass = %f, want 1200", cfg.Chamber.HeatCapacityKJPerK)
	}
	if cfg.Scenario.Days != 90 {
		t.Errorf("default horizon = %d, want 90", cfg.Scenario.Days)
	}
}

func TestLoad_FileOverridesOnlyNamedFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	override := "scenario:\n  days: 30\n  co2_ppm: 1200\n"
	if err := os.WriteFile(path, []byte(override), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Scenario.Days != 30 {
		t.Errorf("overridden days = %d, want 30", cfg.Scenario.Days)
	}
	if cfg.Scenario.CO2PPM != 1200 {
		t.Errorf("overridden CO₂ = %f, want 1200", cfg.Scenario.CO2PPM)
	}
	// Fields absent from the file keep their defaults
	if cfg.Scenario.PPFD != 350 {
		t.Errorf("PPFD = %f, want default 350", cfg.Scenario.PPFD)
	}
	if cfg.Growth.LUE != 1.3 {
		t.Errorf("LUE = %f, want default 1.3", cfg.Growth.LUE)
	}
}

func TestLoad_MissingFileErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestWriteYAML_Roundtrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Scenario.Days = 42

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}

	back, err := Load(path)
	if err != nil {
		t.Fatalf("Load written config: %v", err)
	}
	if back.Scenario.Days != 42 {
		t.Errorf("roundtrip days = %d, want 42", back.Scenario.Days)
	}
	if back.Growth.KExtinction != cfg.Growth.KExtinction {
		t.Errorf("roundtrip k = %f, want %f", back.Growth.KExtinction, cfg.Growth.KExtinction)
	}
}
