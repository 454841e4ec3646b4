package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Preset != "normal" {
		t.Errorf("expected normal preset, got %s", cfg.Preset)
	}
	if cfg.StepsPerBeat != 400 {
		t.Errorf("expected 400 steps per beat, got %d", cfg.StepsPerBeat)
	}
	if cfg.Beats != 8 {
		t.Errorf("expected 8 beats, got %d", cfg.Beats)
	}

	sc, err := cfg.Resolve()
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if sc.HeartRate != 75 {
		t.Errorf("expected heart rate 75, got %g", sc.HeartRate)
	}
}

func TestConfigResolve(t *testing.T) {
	cfg := &Config{Preset: "hypertension"}
	sc, err := cfg.Resolve()
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if sc != Presets["hypertension"] {
		t.Errorf("expected hypertension scenario, got %+v", sc)
	}

	// an explicit scenario block wins over the preset name
	custom := Presets["normal"]
	custom.HeartRate = 99
	cfg = &Config{Preset: "hypertension", Scenario: custom}
	sc, err = cfg.Resolve()
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if sc.HeartRate != 99 {
		t.Errorf("expected explicit scenario, got %+v", sc)
	}

	if _, err := (&Config{Preset: "nonexistent"}).Resolve(); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")

	cfg := DefaultConfig()
	cfg.Preset = "hypertension"
	cfg.Beats = 16
	cfg.AutoElastance = true

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Preset != "hypertension" {
		t.Errorf("expected hypertension, got %s", loaded.Preset)
	}
	if loaded.Beats != 16 {
		t.Errorf("expected 16 beats, got %d", loaded.Beats)
	}
	if !loaded.AutoElastance {
		t.Error("auto_elastance not preserved")
	}

	sc, err := loaded.Resolve()
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if sc != Presets["hypertension"] {
		t.Errorf("expected hypertension scenario after load, got %+v", sc)
	}
}

func TestConfigParameters(t *testing.T) {
	custom := Presets["normal"]
	custom.Contractility = 1.0

	cfg := &Config{Scenario: custom, AutoElastance: true}
	p, err := cfg.Parameters()
	if err != nil {
		t.Fatalf("parameters failed: %v", err)
	}
	if p.MaxElastance < 4.4 || p.MaxElastance > 4.6 {
		t.Errorf("expected derived max elastance ~4.5, got %g", p.MaxElastance)
	}

	cfg.AutoElastance = false
	p, err = cfg.Parameters()
	if err != nil {
		t.Fatalf("parameters failed: %v", err)
	}
	if p.MaxElastance != custom.MaxElastance {
		t.Errorf("expected max elastance %g, got %g", custom.MaxElastance, p.MaxElastance)
	}
}

func TestGetPreset(t *testing.T) {
	sc, ok := GetPreset("normal")
	if !ok {
		t.Fatal("expected normal preset")
	}
	if sc.VascularResistance != 1200 {
		t.Errorf("expected svr 1200, got %g", sc.VascularResistance)
	}

	if _, ok := GetPreset("nonexistent"); ok {
		t.Error("expected miss for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Fatal("expected presets")
	}

	found := false
	for _, name := range names {
		if name == "heart_failure" {
			found = true
		}
	}
	if !found {
		t.Error("heart_failure preset missing")
	}
}

func TestPresetsValidate(t *testing.T) {
	for _, name := range ListPresets() {
		sc, _ := GetPreset(name)
		if err := sc.Parameters().Validate(); err != nil {
			t.Errorf("preset %s does not validate: %v", name, err)
		}
	}
}
