package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Model != "lotka" {
		t.Errorf("expected model lotka, got %s", cfg.Model)
	}
	if cfg.Speed <= 0 {
		t.Error("speed should be positive")
	}
	if cfg.BaseStep <= 0 {
		t.Error("base step should be positive")
	}
	if !cfg.Viewport.Viewport().Valid() {
		t.Error("default viewport should be valid")
	}
	if !cfg.Layers.Grid || !cfg.Layers.Field || !cfg.Layers.Nullclines {
		t.Error("all layers should default on")
	}
	if cfg.Tuning.FadeAlpha <= 0 || cfg.Tuning.FadeAlpha >= 1 {
		t.Errorf("fade alpha should sit in (0,1), got %f", cfg.Tuning.FadeAlpha)
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := DefaultConfig()
	cfg.Model = "selkov"
	cfg.Speed = 2.5
	cfg.Params = map[string]float64{"v": 0.7}
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Model != "selkov" {
		t.Errorf("expected model selkov, got %s", loaded.Model)
	}
	if loaded.Speed != 2.5 {
		t.Errorf("expected speed 2.5, got %f", loaded.Speed)
	}
	if loaded.Params["v"] != 0.7 {
		t.Errorf("expected v=0.7, got %f", loaded.Params["v"])
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("model: glucose\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Model != "glucose" {
		t.Errorf("expected model glucose, got %s", cfg.Model)
	}
	if cfg.Tuning.MaxSeeded != DefaultMaxSeeded {
		t.Errorf("expected default max seeded, got %d", cfg.Tuning.MaxSeeded)
	}
	if cfg.BaseStep != DefaultBaseStep {
		t.Errorf("expected default base step, got %f", cfg.BaseStep)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("lotka", "classic")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Params["gamma"] != 1.5 {
		t.Errorf("expected gamma 1.5, got %f", cfg.Params["gamma"])
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("lotka", "nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if cfg := GetPreset("nonexistent", "classic"); cfg != nil {
		t.Error("expected nil for nonexistent model")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets("calc")
	if len(presets) == 0 {
		t.Error("expected presets for calc")
	}

	if presets := ListPresets("nonexistent"); presets != nil {
		t.Error("expected nil for nonexistent model")
	}
}

func TestGetParamsCopies(t *testing.T) {
	cfg := GetPreset("selkov", "oscillating")
	p := cfg.GetParams()
	p["v"] = 99
	if cfg.Params["v"] == 99 {
		t.Error("GetParams should return a copy")
	}
}
