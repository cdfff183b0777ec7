package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Pos.Vec3().X != 1.0 || cfg.Vel.Vec3().Y != 0.4 {
		t.Errorf("unexpected default launch state: pos=%+v vel=%+v", cfg.Pos, cfg.Vel)
	}
	if cfg.NStep != 25000 || cfg.DTime != 0.01 || cfg.DEtol != 1e-3 {
		t.Error("run defaults drifted from the reference values")
	}
	if cfg.Rc != 0.2 || cfg.B != 0.9 || cfg.C != 0.8 {
		t.Error("halo defaults drifted from the reference values")
	}
	if err := cfg.OrbitConfig().Validate(); err != nil {
		t.Errorf("default config must validate: %v", err)
	}
	if _, err := cfg.Potential(); err != nil {
		t.Errorf("default potential must construct: %v", err)
	}
}

func TestLoadSaveRoundtrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Vel.Y = 0.55
	cfg.NStep = 1234
	cfg.Plane = "YZ"

	path := filepath.Join(t.TempDir(), "run.yaml")
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("roundtrip mismatch:\n got %+v\nwant %+v", loaded, cfg)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("box")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Vel.Y != 0.1 {
		t.Errorf("box preset vy = %v, want 0.1", cfg.Vel.Y)
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Fatal("expected presets")
	}
	for _, name := range names {
		cfg := GetPreset(name)
		if cfg == nil {
			t.Fatalf("listed preset %q not retrievable", name)
		}
		if err := cfg.OrbitConfig().Validate(); err != nil {
			t.Errorf("preset %q does not validate: %v", name, err)
		}
		if _, err := cfg.Potential(); err != nil {
			t.Errorf("preset %q potential: %v", name, err)
		}
	}
}
