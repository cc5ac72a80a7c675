package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Integrator != "gill" {
		t.Errorf("expected integrator gill, got %s", cfg.Integrator)
	}
	if cfg.Strict {
		t.Error("strict mode must be opt-in")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("deep")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Salinity != 34.7 {
		t.Errorf("expected salinity 34.7, got %f", cfg.Salinity)
	}

	cfg.Salinity = 0
	if GetPreset("deep").Salinity != 34.7 {
		t.Error("GetPreset must return a copy")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) != 5 {
		t.Fatalf("expected 5 presets, got %v", names)
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("presets not sorted: %v", names)
		}
	}
	for _, name := range names {
		p := GetPreset(name)
		if err := p.Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
	}
}

func TestPressures(t *testing.T) {
	tests := []struct {
		start, stop, step float64
		expected          int
	}{
		{0, 200, 20, 11},
		{0, 10000, 1000, 11},
		{0, 0, 1, 1},
		{10, 95, 10, 9},
		{0, 0.3, 0.1, 4},
	}

	for _, tt := range tests {
		p := ProfileConfig{PressureStart: tt.start, PressureStop: tt.stop, PressureStep: tt.step}
		got := p.Pressures()
		if len(got) != tt.expected {
			t.Errorf("[%g:%g:%g]: expected %d levels, got %d", tt.start, tt.stop, tt.step, tt.expected, len(got))
			continue
		}
		if got[0] != tt.start {
			t.Errorf("first level %g, want %g", got[0], tt.start)
		}
	}
}

func TestColumns(t *testing.T) {
	p := ProfileConfig{
		Salinity: 35, Temperature: 10,
		Temperatures:  []float64{20, 15, 10},
		PressureStart: 0, PressureStop: 200, PressureStep: 100,
	}
	s, temp := p.Columns()
	if len(s) != 3 || s[2] != 35 {
		t.Errorf("salinity column %v", s)
	}
	if temp[0] != 20 || temp[2] != 10 {
		t.Errorf("temperature column %v", temp)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero step", func(c *Config) { c.Profile.PressureStep = 0 }},
		{"reversed ladder", func(c *Config) { c.Profile.PressureStop = -1 }},
		{"too many levels", func(c *Config) { c.Profile.PressureStep = 1e-4 }},
		{"level count overflows int", func(c *Config) {
			c.Profile.PressureStop = 1e20
			c.Profile.PressureStep = 1
		}},
		{"NaN step", func(c *Config) { c.Profile.PressureStep = math.NaN() }},
		{"NaN stop", func(c *Config) { c.Profile.PressureStop = math.NaN() }},
		{"infinite start", func(c *Config) { c.Profile.PressureStart = math.Inf(-1) }},
		{"NaN reference", func(c *Config) { c.Profile.Reference = math.NaN() }},
		{"column length", func(c *Config) { c.Profile.Salinities = []float64{35} }},
		{"precision", func(c *Config) { c.Precision = 40 }},
		{"steps", func(c *Config) { c.Steps = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("want ErrInvalid, got %v", err)
			}
		})
	}
}

func TestLevels_InvalidLadderIsEmpty(t *testing.T) {
	for _, p := range []ProfileConfig{
		{PressureStop: 1e20, PressureStep: 1},
		{PressureStop: 100, PressureStep: math.NaN()},
		{PressureStop: math.Inf(1), PressureStep: 10},
	} {
		if n := p.Levels(); n != 0 {
			t.Errorf("%+v: Levels() = %d, want 0", p, n)
		}
		if got := p.Pressures(); len(got) != 0 {
			t.Errorf("%+v: Pressures() has %d values", p, len(got))
		}
	}
}

func TestLoadSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seawater.yaml")

	cfg := DefaultConfig()
	cfg.Strict = true
	cfg.Profile = *GetPreset("polar")
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !loaded.Strict || loaded.Profile.Name != "polar" || loaded.Profile.Temperature != -1.5 {
		t.Errorf("round trip lost fields: %+v", loaded)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("strict: true\nprecision: 6\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Precision != 6 || !cfg.Strict {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.Integrator != DefaultIntegrator || cfg.Profile.Name != DefaultPreset {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("profile:\n  pressure_step: -5\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrInvalid) {
		t.Errorf("want ErrInvalid, got %v", err)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
