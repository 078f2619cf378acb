package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(defaultArtilleryYAML)
	if err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultArtilleryConfig()) {
		t.Errorf("embedded defaults differ from DefaultArtilleryConfig():\n%+v\n%+v", cfg, DefaultArtilleryConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadArtilleryFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadArtillery("")
	if err != nil {
		t.Fatalf("LoadArtillery() error: %v", err)
	}
	if cfg.Turn.Ticks != 600 || cfg.Physics.Gravity != 981 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadArtilleryCustomPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "duel.yaml")
	data := "turn:\n  ticks: 300\n  first: random\nphysics:\n  gravity: 500\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadArtillery(path)
	if err != nil {
		t.Fatalf("LoadArtillery() error: %v", err)
	}
	if cfg.Turn.Ticks != 300 || cfg.Turn.First != FirstRandom || cfg.Physics.Gravity != 500 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	// Untouched keys keep defaults
	if cfg.Field.Width != 800 || cfg.Tanks.Size != 40 {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadArtilleryUserDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	dir := filepath.Join(home, ".artillery", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "artillery.yaml"), []byte("field:\n  width: 1024\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadArtillery("")
	if err != nil {
		t.Fatalf("LoadArtillery() error: %v", err)
	}
	if cfg.Field.Width != 1024 {
		t.Errorf("Field.Width = %d, expected 1024 from user config", cfg.Field.Width)
	}
}

func TestLoadArtilleryErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadArtillery(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("field: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadArtillery(bad); err == nil {
		t.Error("expected error for malformed YAML")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("turn:\n  first: nobody\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadArtillery(invalid)
	if err == nil || !strings.Contains(err.Error(), "first turn") {
		t.Errorf("expected first turn validation error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ArtilleryConfig)
	}{
		{"zero width", func(c *ArtilleryConfig) { c.Field.Width = 0 }},
		{"zero tick rate", func(c *ArtilleryConfig) { c.Field.TickRate = 0 }},
		{"one control point", func(c *ArtilleryConfig) { c.Terrain.ControlPoints = 1 }},
		{"smoothing too strong", func(c *ArtilleryConfig) { c.Terrain.SmoothingFactor = 0.6 }},
		{"no deform radius", func(c *ArtilleryConfig) { c.Terrain.DeformRadius = 0 }},
		{"decision after expiry", func(c *ArtilleryConfig) { c.Adversary.DecisionDelay = 600 }},
		{"inverted spawn band", func(c *ArtilleryConfig) { c.Tanks.SpawnMin = 300 }},
		{"spawn band wider than field", func(c *ArtilleryConfig) { c.Tanks.SpawnMax = 900 }},
		{"zero divisor", func(c *ArtilleryConfig) { c.Adversary.DirectDivisor = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultArtilleryConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestDefaultYAMLIsCopy(t *testing.T) {
	a := DefaultYAML()
	a[0] = 'X'
	if DefaultYAML()[0] == 'X' {
		t.Error("DefaultYAML() should return a copy")
	}
}
