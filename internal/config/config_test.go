package config

import (
	"errors"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Algorithm != "bubble" {
		t.Errorf("expected algorithm bubble, got %s", cfg.Algorithm)
	}
	if cfg.Playback.Speed != 1.0 {
		t.Errorf("expected speed 1.0, got %f", cfg.Playback.Speed)
	}
	if cfg.Playback.DelayMs <= 0 {
		t.Error("delay should be positive")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative size", func(c *Config) { c.Input.Size = -1 }},
		{"inverted range", func(c *Config) { c.Input.Min, c.Input.Max = 10, 1 }},
		{"slow speed", func(c *Config) { c.Playback.Speed = 0.01 }},
		{"fast speed", func(c *Config) { c.Playback.Speed = 6 }},
		{"zero delay", func(c *Config) { c.Playback.DelayMs = 0 }},
		{"zero cache", func(c *Config) { c.Server.RunCache = 0 }},
		{"log format", func(c *Config) { c.Log.Format = "xml" }},
		{"full int range", func(c *Config) { c.Input.Min, c.Input.Max = math.MinInt, math.MaxInt }},
		{"max too large", func(c *Config) { c.Input.Max = MaxAbsValue + 1 }},
		{"min too small", func(c *Config) { c.Input.Min = -MaxAbsValue - 1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestWidestValueRangeGenerates(t *testing.T) {
	in := InputConfig{Preset: "random", Size: 50, Min: -MaxAbsValue, Max: MaxAbsValue, Seed: 7}
	if err := in.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	arr, err := in.Resolve()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, v := range arr {
		if v < -MaxAbsValue || v > MaxAbsValue {
			t.Errorf("expected value within ±%d, got %d", MaxAbsValue, v)
		}
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")

	cfg := DefaultConfig()
	cfg.Algorithm = "merge"
	cfg.Input.Values = []int{3, 1, 2}
	cfg.Playback.Speed = 2.5

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Algorithm != "merge" {
		t.Errorf("expected merge, got %s", loaded.Algorithm)
	}
	if !slices.Equal(loaded.Input.Values, []int{3, 1, 2}) {
		t.Errorf("expected values [3 1 2], got %v", loaded.Input.Values)
	}
	if loaded.Playback.Speed != 2.5 {
		t.Errorf("expected speed 2.5, got %f", loaded.Playback.Speed)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	if err := os.WriteFile(path, []byte("algorithm: quick\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Algorithm != "quick" {
		t.Errorf("expected quick, got %s", cfg.Algorithm)
	}
	if cfg.Server.Addr != DefaultAddr {
		t.Errorf("expected default addr, got %s", cfg.Server.Addr)
	}
}

func TestParseValues(t *testing.T) {
	tests := []struct {
		in      string
		want    []int
		wantErr bool
	}{
		{"3,1,2", []int{3, 1, 2}, false},
		{"5 4  3", []int{5, 4, 3}, false},
		{" -1, 0 ,7", []int{-1, 0, 7}, false},
		{"", []int{}, false},
		{"1,x", nil, true},
	}

	for _, tt := range tests {
		got, err := ParseValues(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidValues) {
				t.Errorf("%q: expected ErrInvalidValues, got %v", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: unexpected error %v", tt.in, err)
		}
		if !slices.Equal(got, tt.want) {
			t.Errorf("%q: expected %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestGeneratePreset(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for _, name := range ListPresets() {
		arr, err := GeneratePreset(name, 12, rng)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if name == "classic" {
			if !slices.Equal(arr, []int{5, 4, 3, 2, 1}) {
				t.Errorf("classic: got %v", arr)
			}
			continue
		}
		if len(arr) != 12 {
			t.Errorf("%s: expected 12 values, got %d", name, len(arr))
		}
		for _, v := range arr {
			if v < DefaultMin || v > DefaultMax {
				t.Errorf("%s: value %d out of range", name, v)
			}
		}
	}

	sorted, _ := GeneratePreset("sorted", 20, rng)
	if !slices.IsSorted(sorted) {
		t.Errorf("sorted preset not sorted: %v", sorted)
	}
	reversed, _ := GeneratePreset("reversed", 20, rng)
	slices.Reverse(reversed)
	if !slices.IsSorted(reversed) {
		t.Errorf("reversed preset not descending")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if _, ok := GetPreset("nonexistent"); ok {
		t.Error("expected no preset")
	}
	if _, err := GeneratePreset("nonexistent", 5, rand.New(rand.NewSource(1))); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("expected ErrUnknownPreset, got %v", err)
	}
}

func TestResolve(t *testing.T) {
	in := InputConfig{Values: []int{9, 8}, Preset: "random", Size: 30}
	got, err := in.Resolve()
	if err != nil || !slices.Equal(got, []int{9, 8}) {
		t.Errorf("explicit values should win, got %v %v", got, err)
	}

	a, _ := InputConfig{Preset: "random", Size: 8, Min: 1, Max: 9, Seed: 42}.Resolve()
	b, _ := InputConfig{Preset: "random", Size: 8, Min: 1, Max: 9, Seed: 42}.Resolve()
	if !slices.Equal(a, b) {
		t.Errorf("same seed should give the same array: %v vs %v", a, b)
	}
}

func TestLoadLayered(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sortscope.yaml")
	data := "algorithm: merge\nplayback:\n  speed: 2\nserver:\n  addr: \":9000\"\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SORTSCOPE_ALGORITHM", "quick")

	cfg, err := LoadLayered(path)
	if err != nil {
		t.Fatalf("LoadLayered: %v", err)
	}
	if cfg.Algorithm != "quick" {
		t.Errorf("env should override file, got %s", cfg.Algorithm)
	}
	if cfg.Playback.Speed != 2 {
		t.Errorf("expected speed 2 from file, got %f", cfg.Playback.Speed)
	}
	if cfg.Server.Addr != ":9000" {
		t.Errorf("expected addr :9000, got %s", cfg.Server.Addr)
	}
	if cfg.Playback.DelayMs != DefaultDelayMs {
		t.Errorf("expected default delay, got %d", cfg.Playback.DelayMs)
	}
}

func TestLoadLayeredWithoutFile(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadLayered("")
	if err != nil {
		t.Fatalf("missing file should not fail: %v", err)
	}
	if cfg.Algorithm != DefaultAlgorithm {
		t.Errorf("expected default algorithm, got %s", cfg.Algorithm)
	}
}
