package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultMatchesDefault(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded YAML = %+v, expected %+v", cfg, Default())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "grid_size: 21\ntick_interval_ms: 150\ncolors:\n  snake: \"#fff\"\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.GridSize != 21 {
		t.Errorf("GridSize = %d, expected 21", cfg.GridSize)
	}
	if cfg.TickInterval().Milliseconds() != 150 {
		t.Errorf("TickInterval = %v, expected 150ms", cfg.TickInterval())
	}
	if cfg.Colors.Snake != "#fff" {
		t.Errorf("Colors.Snake = %q, expected #fff", cfg.Colors.Snake)
	}
	// Unset keys keep their defaults.
	if cfg.Colors.Nibble != Default().Colors.Nibble || cfg.SwipeThreshold != 50 {
		t.Errorf("unset keys lost defaults: %+v", cfg)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("Load() should fail for a missing custom file")
	}
	if !strings.Contains(err.Error(), "failed to read") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("grid_size: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("Load() should fail for malformed YAML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		errMsg string
	}{
		{"default is valid", func(*Config) {}, ""},
		{"grid too small", func(c *Config) { c.GridSize = 4 }, "grid_size"},
		{"grid too large", func(c *Config) { c.GridSize = 65 }, "grid_size"},
		{"zero interval", func(c *Config) { c.TickIntervalMS = 0 }, "tick_interval_ms"},
		{"negative threshold", func(c *Config) { c.SwipeThreshold = -1 }, "swipe_threshold"},
		{"bad color", func(c *Config) { c.Colors.Nibble = "orange" }, "colors.nibble"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.modify(&cfg)
			err := cfg.Validate()

			if tc.errMsg == "" {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.errMsg) {
				t.Errorf("Validate() = %v, expected error mentioning %q", err, tc.errMsg)
			}
		})
	}
}

func TestValidateReportsColorsInOrder(t *testing.T) {
	cfg := Default()
	cfg.Colors = Colors{Background: "green", Snake: "tan", Nibble: "orange"}

	want := cfg.Validate().Error()
	for range 20 {
		if got := cfg.Validate().Error(); got != want {
			t.Fatalf("Validate() text changed between runs:\n%s\n%s", want, got)
		}
	}

	bg := strings.Index(want, "colors.background")
	snake := strings.Index(want, "colors.snake")
	nibble := strings.Index(want, "colors.nibble")
	if bg < 0 || !(bg < snake && snake < nibble) {
		t.Errorf("color errors out of order: %s", want)
	}
}

func TestMarshalRoundTripsThroughParse(t *testing.T) {
	cfg := Default()
	cfg.GridSize = 9
	cfg.StrictBounds = true

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "strict_bounds: true") {
		t.Errorf("marshalled YAML missing strict_bounds:\n%s", data)
	}

	got, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if got != cfg {
		t.Errorf("Parse(Marshal(cfg)) = %+v, expected %+v", got, cfg)
	}
}
