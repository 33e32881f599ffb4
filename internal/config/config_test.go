package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PHONXS_LOG_LEVEL", "PHONXS_DEBUG_SCATTER", "PHONXS_PHONONS",
		"PHONXS_INCLUDE_ZERO_INCOHERENT", "PHONXS_ONLY_ZERO_INCOHERENT",
		"PHONXS_EXTRAPOLATE_FROM_PEAK",
	} {
		t.Setenv(k, "")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Logging.Level != "info" {
		t.Errorf("expected Logging.Level 'info', got '%s'", cfg.Logging.Level)
	}
	if cfg.Curve.Phonons != 0 {
		t.Errorf("expected auto phonon order, got %d", cfg.Curve.Phonons)
	}
	if !cfg.Curve.IncludeZeroIncoherent {
		t.Error("expected IncludeZeroIncoherent by default")
	}
	if cfg.Curve.OnlyZeroIncoherent {
		t.Error("expected OnlyZeroIncoherent off by default")
	}
	if !cfg.Curve.ExtrapolateFromPeak {
		t.Error("expected ExtrapolateFromPeak by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
logging:
  level: debug
curve:
  phonons: 4
  extrapolate_from_peak: false
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected level debug, got %s", cfg.Logging.Level)
	}
	if cfg.Curve.Phonons != 4 {
		t.Errorf("expected phonons 4, got %d", cfg.Curve.Phonons)
	}
	if cfg.Curve.ExtrapolateFromPeak {
		t.Error("expected ExtrapolateFromPeak false")
	}
	// untouched keys keep their defaults
	if !cfg.Curve.IncludeZeroIncoherent {
		t.Error("expected IncludeZeroIncoherent default to survive")
	}
}

func TestLoadFromFile_Errors(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("curve: [1, 2"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadFromFile(path)
	if err == nil || !strings.Contains(err.Error(), "parsing config file") {
		t.Errorf("expected parse error, got %v", err)
	}
}

func TestLoad_MissingPathUsesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Curve.Phonons != 0 || cfg.Logging.Level != "info" {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PHONXS_PHONONS", "3")
	t.Setenv("PHONXS_EXTRAPOLATE_FROM_PEAK", "0")
	t.Setenv("PHONXS_ONLY_ZERO_INCOHERENT", "true")
	t.Setenv("PHONXS_DEBUG_SCATTER", "1")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Curve.Phonons != 3 {
		t.Errorf("expected phonons 3, got %d", cfg.Curve.Phonons)
	}
	if cfg.Curve.ExtrapolateFromPeak {
		t.Error("expected ExtrapolateFromPeak false")
	}
	if !cfg.Curve.OnlyZeroIncoherent {
		t.Error("expected OnlyZeroIncoherent true")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected debug-scatter to raise level to debug, got %s", cfg.Logging.Level)
	}
}

func TestLoad_DebugScatterKeepsTrace(t *testing.T) {
	clearEnv(t)
	t.Setenv("PHONXS_LOG_LEVEL", "trace")
	t.Setenv("PHONXS_DEBUG_SCATTER", "1")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Logging.Level != "trace" {
		t.Errorf("expected trace to survive, got %s", cfg.Logging.Level)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"default", func(c *Config) {}, false},
		{"negative phonons", func(c *Config) { c.Curve.Phonons = -1 }, true},
		{"only without include", func(c *Config) {
			c.Curve.IncludeZeroIncoherent = false
			c.Curve.OnlyZeroIncoherent = true
		}, true},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }, true},
		{"empty level", func(c *Config) { c.Logging.Level = "" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestOptions(t *testing.T) {
	cfg := Default()
	cfg.Curve.Phonons = 5
	opts := cfg.Options()
	if opts.Phonons != 5 || !opts.IncludeZeroIncoherent || !opts.ExtrapolateFromPeak || opts.OnlyZeroIncoherent {
		t.Errorf("unexpected options %+v", opts)
	}
	if opts.Logger != nil {
		t.Error("expected nil logger")
	}
}
