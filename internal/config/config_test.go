package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Width != "400" || cfg.Height != "300" {
		t.Errorf("default size = %sx%s, want 400x300", cfg.Width, cfg.Height)
	}
	if cfg.Fullscreen {
		t.Error("default fullscreen should be false")
	}
	if len(cfg.Providers) != 2 || cfg.Providers[0] != "youtube" || cfg.Providers[1] != "vimeo" {
		t.Errorf("default providers = %v, want [youtube vimeo]", cfg.Providers)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"valid defaults", func(c *Config) {}, false},
		{"empty width", func(c *Config) { c.Width = "" }, true},
		{"width with unit", func(c *Config) { c.Width = "400px" }, true},
		{"percent height", func(c *Config) { c.Height = "100%" }, true},
		{"huge width", func(c *Config) { c.Width = "1234567" }, true},
		{"no providers", func(c *Config) { c.Providers = nil }, true},
		{"unknown provider", func(c *Config) { c.Providers = []string{"dailymotion"} }, true},
		{"invalid log level", func(c *Config) { c.LogLevel = "loud" }, true},
		{"invalid log format", func(c *Config) { c.LogFormat = "xml" }, true},
		{"vimeo only", func(c *Config) { c.Providers = []string{"vimeo"} }, false},
		{"debug level", func(c *Config) { c.LogLevel = "debug" }, false},
		{"json format", func(c *Config) { c.LogFormat = "JSON" }, false},
		{"custom size", func(c *Config) { c.Width, c.Height = "1280", "720" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromTOML(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	dir := filepath.Join(tmpDir, "vidembed")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}

	content := `
width = "640"
height = "360"
fullscreen = true
providers = ["vimeo"]
log_level = "debug"
`
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Width != "640" || cfg.Height != "360" {
		t.Errorf("size = %sx%s, want 640x360", cfg.Width, cfg.Height)
	}
	if !cfg.Fullscreen {
		t.Error("fullscreen should be true")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("log_level = %q, want debug", cfg.LogLevel)
	}
	if cfg.LogFormat != "text" {
		t.Errorf("log_format = %q, want default text", cfg.LogFormat)
	}

	reg, err := cfg.Registry()
	if err != nil {
		t.Fatalf("Registry() error: %v", err)
	}
	if names := reg.Names(); len(names) != 1 || names[0] != "vimeo" {
		t.Errorf("registry names = %v, want [vimeo]", names)
	}
}

func TestLoadInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	dir := filepath.Join(tmpDir, "vidembed")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`width = "wide"`), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Error("Load() should reject an invalid width")
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() should not error on missing file: %v", err)
	}
	if cfg.Width != "400" {
		t.Errorf("missing file should return defaults, got width = %q", cfg.Width)
	}
}

func TestRequest(t *testing.T) {
	cfg := Default()
	cfg.Width, cfg.Fullscreen = "800", true

	req := cfg.Request("https://youtu.be/abc")
	if req.URL != "https://youtu.be/abc" || req.Width != "800" || req.Height != "300" || !req.Fullscreen {
		t.Errorf("Request() = %+v", req)
	}
	if req.Options == nil {
		t.Error("Request() should return a non-nil Options map")
	}
}
