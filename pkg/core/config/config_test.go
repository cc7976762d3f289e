package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	mmerror "github.com/mathemascii/mathemascii/foundation/core/error"
)

func TestDuration_UnmarshalText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{"seconds", "30s", 30 * time.Second, false},
		{"minutes", "5m", 5 * time.Minute, false},
		{"complex", "1h30m", 90 * time.Minute, false},
		{"invalid", "invalid", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalText([]byte(tt.input))
			if (err != nil) != tt.wantErr {
				t.Fatalf("UnmarshalText() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && d.Duration != tt.expected {
				t.Errorf("UnmarshalText() = %v, want %v", d.Duration, tt.expected)
			}
		})
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.General.Name != "mathemascii" {
		t.Errorf("General.Name = %v", cfg.General.Name)
	}
	if cfg.Render.Display != "inline" || cfg.Render.MaxInputLength != 16*1024 {
		t.Errorf("Render = %+v", cfg.Render)
	}
	if cfg.Render.CacheTTL.Duration != 10*time.Minute {
		t.Errorf("Render.CacheTTL = %v", cfg.Render.CacheTTL.Duration)
	}
	if cfg.HTTPAddress() != "127.0.0.1:8420" || cfg.GRPCAddress() != "127.0.0.1:9420" {
		t.Errorf("addresses = %s, %s", cfg.HTTPAddress(), cfg.GRPCAddress())
	}
	if !cfg.History.Enabled || cfg.History.Path != filepath.Join("./data", "history.db") {
		t.Errorf("History = %+v", cfg.History)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults do not validate: %v", err)
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load("/nonexistent/mathemascii.toml")
	if !mmerror.HasCode(err, mmerror.CodeConfigError) {
		t.Errorf("Load() error = %v, want CONFIG_ERROR", err)
	}
}

func TestLoad_TOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mathemascii.toml")
	content := `
[general]
log_level = "debug"
data_dir = "$MATHEMASCII_TEST_DIR"

[render]
display = "block"
cache_ttl = "1m"

[server]
http_port = 8000
read_timeout = "2s"

[history]
enabled = false
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("MATHEMASCII_TEST_DIR", dir)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.General.LogLevel != "debug" || cfg.General.DataDir != dir {
		t.Errorf("General = %+v", cfg.General)
	}
	if cfg.Render.Display != "block" || cfg.Render.CacheTTL.Duration != time.Minute {
		t.Errorf("Render = %+v", cfg.Render)
	}
	if cfg.Server.HTTPPort != 8000 || cfg.Server.GRPCPort != 9420 || cfg.Server.ReadTimeout.Duration != 2*time.Second {
		t.Errorf("Server = %+v", cfg.Server)
	}
	if cfg.History.Enabled {
		t.Error("History.Enabled should be false")
	}
	if cfg.History.Path != filepath.Join(dir, "history.db") {
		t.Errorf("History.Path = %s", cfg.History.Path)
	}
}

func TestLoad_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mathemascii.yaml")
	content := "render:\n  display: block\n  cache_ttl: 90s\nserver:\n  grpc_port: 9999\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Render.Display != "block" || cfg.Render.CacheTTL.Duration != 90*time.Second {
		t.Errorf("Render = %+v", cfg.Render)
	}
	if cfg.Server.GRPCPort != 9999 || !cfg.History.Enabled {
		t.Errorf("Server = %+v, History = %+v", cfg.Server, cfg.History)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		code    mmerror.Code
	}{
		{"syntax", "bad.toml", "[render\n", mmerror.CodeInvalidConfig},
		{"display", "display.toml", "[render]\ndisplay = \"float\"\n", mmerror.CodeInvalidConfig},
		{"port", "port.yaml", "server:\n  http_port: 70000\n", mmerror.CodeInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if !mmerror.HasCode(err, tt.code) {
				t.Errorf("Load() error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestLoadFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	if err := os.WriteFile(path, []byte("[general]\nname = \"custom\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvConfigPath, path)

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}
	if cfg.General.Name != "custom" {
		t.Errorf("General.Name = %s", cfg.General.Name)
	}
}

func TestLoadFromEnv_NoConfigFound(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}
	if cfg.General.Name != "mathemascii" {
		t.Errorf("expected defaults, got %+v", cfg.General)
	}
}

func TestValidateCollectsProblems(t *testing.T) {
	cfg := Default()
	cfg.Render.Display = "x"
	cfg.Render.CacheSize = -1

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() = nil")
	}
	if !strings.Contains(err.Error(), "render.display") || !strings.Contains(err.Error(), "render.cache_size") {
		t.Errorf("Validate() = %v", err)
	}
}
