package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	mmlog "github.com/mathemascii/mathemascii/foundation/core/log"
	"github.com/mathemascii/mathemascii/pkg/core/config"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{ServiceName: "serve", Level: "warn", Format: "json", Output: &buf})

	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, `"logger":"serve"`) {
		t.Errorf("output = %q", out)
	}
	if logger.GetLevel() != mmlog.LevelWarn {
		t.Errorf("level = %v", logger.GetLevel())
	}
}

func TestNewLoggerWithFile(t *testing.T) {
	defer CloseFiles()

	path := filepath.Join(t.TempDir(), "logs", "mathemascii.log")
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{ServiceName: "cli", Level: "info", File: path, Output: &buf})
	logger.Info("to both")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if !strings.Contains(string(data), "to both") || !strings.Contains(buf.String(), "to both") {
		t.Errorf("file = %q, buffer = %q", data, buf.String())
	}
}

func TestNewLoggerBadFile(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	NewLogger(LoggerConfig{Level: "info", File: filepath.Join(blocker, "x.log"), Output: &buf})
	if !strings.Contains(buf.String(), "log file disabled") {
		t.Errorf("missing warning, output = %q", buf.String())
	}
}

func TestFromConfig(t *testing.T) {
	cfg := FromConfig(config.GeneralConfig{LogLevel: "debug", LogFormat: "console"}, "preview")
	if cfg.Level != "debug" || cfg.Format != "console" || cfg.ServiceName != "preview" {
		t.Errorf("FromConfig() = %+v", cfg)
	}

	defaults := FromConfig(config.GeneralConfig{}, "x")
	if defaults.Level != "info" || defaults.Format != "text" {
		t.Errorf("FromConfig() defaults = %+v", defaults)
	}
}

func TestKeyValueLogger(t *testing.T) {
	var buf bytes.Buffer
	base := mmlog.NewWithConfig(mmlog.Config{Level: mmlog.LevelDebug, Format: mmlog.FormatText, Output: &buf})
	logger := Wrap(base, "grpc")

	logger.Info("request", "method", "/mathemascii.v1.Renderer/Render", "status", "OK")
	logger.WithLevel(mmlog.LevelError).Info("dropped")

	out := buf.String()
	for _, want := range []string{"{grpc}", "method=/mathemascii.v1.Renderer/Render", "status=OK"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %s", want, out)
		}
	}
	if strings.Contains(out, "dropped") {
		t.Error("WithLevel(mmlog.LevelError) should filter info")
	}
	if logger.Name() != "grpc" {
		t.Errorf("Name() = %q, want grpc", logger.Name())
	}
}

func TestToFields(t *testing.T) {
	tests := []struct {
		name  string
		input []interface{}
		want  int
	}{
		{"empty", nil, 0},
		{"pairs", []interface{}{"a", 1, "b", 2}, 2},
		{"odd", []interface{}{"a", 1, "b"}, 1},
		{"non-string key", []interface{}{1, "x", "b", 2}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(toFields(tt.input...)); got != tt.want {
				t.Errorf("len(toFields()) = %d, want %d", got, tt.want)
			}
		})
	}
}
