package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mmerror "github.com/mathemascii/mathemascii/foundation/core/error"
)

// EnvConfigPath names the environment variable holding the config path
const EnvConfigPath = "MATHEMASCII_CONFIG"

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Render  RenderConfig  `toml:"render" yaml:"render"`
	Server  ServerConfig  `toml:"server" yaml:"server"`
	History HistoryConfig `toml:"history" yaml:"history"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name      string `toml:"name" yaml:"name"`
	DataDir   string `toml:"data_dir" yaml:"data_dir"`
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// RenderConfig holds conversion settings
type RenderConfig struct {
	Display        string   `toml:"display" yaml:"display"`
	Indent         string   `toml:"indent" yaml:"indent"`
	MaxInputLength int      `toml:"max_input_length" yaml:"max_input_length"`
	CacheSize      int      `toml:"cache_size" yaml:"cache_size"`
	CacheTTL       Duration `toml:"cache_ttl" yaml:"cache_ttl"`
}

// ServerConfig holds HTTP, WebSocket and gRPC settings
type ServerConfig struct {
	Host            string   `toml:"host" yaml:"host"`
	HTTPPort        int      `toml:"http_port" yaml:"http_port"`
	GRPCPort        int      `toml:"grpc_port" yaml:"grpc_port"`
	ReadTimeout     Duration `toml:"read_timeout" yaml:"read_timeout"`
	WriteTimeout    Duration `toml:"write_timeout" yaml:"write_timeout"`
	ShutdownTimeout Duration `toml:"shutdown_timeout" yaml:"shutdown_timeout"`
	AllowedOrigins  []string `toml:"allowed_origins" yaml:"allowed_origins"`
}

// HistoryConfig holds render history settings
type HistoryConfig struct {
	Enabled       bool   `toml:"enabled" yaml:"enabled"`
	Path          string `toml:"path" yaml:"path"`
	RetentionDays int    `toml:"retention_days" yaml:"retention_days"`
	MaxRecords    int    `toml:"max_records" yaml:"max_records"`
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// UnmarshalYAML parses a duration scalar
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	return d.UnmarshalText([]byte(value.Value))
}

// Default returns the configuration used when no file is found
func Default() *Config {
	cfg := &Config{History: HistoryConfig{Enabled: true}}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file. Files ending in
// .yaml or .yml are read as YAML, everything else as TOML.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, mmerror.Newf("config file not found: %s", path).
				WithCode(mmerror.CodeConfigError).
				WithOperation("config.load")
		}
		return nil, mmerror.Wrap(err, "failed to read config").
			WithCode(mmerror.CodeConfigError).
			WithOperation("config.load")
	}

	cfg := Config{History: HistoryConfig{Enabled: true}}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		_, err = toml.Decode(string(data), &cfg)
	}
	if err != nil {
		return nil, mmerror.Wrap(err, "failed to parse config").
			WithCode(mmerror.CodeInvalidConfig).
			WithOperation("config.load").
			WithDetail("path", path)
	}

	cfg.applyDefaults()
	cfg.expandEnvVars()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFromEnv loads the file named by MATHEMASCII_CONFIG, then the first
// file found in the default locations. Without any file the defaults are
// returned.
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return Load(path)
	}

	for _, p := range DefaultPaths() {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}
	return Default(), nil
}

// DefaultPaths lists the config locations searched by LoadFromEnv
func DefaultPaths() []string {
	paths := []string{
		"./mathemascii.toml",
		"./mathemascii.yaml",
		"./configs/mathemascii.toml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "mathemascii", "config.toml"))
	}
	return paths
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	if c.General.Name == "" {
		c.General.Name = "mathemascii"
	}
	if c.General.DataDir == "" {
		c.General.DataDir = "./data"
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = "info"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}

	// Render
	if c.Render.Display == "" {
		c.Render.Display = "inline"
	}
	if c.Render.MaxInputLength == 0 {
		c.Render.MaxInputLength = 16 * 1024
	}
	if c.Render.CacheSize == 0 {
		c.Render.CacheSize = 1024
	}
	if c.Render.CacheTTL.Duration == 0 {
		c.Render.CacheTTL.Duration = 10 * time.Minute
	}

	// Server
	if c.Server.Host == "" {
		c.Server.Host = "127.0.0.1"
	}
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8420
	}
	if c.Server.GRPCPort == 0 {
		c.Server.GRPCPort = 9420
	}
	if c.Server.ReadTimeout.Duration == 0 {
		c.Server.ReadTimeout.Duration = 10 * time.Second
	}
	if c.Server.WriteTimeout.Duration == 0 {
		c.Server.WriteTimeout.Duration = 30 * time.Second
	}
	if c.Server.ShutdownTimeout.Duration == 0 {
		c.Server.ShutdownTimeout.Duration = 5 * time.Second
	}

	// History
	if c.History.Path == "" {
		c.History.Path = filepath.Join(c.General.DataDir, "history.db")
	}
	if c.History.RetentionDays == 0 {
		c.History.RetentionDays = 30
	}
	if c.History.MaxRecords == 0 {
		c.History.MaxRecords = 10000
	}
}

// expandEnvVars expands environment variables in path values
func (c *Config) expandEnvVars() {
	c.General.DataDir = os.ExpandEnv(c.General.DataDir)
	c.History.Path = os.ExpandEnv(c.History.Path)
}

// Validate checks value ranges and enumerations
func (c *Config) Validate() error {
	var problems []string

	switch strings.ToLower(c.Render.Display) {
	case "inline", "block":
	default:
		problems = append(problems, fmt.Sprintf("render.display must be inline or block, got %q", c.Render.Display))
	}
	for name, port := range map[string]int{"server.http_port": c.Server.HTTPPort, "server.grpc_port": c.Server.GRPCPort} {
		if port < 0 || port > 65535 {
			problems = append(problems, fmt.Sprintf("%s out of range: %d", name, port))
		}
	}
	if c.Render.CacheSize < 0 {
		problems = append(problems, "render.cache_size must not be negative")
	}
	if c.History.RetentionDays < 0 {
		problems = append(problems, "history.retention_days must not be negative")
	}

	if len(problems) == 0 {
		return nil
	}
	sort.Strings(problems)
	return mmerror.New("invalid configuration: "+strings.Join(problems, "; ")).
		WithCode(mmerror.CodeInvalidConfig).
		WithOperation("config.validate").
		WithDetail("problems", len(problems))
}

// HTTPAddress returns host:port of the HTTP server
func (c *Config) HTTPAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.HTTPPort)
}

// GRPCAddress returns host:port of the gRPC server
func (c *Config) GRPCAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.GRPCPort)
}
