// Package config loads logframe.yaml and applies environment overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up in the working directory.
const DefaultPath = "logframe.yaml"

// Environment overrides.
const (
	EnvLogLevel  = "LOGFRAME_LOG_LEVEL"
	EnvLanguage  = "LOGFRAME_LANGUAGE"
	EnvRedisAddr = "LOGFRAME_REDIS_ADDR"
	EnvRedisDB   = "LOGFRAME_REDIS_DB"
)

// Config is the CLI and MCP server configuration.
type Config struct {
	LogLevel         string  `yaml:"log_level"`
	LogFormat        string  `yaml:"log_format"`
	Language         string  `yaml:"language"`
	RubricPath       string  `yaml:"rubric_path"`
	TranslationsPath string  `yaml:"translations_path"`
	MetricsFile      string  `yaml:"metrics_file"`
	Catalog          Catalog `yaml:"catalog"`
	Records          Records `yaml:"records"`
}

// Catalog selects the reference data source. The first non-empty of
// Redis.Addr, Dir and File wins.
type Catalog struct {
	File  string `yaml:"file"`
	Dir   string `yaml:"dir"`
	Redis Redis  `yaml:"redis"`
}

// Redis configures the redis catalog and record store.
type Redis struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Prefix   string `yaml:"prefix"`
	TTL      string `yaml:"ttl"`
}

// Records configures where derived records go. Empty disables recording
// unless redis is configured.
type Records struct {
	Dir string `yaml:"dir"`
	// Redact lists regular expressions; result keys matching any of them
	// are masked before a record is written.
	Redact []string `yaml:"redact"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel:  "info",
		LogFormat: "text",
		Language:  "en",
	}
}

// Load reads path over the defaults and applies the environment.
// A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath
	}

	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case !os.IsNotExist(err):
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := lookup(EnvLanguage); ok && v != "" {
		c.Language = v
	}
	if v, ok := lookup(EnvRedisAddr); ok && v != "" {
		c.Catalog.Redis.Addr = v
	}
	if v, ok := lookup(EnvRedisDB); ok && v != "" {
		db, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvRedisDB, v, err)
		}
		c.Catalog.Redis.DB = db
	}
	return nil
}
