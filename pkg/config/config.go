// Package config manages user-level buslog settings. These are tool
// preferences (default annotation author, AI agent, serve port), distinct
// from the per-project config.json record owned by pkg/store.
//
// Settings are read from .buslog.yaml in the user's home directory with a
// BUSLOG_* environment overlay, e.g. BUSLOG_AUTHOR overrides author.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds user-level settings.
type Config struct {
	Author string `mapstructure:"author" yaml:"author,omitempty"`
	Agent  string `mapstructure:"agent" yaml:"agent,omitempty"`
	Port   int    `mapstructure:"port" yaml:"port,omitempty"`
}

const (
	DefaultAgent = "claude-sonnet-4"
	DefaultPort  = 8080
)

var configFile = defaultConfigFile()

func defaultConfigFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".buslog.yaml"
	}
	return filepath.Join(home, ".buslog.yaml")
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigFile(configFile)
	v.SetConfigType("yaml")

	v.SetDefault("agent", DefaultAgent)
	v.SetDefault("port", DefaultPort)

	v.SetEnvPrefix("BUSLOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Missing file is fine; defaults and env still apply
	_ = v.ReadInConfig()
	return v
}

// Path returns the user config file location.
func Path() string {
	return configFile
}

// Load reads the user config, merging file, environment and defaults.
func Load() (*Config, error) {
	var cfg Config
	if err := newViper().Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// Get returns a single setting by key.
func Get(key string) (string, error) {
	switch key {
	case "author", "agent", "port":
		return newViper().GetString(key), nil
	default:
		return "", fmt.Errorf("unknown config key: %s (valid: author, agent, port)", key)
	}
}

// Set updates a single setting and persists the file.
func Set(key, value string) error {
	cfg, err := Load()
	if err != nil {
		cfg = &Config{}
	}

	switch key {
	case "author":
		cfg.Author = value
	case "agent":
		cfg.Agent = value
	case "port":
		port := 0
		if _, err := fmt.Sscanf(value, "%d", &port); err != nil || port <= 0 || port > 65535 {
			return fmt.Errorf("invalid port: %s", value)
		}
		cfg.Port = port
	default:
		return fmt.Errorf("unknown config key: %s (valid: author, agent, port)", key)
	}

	return Save(cfg)
}

// All returns every setting for display.
func All() map[string]string {
	v := newViper()
	return map[string]string{
		"author": v.GetString("author"),
		"agent":  v.GetString("agent"),
		"port":   v.GetString("port"),
	}
}

// Save writes the full config file.
func Save(cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(configFile), 0o755); err != nil {
		return err
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return os.WriteFile(configFile, buf.Bytes(), 0o644)
}

// ResetForTest points the package at a throwaway config path (only use in tests).
func ResetForTest(dir string) {
	configFile = filepath.Join(dir, ".buslog.yaml")
}
