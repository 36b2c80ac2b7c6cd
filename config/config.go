// Copyright (c) Enigmastation. All rights reserved.

// Package config loads kgpt client settings from defaults, an optional YAML
// file, an optional .env file and KGPT_* environment variables.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/enigmastation/kgpt/chat"
	"github.com/enigmastation/kgpt/openai"
)

// EnvPrefix is the prefix of environment variables that override file settings.
const EnvPrefix = "KGPT_"

// APIKeyEnvVar is consulted when no key is configured through EnvPrefix or a file.
const APIKeyEnvVar = "OPENAI_API_KEY"

// Config holds client settings, corresponding to kgpt.yml.
type Config struct {
	APIKey         string        `yaml:"api_key,omitempty" koanf:"api_key"`
	Endpoint       string        `yaml:"endpoint" koanf:"endpoint"`
	Model          string        `yaml:"model" koanf:"model"`
	Temperature    float64       `yaml:"temperature" koanf:"temperature"`
	ConnectTimeout time.Duration `yaml:"connect_timeout" koanf:"connect_timeout"`
	ReadTimeout    time.Duration `yaml:"read_timeout" koanf:"read_timeout"`
}

// DefaultConfig returns a Config matching the client defaults.
func DefaultConfig() *Config {
	return &Config{
		Endpoint:       openai.DefaultEndpoint,
		Model:          chat.DefaultModel,
		Temperature:    chat.DefaultTemperature,
		ConnectTimeout: openai.DefaultConnectTimeout,
		ReadTimeout:    openai.DefaultReadTimeout,
	}
}

// LoadDotEnv loads variables from the given .env files (".env" when none
// are given) into the process environment. Missing files are ignored and
// variables already set are not overwritten.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return fmt.Errorf("loading %s: %w", p, err)
		}
	}
	return nil
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (KGPT_*). A missing file is not an error;
// an empty path skips the file.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	// Overlay environment variables: KGPT_API_KEY -> api_key, etc.
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv(APIKeyEnvVar)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
// An empty API key is valid: the client then returns empty results.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Endpoint)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid endpoint %q: must be an http(s) URL", c.Endpoint)
	}
	if c.Model == "" {
		return fmt.Errorf("model is required")
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("temperature %v out of range [0, 2]", c.Temperature)
	}
	if c.ConnectTimeout <= 0 {
		return fmt.Errorf("connect_timeout must be positive")
	}
	if c.ReadTimeout <= 0 {
		return fmt.Errorf("read_timeout must be positive")
	}
	return nil
}

// ClientOptions converts the configuration into [openai.Option]s.
// The API key is passed separately to [openai.New].
func (c *Config) ClientOptions() []openai.Option {
	return []openai.Option{
		openai.WithEndpoint(c.Endpoint),
		openai.WithModel(c.Model),
		openai.WithTemperature(c.Temperature),
		openai.WithConnectTimeout(c.ConnectTimeout),
		openai.WithReadTimeout(c.ReadTimeout),
	}
}

// NewClient builds an [openai.Client] from the configuration.
func (c *Config) NewClient(extra ...openai.Option) *openai.Client {
	return openai.New(c.APIKey, append(c.ClientOptions(), extra...)...)
}
