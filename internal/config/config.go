// Package config loads the service configuration: defaults, then an optional
// YAML file, then environment overrides.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/ortelius/ghwire/internal/services"
	"github.com/ortelius/ghwire/util"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v2"
)

// GitHubConfig configures the upstream API client.
type GitHubConfig struct {
	Token   string        `yaml:"token"`
	APIURL  string        `yaml:"api_url"`
	Timeout time.Duration `yaml:"timeout"`
}

// Config is the service configuration.
type Config struct {
	Port        string       `yaml:"port"`
	LogLevel    string       `yaml:"log_level"`
	EventBuffer int          `yaml:"event_buffer"`
	GitHub      GitHubConfig `yaml:"github"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Port:        "3000",
		LogLevel:    "info",
		EventBuffer: services.DefaultEventCapacity,
		GitHub: GitHubConfig{
			Timeout: 30 * time.Second,
		},
	}
}

// Load reads the file named by GHWIRE_CONFIG, if any, and applies the environment.
func Load() (*Config, error) {
	return LoadFile(util.GetEnvDefault("GHWIRE_CONFIG", ""))
}

// LoadFile reads the YAML file at path over the defaults and applies the
// environment. An empty path skips the file.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.UnmarshalStrict(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	c.Port = util.GetEnvDefault("MS_PORT", c.Port)
	c.LogLevel = util.GetEnvDefault("GHWIRE_LOG_LEVEL", c.LogLevel)
	c.GitHub.Token = util.GetEnvDefault("GITHUB_TOKEN", c.GitHub.Token)
	c.GitHub.APIURL = util.GetEnvDefault("GITHUB_API_URL", c.GitHub.APIURL)

	buffer, err := util.GetEnvInt("GHWIRE_EVENT_BUFFER", c.EventBuffer)
	if err != nil {
		return err
	}
	c.EventBuffer = buffer
	return nil
}

// Validate checks the loaded values.
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("port %q is not a valid TCP port", c.Port)
	}
	if c.EventBuffer <= 0 {
		return fmt.Errorf("event_buffer must be positive, got %d", c.EventBuffer)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	if c.GitHub.Timeout <= 0 {
		return fmt.Errorf("github.timeout must be positive, got %s", c.GitHub.Timeout)
	}
	if c.GitHub.APIURL != "" {
		u, err := url.Parse(c.GitHub.APIURL)
		if err != nil {
			return fmt.Errorf("github.api_url: %w", err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("github.api_url %q must be an http or https URL", c.GitHub.APIURL)
		}
	}
	return nil
}
