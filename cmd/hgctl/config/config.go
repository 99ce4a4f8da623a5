package config

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

const (
	defaultServerURL = "http://localhost:8080"
	envVarServerURL  = "HG_SERVER_URL"
	configFileName   = ".hgctl/config.yml"
)

// Config holds the hgctl configuration, including the session token captured
// at login.
type Config struct {
	ServerURL    string `yaml:"server"`
	SessionToken string `yaml:"session_token"`
}

// Load loads configuration from file and environment
func Load() (*Config, error) {
	cfg := &Config{}

	// Missing config file is fine, defaults apply
	_ = loadFromFile(cfg)

	return cfg, nil
}

// Save writes the configuration to ~/.hgctl/config.yml with user-only
// permissions, since it carries the session token.
func (c *Config) Save() error {
	path, err := configPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}

// GetServerURL returns the server URL with priority: env var > config file > default
func (c *Config) GetServerURL() string {
	if url := os.Getenv(envVarServerURL); url != "" {
		return url
	}

	if c.ServerURL != "" {
		return c.ServerURL
	}

	return defaultServerURL
}

func loadFromFile(cfg *Config) error {
	path, err := configPath()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, cfg)
}

func configPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}
