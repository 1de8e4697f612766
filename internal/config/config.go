// Package config resolves NCBI identification settings from flags,
// environment variables and the global config file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the optional NCBI identification settings.
type Config struct {
	// Email is sent with every request for API identification.
	Email string `yaml:"email,omitempty"`
	// APIKey raises the E-utilities rate limit when set.
	APIKey string `yaml:"api_key,omitempty"`
}

const (
	// GlobalConfigDir is the directory name under XDG_CONFIG_HOME.
	GlobalConfigDir = "pharmapapers"
	// GlobalConfigFile is the config file name.
	GlobalConfigFile = "config.yml"

	// EnvEmail and EnvAPIKey are the environment variable names consulted
	// after flags and before the config file.
	EnvEmail  = "NCBI_EMAIL"
	EnvAPIKey = "NCBI_API_KEY"
)

// GlobalConfigPath returns the path to the global config file.
// Respects XDG_CONFIG_HOME, defaults to ~/.config/pharmapapers/config.yml.
func GlobalConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, GlobalConfigDir, GlobalConfigFile)
}

// LoadGlobal loads the global configuration file. A missing file is not an
// error; it yields an empty config.
func LoadGlobal() (*Config, error) {
	return loadFile(GlobalConfigPath())
}

func loadFile(path string) (*Config, error) {
	if path == "" {
		return &Config{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return &cfg, nil
}

// Resolve returns the effective email and API key. Flag values win, then
// environment variables (with .env loaded via godotenv), then the global
// config file.
func Resolve(flagEmail, flagAPIKey string) (email, apiKey string, err error) {
	_ = godotenv.Load()

	cfg, err := LoadGlobal()
	if err != nil {
		return "", "", err
	}

	email = firstNonEmpty(flagEmail, os.Getenv(EnvEmail), cfg.Email)
	apiKey = firstNonEmpty(flagAPIKey, os.Getenv(EnvAPIKey), cfg.APIKey)
	return email, apiKey, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
