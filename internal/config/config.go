package config

import (
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the externally supplied application configuration: where the
// backend lives and how long a request may take.
type Config struct {
	API     APIConfig `yaml:"api"`
	IsDebug bool      `yaml:"is_debug" env:"INKREAD_DEBUG" env-default:"false"`
}

type APIConfig struct {
	BaseURL        string `yaml:"base_url" env:"INKREAD_API_BASE_URL" env-default:"https://api.inkread.app/api/v1"`
	TimeoutSeconds int    `yaml:"timeout_seconds" env:"INKREAD_API_TIMEOUT" env-default:"30"`
}

// Timeout returns the request budget as a duration.
func (a APIConfig) Timeout() time.Duration {
	return time.Duration(a.TimeoutSeconds) * time.Second
}

// Load reads configuration from the given YAML file with environment
// overrides. A missing file is not an error; the environment and defaults
// apply alone.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
