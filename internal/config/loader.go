package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultConfigPath = "./config.yaml"

// Load reads configuration with priority ENV > YAML > env-default tags.
// The YAML path comes from CONFIG_PATH and falls back to ./config.yaml.
// A missing fallback file is not an error: configuration then comes from
// ENV and defaults only. A missing explicit CONFIG_PATH file is an error.
func Load() (*Config, error) {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		return load(defaultConfigPath, false)
	}
	return load(path, true)
}

func load(path string, explicit bool) (*Config, error) {
	var cfg Config

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	case explicit:
		return nil, fmt.Errorf("config: file %s: %w", path, statErr)
	default:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

// LoadSection fills a single config section (for example DatabaseConfig) from
// ENV and env-default tags only. One-shot commands use it so they do not
// require settings of components they never start.
func LoadSection[T any]() (*T, error) {
	var section T
	if err := cleanenv.ReadEnv(&section); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	return &section, nil
}
