package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// defaultPath is looked up when neither --config nor CONFIG_PATH names a file.
const defaultPath = "./config.yaml"

// Load builds the phrasebook configuration from $CONFIG_PATH, or
// ./config.yaml when that is unset. Environment variables override the file
// and env-default tags fill the rest.
func Load() (*Config, error) {
	return LoadPath(os.Getenv("CONFIG_PATH"))
}

// LoadPath is what `phrasebook --config` uses. A named file must exist; with
// an empty path a missing ./config.yaml just means env and defaults only,
// which is how the CLI runs out of the box.
func LoadPath(path string) (*Config, error) {
	var cfg Config

	file, err := resolve(path)
	if err != nil {
		return nil, err
	}
	if file != "" {
		if err := cleanenv.ReadConfig(file, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", file, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// resolve returns the file to read, or "" for env-only loading.
func resolve(path string) (string, error) {
	if path == "" {
		if _, err := os.Stat(defaultPath); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return "", nil
			}
			return "", fmt.Errorf("config: file %s: %w", defaultPath, err)
		}
		return defaultPath, nil
	}
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("config: file %s: %w", path, err)
	}
	return path, nil
}
