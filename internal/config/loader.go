package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// DotEnvPath is the optional dotenv file read before anything else.
const DotEnvPath = ".env"

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > .env > YAML > defaults (via env-default tags).
// The YAML file path is path, else CONFIG_PATH env, else "./config.yaml".
// If the file does not exist and no path was given explicitly,
// configuration is loaded from ENV + defaults only.
func Load(path string) (*Config, error) {
	if err := loadDotEnv(DotEnvPath); err != nil {
		return nil, err
	}

	var cfg Config

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	explicitPath := path != ""
	if !explicitPath {
		path = "./config.yaml"
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicitPath {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	} else {
		// No file, load from ENV + defaults only.
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

// loadDotEnv exports variables from a dotenv file without overriding the
// ones already set. A missing file is not an error.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("config: load %s: %w", path, err)
}
