// Package config resolves how the tracker's persistence is set up.
// Precedence: environment variables, then a YAML config file, then defaults.
// A .env file in the working directory is loaded first, best effort, so the
// environment layer covers it too.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/quanhle/moodcal/internal/envutil"
)

// Config selects the storage backend for a session.
type Config struct {
	// Storage is one of "memory", "file", "sqlite".
	Storage string `yaml:"storage"`
	// Path is the backing file for the file and sqlite backends.
	Path string `yaml:"path"`
}

// Load reads configuration from path (optional; a missing file is fine) and
// overlays MOODCAL_STORAGE / MOODCAL_PATH from the environment.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{Storage: "memory"}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	cfg.Storage = envutil.SafeEnv("MOODCAL_STORAGE", cfg.Storage)
	cfg.Path = envutil.SafeEnv("MOODCAL_PATH", cfg.Path)

	switch cfg.Storage {
	case "memory", "file", "sqlite":
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage)
	}
	return cfg, nil
}
