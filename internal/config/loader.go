// ABOUTME: Loads configuration from .env, YAML, and environment variables.
// ABOUTME: Priority is ENV > YAML > env-default tags.

package config

import (
	"fmt"
	"os"

	"github.com/harper/litenotes/internal/db"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Load reads configuration from path. An empty path falls back to
// LITENOTES_CONFIG and then DefaultPath. A missing file is only an error when
// the path was given explicitly; otherwise ENV and defaults are used.
func Load(path string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	explicitPath := path != ""
	if !explicitPath {
		path = os.Getenv("LITENOTES_CONFIG")
		explicitPath = path != ""
	}
	if !explicitPath {
		path = DefaultPath()
	}

	cfg := Config{Notes: NotesConfig{RequireCategory: true}}
	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicitPath {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if cfg.Database.Path == "" {
		cfg.Database.Path = db.DefaultPath()
	}
	if cfg.Log.File == "" {
		cfg.Log.File = DefaultLogFile()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}
