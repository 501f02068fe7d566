// ABOUTME: Application configuration for litenotes.
// ABOUTME: YAML sections with env overrides and defaults resolved against XDG paths.

package config

import (
	"os"
	"path/filepath"
)

// Config is the root application configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Notes    NotesConfig    `yaml:"notes"`
	Log      LogConfig      `yaml:"log"`
}

// DatabaseConfig holds SQLite settings. An empty Path resolves to the XDG
// data directory.
type DatabaseConfig struct {
	Path           string   `yaml:"path"            env:"LITENOTES_DB_PATH"`
	Driver         string   `yaml:"driver"          env:"LITENOTES_DB_DRIVER"          env-default:"sqlite"`
	MaxOpenConns   int      `yaml:"max_open_conns"  env:"LITENOTES_DB_MAX_OPEN_CONNS"  env-default:"1"`
	SeedCategories []string `yaml:"seed_categories" env:"LITENOTES_DB_SEED_CATEGORIES" env-default:"Work,Personal,Ideas" env-separator:","`
}

// NotesConfig holds the note business rules. RequireCategory defaults to
// true in Load; an env-default tag would override an explicit false.
type NotesConfig struct {
	RequireCategory bool `yaml:"require_category" env:"LITENOTES_REQUIRE_CATEGORY"`
}

// LogConfig holds logging settings. An empty File resolves to the XDG state
// directory.
type LogConfig struct {
	Level      string `yaml:"level"        env:"LITENOTES_LOG_LEVEL"        env-default:"info"`
	File       string `yaml:"file"         env:"LITENOTES_LOG_FILE"`
	MaxSizeMB  int    `yaml:"max_size_mb"  env:"LITENOTES_LOG_MAX_SIZE_MB"  env-default:"10"`
	MaxBackups int    `yaml:"max_backups"  env:"LITENOTES_LOG_MAX_BACKUPS"  env-default:"3"`
	MaxAgeDays int    `yaml:"max_age_days" env:"LITENOTES_LOG_MAX_AGE_DAYS" env-default:"28"`
}

// DefaultPath returns $XDG_CONFIG_HOME/litenotes/config.yaml.
func DefaultPath() string {
	return filepath.Join(xdgDir("XDG_CONFIG_HOME", ".config"), "litenotes", "config.yaml")
}

// DefaultLogFile returns $XDG_STATE_HOME/litenotes/litenotes.log.
func DefaultLogFile() string {
	return filepath.Join(xdgDir("XDG_STATE_HOME", filepath.Join(".local", "state")), "litenotes", "litenotes.log")
}

func xdgDir(env, fallback string) string {
	if dir := os.Getenv(env); dir != "" {
		return dir
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, fallback)
}
