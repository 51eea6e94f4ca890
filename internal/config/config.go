package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const appName = "glowup"

type Config struct {
	DB  DBConfig  `toml:"database"`
	Log LogConfig `toml:"log"`
}

type DBConfig struct {
	ConnectionString string `toml:"connection_string" env:"GLOWUP_DATABASE_URL"` // Local path or libsql URL.
	AuthToken        string `toml:"auth_token" env:"GLOWUP_AUTH_TOKEN"`         // Only used by remote databases.
}

type LogConfig struct {
	Level string `toml:"level" env:"GLOWUP_LOG_LEVEL"` // debug, info, warn or error.
}

// Returns the directory holding the config file and the default database.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// Returns the path to the config file.
func GetConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Default returns the configuration used when no file exists.
func Default() (*Config, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return nil, err
	}
	return &Config{
		DB:  DBConfig{ConnectionString: filepath.Join(dir, appName+".db")},
		Log: LogConfig{Level: "warn"},
	}, nil
}

// Reads the configuration. Values are layered: defaults, then the config
// file, then a .env file in the working directory, then the environment.
func LoadConfig() (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}

	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	// A missing .env is fine.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	// Check for a DEV_MODE environment variable.
	if os.Getenv("DEV_MODE") == "true" {
		cfg.DB.ConnectionString = "file:./local.db?cache=shared&mode=rwc"
	}

	return cfg, nil
}

// Save writes cfg to the config file, creating the directory if needed.
func Save(cfg *Config) (string, error) {
	path, err := GetConfigPath()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return "", fmt.Errorf("encoding TOML: %w", err)
	}
	return path, nil
}
