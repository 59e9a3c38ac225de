// Package config loads wallet preferences from a TOML file, with
// environment overrides picked up from the process env or a .env file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config holds all wallet configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	DataDir         string `toml:"data_dir,omitempty"`
	Currency        string `toml:"currency"`
	DefaultCategory string `toml:"default_category"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			Currency:        "$",
			DefaultCategory: "General",
		},
		Appearance: AppearanceConfig{
			Theme: "dark",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "wallet")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "wallet")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// DataDir returns the directory holding the ledger and task files.
// Precedence: WALLET_DATA_DIR env, config file, XDG data dir.
func (c Config) DataDir() string {
	if dir := os.Getenv("WALLET_DATA_DIR"); dir != "" {
		return dir
	}
	if c.General.DataDir != "" {
		return c.General.DataDir
	}
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "wallet")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "wallet")
}

// LedgerPath returns the path of the JSON ledger snapshot.
func (c Config) LedgerPath() string {
	return filepath.Join(c.DataDir(), "wallet_data.json")
}

// TasksPath returns the path of the to-do manager's task database.
func (c Config) TasksPath() string {
	return filepath.Join(c.DataDir(), "tasks.db")
}

// Load reads the config file, returning defaults if it doesn't exist.
// A .env file in the working directory is honored for the WALLET_*
// overrides before the config file is consulted.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	if err := os.MkdirAll(ConfigDir(), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
