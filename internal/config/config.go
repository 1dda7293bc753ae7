// Package config loads and saves the givepool TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all givepool configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Donation   DonationConfig   `toml:"donation"`
	Server     ServerConfig     `toml:"server"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	PoolsFile    string `toml:"pools_file,omitempty"`
	DefaultAsset string `toml:"default_asset"`
}

// DonationConfig holds donation dialog settings.
type DonationConfig struct {
	QuickAmounts []string               `toml:"quick_amounts,omitempty"`
	Fees         map[string]FeeOverride `toml:"fees,omitempty"`
}

// FeeOverride replaces parts of the built-in fee for one asset.
type FeeOverride struct {
	Amount   *float64 `toml:"amount,omitempty"`
	Decimals *int     `toml:"decimals,omitempty"`
	Covered  *bool    `toml:"covered,omitempty"`
}

// ServerConfig holds `givepool serve` settings.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			DefaultAsset: "XLM",
		},
		Server: ServerConfig{
			Addr: "127.0.0.1:8788",
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "givepool")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "givepool")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	return LoadFrom(Path())
}

// LoadFrom reads the config at path, returning defaults if it doesn't exist.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // config path is under the user's config dir
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
	return SaveTo(Path(), cfg)
}

// SaveTo writes the config to path, creating its directory.
func SaveTo(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600) //nolint:gosec // see LoadFrom
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// PoolsFileEnv overrides the configured pools file.
const PoolsFileEnv = "GIVEPOOL_POOLS_FILE"

// GetPoolsFile returns the pools file from env var or config, in that order.
func GetPoolsFile(cfg Config) string {
	if p := os.Getenv(PoolsFileEnv); p != "" {
		return p
	}
	return cfg.General.PoolsFile
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}
