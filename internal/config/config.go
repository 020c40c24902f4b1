package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration.
type Config struct {
	// Run state monitoring configuration
	Run RunConfig `toml:"run"`

	// Reference data configuration
	Data DataConfig `toml:"data"`

	// Database configuration
	Database DatabaseConfig `toml:"database"`

	// API server configuration
	Server ServerConfig `toml:"server"`

	// Application configuration
	App AppConfig `toml:"app"`
}

// RunConfig contains run state file monitoring settings.
type RunConfig struct {
	StateFile     string `toml:"state_file"`     // Path to the run state JSON file
	WatchDebounce string `toml:"watch_debounce"` // Debounce window for file events (e.g., "250ms")
	Ascension     int    `toml:"ascension"`      // Default ascension level for new runs
}

// DataConfig contains reference catalog settings.
type DataConfig struct {
	CatalogDir string `toml:"catalog_dir"` // Directory of catalog JSON files ("" = embedded)
}

// DatabaseConfig contains persistence settings.
type DatabaseConfig struct {
	Path        string `toml:"path"`         // Path to the SQLite database ("" = default location)
	AutoMigrate bool   `toml:"auto_migrate"` // Apply pending migrations on startup
}

// ServerConfig contains API server settings.
type ServerConfig struct {
	Addr string `toml:"addr"` // Listen address (e.g., "127.0.0.1:8844")
}

// AppConfig contains general application settings.
type AppConfig struct {
	DebugMode bool `toml:"debug_mode"` // Enable debug logging
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Run: RunConfig{
			StateFile:     "",
			WatchDebounce: "250ms",
			Ascension:     0,
		},
		Data: DataConfig{
			CatalogDir: "",
		},
		Database: DatabaseConfig{
			Path:        "",
			AutoMigrate: true,
		},
		Server: ServerConfig{
			Addr: "127.0.0.1:8844",
		},
		App: AppConfig{
			DebugMode: false,
		},
	}
}

// configPath returns the path to the configuration file.
func configPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".spire-companion")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return "", fmt.Errorf("create config directory: %w", err)
	}

	return filepath.Join(configDir, "config.toml"), nil
}

// DefaultDatabasePath returns the database location used when the config
// leaves it empty.
func DefaultDatabasePath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".spire-companion", "companion.db"), nil
}

// Load loads the configuration from disk. Returns default config if file doesn't exist.
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	return &config, nil
}

// Save saves the configuration to disk.
func (c *Config) Save() error {
	path, err := configPath()
	if err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration values.
func (c *Config) Validate() error {
	if _, err := time.ParseDuration(c.Run.WatchDebounce); err != nil {
		return fmt.Errorf("invalid watch debounce %q: %w", c.Run.WatchDebounce, err)
	}

	if c.Run.Ascension < 0 || c.Run.Ascension > 20 {
		return fmt.Errorf("ascension level out of range: %d", c.Run.Ascension)
	}

	if c.Server.Addr == "" {
		return fmt.Errorf("server addr cannot be empty")
	}

	return nil
}

// GetWatchDebounce returns the watch debounce window as a duration.
func (c *Config) GetWatchDebounce() (time.Duration, error) {
	return time.ParseDuration(c.Run.WatchDebounce)
}
