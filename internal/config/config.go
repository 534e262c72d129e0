package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const appName = "mysticguide"

// Config represents the application configuration
type Config struct {
	Locale        string `toml:"locale"`
	DefaultSpread string `toml:"default_spread"`
	Model         string `toml:"model"`
	Storage       string `toml:"storage"`
	ImageDir      string `toml:"image_dir"`
	LogLevel      string `toml:"log_level"`
}

// Default returns the configuration written on first run
func Default() *Config {
	return &Config{
		Locale:        "en",
		DefaultSpread: "three-card",
		Model:         "gemini-2.0-flash",
		Storage:       "file",
		LogLevel:      "warn",
	}
}

// GetXDGDataHome returns XDG_DATA_HOME or default path
func GetXDGDataHome() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return xdgData
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".local", "share")
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetCacheDir returns XDG_CACHE_HOME/mysticguide or default path
func GetCacheDir() string {
	if xdgCache := os.Getenv("XDG_CACHE_HOME"); xdgCache != "" {
		return filepath.Join(xdgCache, appName)
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".cache", appName)
}

// GetDataDir returns the directory saved readings are kept in
func GetDataDir() string {
	return filepath.Join(GetXDGDataHome(), appName)
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), appName, "config.toml")
}

// LoadEnv loads a .env file from the working directory if present.
// Variables already set in the environment win.
func LoadEnv() error {
	if _, err := os.Stat(".env"); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(); err != nil {
		return fmt.Errorf("error loading .env: %w", err)
	}
	return nil
}

// APIKey returns the Gemini API key from the environment
func APIKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	return os.Getenv("GOOGLE_API_KEY")
}

// LoadConfig loads the config file, creating it with defaults if missing.
// Keys absent from the file keep their default values.
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	// Create default config if it doesn't exist
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig()
	}

	config := Default()
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	return config, nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig() (*Config, error) {
	config := Default()
	if err := writeConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

func writeConfig(config *Config) error {
	configPath := GetConfigFilePath()

	// Ensure the config directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	// Encode the config to TOML
	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	return nil
}

// fields maps config keys to their accessors
var fields = map[string]func(c *Config) *string{
	"locale":         func(c *Config) *string { return &c.Locale },
	"default_spread": func(c *Config) *string { return &c.DefaultSpread },
	"model":          func(c *Config) *string { return &c.Model },
	"storage":        func(c *Config) *string { return &c.Storage },
	"image_dir":      func(c *Config) *string { return &c.ImageDir },
	"log_level":      func(c *Config) *string { return &c.LogLevel },
}

// Keys returns the known config keys in sorted order
func Keys() []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get returns the value of one config key
func (c *Config) Get(key string) (string, error) {
	field, ok := fields[key]
	if !ok {
		return "", fmt.Errorf("unknown config key: %s", key)
	}
	return *field(c), nil
}

// Set updates one config key in the config file
func Set(key, value string) error {
	field, ok := fields[key]
	if !ok {
		return fmt.Errorf("unknown config key: %s", key)
	}
	if key == "storage" && value != "file" && value != "sqlite" {
		return fmt.Errorf("storage must be file or sqlite, got %q", value)
	}

	config, err := LoadConfig()
	if err != nil {
		return err
	}

	*field(config) = value
	return writeConfig(config)
}
