// ABOUTME: Persisted configuration: store backend selection, data dir,
// ABOUTME: and the two consent-prompt strings injected at packaging time.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Kayz-mann/healthbridge/internal/store"
	"github.com/Kayz-mann/healthbridge/internal/store/badgerstore"
	"github.com/Kayz-mann/healthbridge/internal/store/sqlitestore"
)

// Config stores healthbridge configuration.
type Config struct {
	// Backend selects the store backend: "sqlite" (default) or "badger".
	Backend string `json:"backend,omitempty"`

	// DataDir is the root directory for store data. SQLite puts
	// healthbridge.db here; Badger puts a badger/ folder here. Supports ~
	// expansion. Defaults to ~/.local/share/healthbridge.
	DataDir string `json:"data_dir,omitempty"`

	// ReadPrompt and WritePrompt are the human-readable consent strings
	// shown when authorization is requested. They are the only persisted
	// configuration of the core layer; packaging tooling injects them
	// into app metadata.
	ReadPrompt  string `json:"read_prompt,omitempty"`
	WritePrompt string `json:"write_prompt,omitempty"`
}

// GetBackend returns the configured backend, defaulting to "sqlite".
func (c *Config) GetBackend() string {
	if c.Backend == "" {
		return "sqlite"
	}
	return c.Backend
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return DataDir()
	}
	return ExpandPath(c.DataDir)
}

// OpenStore creates a store implementation based on the configured
// backend.
func (c *Config) OpenStore() (store.Store, error) {
	dataDir := c.GetDataDir()

	switch backend := c.GetBackend(); backend {
	case "sqlite":
		return sqlitestore.Open(filepath.Join(dataDir, "healthbridge.db"))
	case "badger":
		return badgerstore.Open(filepath.Join(dataDir, "badger"))
	default:
		return nil, fmt.Errorf("unknown backend: %q", backend)
	}
}

// DataDir returns the default data directory following the XDG spec.
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "healthbridge")
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "healthbridge", "config.json")
}

// Load reads config from disk. A missing file yields the zero config.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
