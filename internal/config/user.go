package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNotConfigured means no user configuration has been established yet.
// It indicates a missing setup step, not a runtime fault.
var ErrNotConfigured = errors.New("not configured: run the setup wizard first")

// UserConfig mirrors ~/.ge_seer/config.json.
type UserConfig struct {
	UserAgent string `json:"user_agent"`
	DataDir   string `json:"data_dir"`
}

// UserConfigPath returns the path of the user config file, creating the
// hidden base directory if needed.
func UserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	base := filepath.Join(home, ".ge_seer")
	if err := os.MkdirAll(base, 0o755); err != nil {
		return "", fmt.Errorf("create config directory: %w", err)
	}
	return filepath.Join(base, "config.json"), nil
}

// LoadUser reads the user configuration. Fails fast with
// ErrNotConfigured when the file does not exist.
func LoadUser() (*UserConfig, error) {
	path, err := UserConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotConfigured
		}
		return nil, fmt.Errorf("read user config: %w", err)
	}

	var cfg UserConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse user config: %w", err)
	}

	if cfg.UserAgent == "" || cfg.DataDir == "" {
		return nil, fmt.Errorf("%w: user_agent and data_dir are required", ErrNotConfigured)
	}

	return &cfg, nil
}

// SaveUser builds the wiki-compliant User-Agent from the contact info,
// creates the data directory, and writes the user config file.
// contactType must be "discord" or "email".
func SaveUser(contactInfo, contactType, dataDir string) (*UserConfig, error) {
	var contact string
	switch contactType {
	case "discord":
		contact = contactInfo + " on Discord"
	case "email":
		contact = contactInfo + " via Email"
	default:
		return nil, fmt.Errorf("invalid contact type %q: must be 'discord' or 'email'", contactType)
	}

	// Format requested by the wiki for real-time price consumers.
	userAgent := "osrs-ge-seer (GE price history + modeling) - " + contact

	resolved, err := filepath.Abs(dataDir)
	if err != nil {
		return nil, fmt.Errorf("resolve data directory: %w", err)
	}
	if err := os.MkdirAll(resolved, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	cfg := &UserConfig{
		UserAgent: userAgent,
		DataDir:   resolved,
	}

	path, err := UserConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(cfg, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("encode user config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, fmt.Errorf("write user config: %w", err)
	}

	return cfg, nil
}
