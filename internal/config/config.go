package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/packforge-labs/packforge/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Well-known configuration keys.
const (
	// KeyModrinthURL overrides the Modrinth API base URL (mirrors, tests).
	KeyModrinthURL = "modrinth_url"

	// KeyCurseForgeURL overrides the CurseForge API base URL.
	KeyCurseForgeURL = "curseforge_url"

	// KeyCurseForgeAPIKey stores a CurseForge API key. The
	// PACKFORGE_CURSEFORGE_API_KEY env var takes precedence.
	KeyCurseForgeAPIKey = "curseforge_api_key"
)

// Dir returns the path to the Packforge config directory (~/.packforge/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.packforge/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// ModrinthURL returns the effective Modrinth API base URL, checking (in order):
// 1. PACKFORGE_MODRINTH_URL env var
// 2. config key "modrinth_url"
// 3. the built-in default
func ModrinthURL() string {
	if v := os.Getenv(branding.EnvVar("MODRINTH_URL")); v != "" {
		return v
	}
	if v := Get(KeyModrinthURL); v != "" {
		return v
	}
	return branding.ModrinthBaseURL()
}

// CurseForgeURL returns the effective CurseForge API base URL, with the same
// precedence order as ModrinthURL.
func CurseForgeURL() string {
	if v := os.Getenv(branding.EnvVar("CURSEFORGE_URL")); v != "" {
		return v
	}
	if v := Get(KeyCurseForgeURL); v != "" {
		return v
	}
	return branding.CurseForgeBaseURL()
}
