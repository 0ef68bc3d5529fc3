// Package branding provides compile-time identity values for the CLI.
//
// Forkers edit branding.yaml in this package, then rebuild. Go's
// //go:embed bakes the values into the binary.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName           string `yaml:"cli_name"`
	DisplayName       string `yaml:"display_name"`
	Description       string `yaml:"description"`
	HomeDir           string `yaml:"home_dir"`
	EnvPrefix         string `yaml:"env_prefix"`
	GoModule          string `yaml:"go_module"`
	ModrinthBaseURL   string `yaml:"modrinth_base_url"`
	CurseForgeBaseURL string `yaml:"curseforge_base_url"`
}

func load() {
	once.Do(func() {
		// Set hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:           "packforge",
			DisplayName:       "Packforge",
			Description:       "Mod compatibility and dependency resolution for modpack installs",
			HomeDir:           ".packforge",
			EnvPrefix:         "PACKFORGE",
			GoModule:          "github.com/packforge-labs/packforge",
			ModrinthBaseURL:   "https://api.modrinth.com/v2",
			CurseForgeBaseURL: "https://api.curseforge.com/v1",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "packforge").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "Packforge").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".packforge").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "PACKFORGE").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path. Not consumed at runtime.
func GoModule() string { load(); return defaults.GoModule }

// ModrinthBaseURL returns the default Modrinth API endpoint.
func ModrinthBaseURL() string { load(); return defaults.ModrinthBaseURL }

// CurseForgeBaseURL returns the default CurseForge API endpoint.
func CurseForgeBaseURL() string { load(); return defaults.CurseForgeBaseURL }

// UserAgent returns the User-Agent header value sent to the registries.
func UserAgent() string { load(); return defaults.CLIName + " (" + defaults.GoModule + ")" }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("HOME") → "PACKFORGE_HOME".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
