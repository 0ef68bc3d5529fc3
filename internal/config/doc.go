// Package config manages user-level settings stored at ~/.packforge/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// registry endpoint overrides and the CurseForge API key location.
package config
