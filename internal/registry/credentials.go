package registry

import (
	"context"
	"fmt"
	"os"

	"github.com/packforge-labs/packforge/internal/branding"
)

// CredentialProvider supplies the CurseForge API key. Implementations must
// be safely callable repeatedly without side effects; the client may fetch
// the key once per request.
type CredentialProvider interface {
	APIKey(ctx context.Context) (string, error)
}

// EnvCredential reads the API key from an environment variable. The zero
// value uses PACKFORGE_CURSEFORGE_API_KEY.
type EnvCredential struct {
	// Var overrides the environment variable name.
	Var string
}

// APIKey implements CredentialProvider.
func (e EnvCredential) APIKey(ctx context.Context) (string, error) {
	name := e.Var
	if name == "" {
		name = branding.EnvVar("CURSEFORGE_API_KEY")
	}
	key := os.Getenv(name)
	if key == "" {
		return "", fmt.Errorf("environment variable %s is not set", name)
	}
	return key, nil
}

// StaticCredential returns a fixed API key. Useful in tests and for callers
// that load the key through their own secret store.
type StaticCredential string

// APIKey implements CredentialProvider.
func (s StaticCredential) APIKey(ctx context.Context) (string, error) {
	if s == "" {
		return "", fmt.Errorf("no API key configured")
	}
	return string(s), nil
}
