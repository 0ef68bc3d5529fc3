package cli

import (
	"github.com/packforge-labs/packforge/internal/config"
	"github.com/packforge-labs/packforge/internal/match"
	"github.com/packforge-labs/packforge/internal/packfile"
	"github.com/packforge-labs/packforge/internal/registry"
	"github.com/packforge-labs/packforge/internal/resolve"
)

// newResolver wires the registry clients and resolver for one pack
// definition. The CurseForge client is bound to the pack's loader because
// that registry filters loaders server-side.
func newResolver(p *packfile.Packfile) *resolve.Resolver {
	regs := registry.NewSet(
		registry.NewModrinth(config.ModrinthURL()),
		registry.NewCurseForge(config.CurseForgeURL(), p.Loader, credentialProvider()),
	)
	target := match.Target{ReleaseVersion: p.GameVersion, Loader: p.Loader}
	return resolve.New(regs, target, resolve.WithLogger(logger))
}

// credentialProvider prefers a key stored in the config file; otherwise the
// PACKFORGE_CURSEFORGE_API_KEY environment variable is consulted per call.
func credentialProvider() registry.CredentialProvider {
	if key := config.Get(config.KeyCurseForgeAPIKey); key != "" {
		return registry.StaticCredential(key)
	}
	return registry.EnvCredential{}
}

// descriptors converts pack definition mods into resolver descriptors.
func descriptors(mods []packfile.Mod) []resolve.Descriptor {
	out := make([]resolve.Descriptor, 0, len(mods))
	for _, m := range mods {
		out = append(out, resolve.Descriptor{
			Name:     m.Name,
			Platform: registry.Platform(m.Platform),
			ID:       m.ID,
		})
	}
	return out
}
