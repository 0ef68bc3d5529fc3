package registry

import (
	"context"
	"fmt"
)

// Platform identifies which external catalog a mod id belongs to. An id is
// only meaningful together with its platform; the same string can name
// different mods on different platforms.
type Platform string

const (
	// PlatformModrinth is the open Modrinth catalog.
	PlatformModrinth Platform = "modrinth"

	// PlatformCurseForge is the CurseForge catalog (requires an API key).
	PlatformCurseForge Platform = "curseforge"
)

// CandidateRelease is one registry-reported build of a mod, normalized from
// either catalog's raw response shape.
type CandidateRelease struct {
	// ID is the registry's own release identifier. Used only as a stable
	// sort key so matching is deterministic across runs.
	ID string

	// VersionTags lists the game versions this build supports (e.g.
	// "1.21", "1.21.3").
	VersionTags []string

	// LoaderTags lists the mod loaders this build supports (e.g. "fabric").
	LoaderTags []string

	// FileURL is the download location of the build's primary file.
	FileURL string

	// Primary reports whether the registry flagged this build's file as
	// the primary artifact.
	Primary bool

	// RequiredDependencyIDs lists same-platform mod ids this build
	// declares as required dependencies.
	RequiredDependencyIDs []string
}

// Metadata is the display information for a mod, fetched when a dependency
// shows up that the caller's catalog doesn't already describe.
type Metadata struct {
	Name        string
	Description string
}

// Source is one catalog the resolver can query. Both methods issue network
// I/O only; neither mutates shared state.
type Source interface {
	Platform() Platform
	Releases(ctx context.Context, id string) ([]CandidateRelease, error)
	Metadata(ctx context.Context, id string) (*Metadata, error)
}

// Set holds one Source per platform and dispatches by platform.
type Set struct {
	sources map[Platform]Source
}

// NewSet builds a Set from the given sources. Later sources for the same
// platform replace earlier ones.
func NewSet(sources ...Source) *Set {
	s := &Set{sources: make(map[Platform]Source)}
	for _, src := range sources {
		s.sources[src.Platform()] = src
	}
	return s
}

// For returns the Source for the given platform.
func (s *Set) For(p Platform) (Source, error) {
	src, ok := s.sources[p]
	if !ok {
		return nil, fmt.Errorf("no registry configured for platform %q", p)
	}
	return src, nil
}
