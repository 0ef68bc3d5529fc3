package resolve

import (
	"github.com/packforge-labs/packforge/internal/registry"
)

// Descriptor identifies one installable mod independent of version. The
// (Platform, ID) pair is the natural key; an id alone is ambiguous because
// the two catalogs issue overlapping id spaces, so the platform travels
// with every id reference.
type Descriptor struct {
	Name     string
	Platform registry.Platform
	ID       string
}

// Key returns the identity key for deduplication.
func (d Descriptor) Key() Key {
	return Key{Platform: d.Platform, ID: d.ID}
}

// Key is the (platform, id) identity of a mod.
type Key struct {
	Platform registry.Platform
	ID       string
}

// Entry is the outcome of matching one mod against the target environment.
// An empty URL means "selected or required, but no compatible build found"
// — an expected state, not an error.
type Entry struct {
	Descriptor

	// URL is the download location of the matched build, or empty.
	URL string

	// RequiredDependencyIDs are the same-platform dependencies declared on
	// the matched build.
	RequiredDependencyIDs []string

	// Description is display text for the mod, populated for external
	// dependencies fetched from registry metadata.
	Description string

	// Required marks entries that came from the always-required set.
	Required bool

	// DependedUpon marks entries referenced as a dependency by at least
	// one other entry in the set.
	DependedUpon bool
}

// Missing describes a final entry that ended up with no compatible build.
type Missing struct {
	Name     string
	Required bool
}

// Result is a completed resolution run.
type Result struct {
	// Offerable is the subset of the catalog compatible with the target,
	// in catalog order. Callers show this before selection.
	Offerable []Descriptor

	// Selection is the final deduplicated install set, in insertion order.
	Selection *SelectionSet

	// Missing lists final entries with no compatible build, annotated by
	// whether each was always-required (critical) or not (best-effort).
	Missing []Missing
}
