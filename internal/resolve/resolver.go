package resolve

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/packforge-labs/packforge/internal/match"
	"github.com/packforge-labs/packforge/internal/registry"
)

// Resolver expands a selection of mods with their required dependencies.
// Execution is sequential; registry calls are bounded by the clients' own
// timeouts and every failure degrades to "no compatible build" for the
// single mod or dependency involved.
type Resolver struct {
	registries *registry.Set
	target     match.Target
	log        *log.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the logger used for degradation warnings.
func WithLogger(l *log.Logger) Option {
	return func(r *Resolver) {
		r.log = l
	}
}

// New creates a Resolver for one target environment.
func New(registries *registry.Set, target match.Target, opts ...Option) *Resolver {
	r := &Resolver{
		registries: registries,
		target:     target,
		log:        log.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Target returns the target environment this resolver was created for.
func (r *Resolver) Target() match.Target { return r.target }

// resolveOne fetches the candidate releases for one mod and matches them
// against the target. Registry and matching failures both come back as an
// empty URL with no dependencies; the reason is logged and the run goes on.
func (r *Resolver) resolveOne(ctx context.Context, d Descriptor) (url string, deps []string) {
	src, err := r.registries.For(d.Platform)
	if err != nil {
		r.log.Warn("no registry for platform", "mod", d.Name, "platform", d.Platform)
		return "", nil
	}

	releases, err := src.Releases(ctx, d.ID)
	if err != nil {
		r.log.Warn("registry lookup failed", "mod", d.Name, "platform", d.Platform, "err", err)
		return "", nil
	}

	res, err := match.Match(releases, r.target)
	if err != nil {
		return "", nil
	}
	return res.URL, res.RequiredDependencyIDs
}

// Expand walks the required dependencies of every entry in sel to a full
// transitive closure: dependencies discovered along the way are themselves
// expanded, not just the originally selected mods. Each (platform, id) is
// processed at most once. Dependencies already in the set are only marked
// as depended-upon; unknown ones are fetched from their registry and
// inserted as external entries, possibly with an empty URL.
func (r *Resolver) Expand(ctx context.Context, sel *SelectionSet) {
	processed := make(map[Key]bool)

	queue := make([]Key, 0, sel.Len())
	for _, e := range sel.Entries() {
		queue = append(queue, e.Key())
	}

	for len(queue) > 0 {
		k := queue[0]
		queue = queue[1:]
		if processed[k] {
			continue
		}
		processed[k] = true

		entry, ok := sel.Get(k)
		if !ok {
			continue
		}

		for _, depID := range entry.RequiredDependencyIDs {
			// Dependencies inherit the platform of the release that
			// declared them; both catalogs only reference their own ids.
			if !registry.ValidID(entry.Platform, depID) {
				r.log.Warn("skipping dependency with invalid id",
					"mod", entry.Name, "platform", entry.Platform, "dependency", depID)
				continue
			}

			depKey := Key{Platform: entry.Platform, ID: depID}
			if existing, ok := sel.Get(depKey); ok {
				existing.DependedUpon = true
				continue
			}

			dep := r.resolveExternal(ctx, depKey)
			sel.Add(dep)
			queue = append(queue, depKey)
		}
	}
}

// resolveExternal builds an entry for a dependency the caller's catalog
// doesn't describe: display metadata comes from the registry, the build
// from the matcher. Metadata failure degrades to using the raw id as the
// display name; it never stops resolution of other dependencies.
func (r *Resolver) resolveExternal(ctx context.Context, k Key) *Entry {
	name := k.ID
	description := ""

	if src, err := r.registries.For(k.Platform); err == nil {
		meta, err := src.Metadata(ctx, k.ID)
		if err != nil {
			r.log.Warn("metadata lookup failed for external dependency",
				"platform", k.Platform, "id", k.ID, "err", err)
		} else if meta.Name != "" {
			name = meta.Name
			description = meta.Description
		}
	}

	d := Descriptor{Name: name, Platform: k.Platform, ID: k.ID}
	url, deps := r.resolveOne(ctx, d)

	return &Entry{
		Descriptor:            d,
		URL:                   url,
		RequiredDependencyIDs: deps,
		Description:           description,
		DependedUpon:          true,
	}
}
