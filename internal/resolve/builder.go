package resolve

import (
	"context"
)

// Build runs a complete resolution: it matches every catalog entry against
// the target (producing the offerable set), merges the always-required and
// user-chosen mods into the initial selection, expands required
// dependencies to a transitive closure, and reports which final entries
// have no compatible build.
//
// Catalog entries are matched once; selection entries reuse that work.
// Mods chosen outside the catalog are resolved on demand.
func (r *Resolver) Build(ctx context.Context, catalog, alwaysRequired, userChosen []Descriptor) *Result {
	type resolved struct {
		url  string
		deps []string
	}
	matched := make(map[Key]resolved, len(catalog))

	var offerable []Descriptor
	for _, d := range catalog {
		url, deps := r.resolveOne(ctx, d)
		matched[d.Key()] = resolved{url: url, deps: deps}
		if url != "" {
			offerable = append(offerable, d)
		}
	}

	sel := NewSelectionSet()
	add := func(d Descriptor, required bool) {
		if sel.Has(d.Key()) {
			if required {
				e, _ := sel.Get(d.Key())
				e.Required = true
			}
			return
		}
		res, ok := matched[d.Key()]
		if !ok {
			res.url, res.deps = r.resolveOne(ctx, d)
		}
		sel.Add(&Entry{
			Descriptor:            d,
			URL:                   res.url,
			RequiredDependencyIDs: res.deps,
			Required:              required,
		})
	}

	for _, d := range alwaysRequired {
		add(d, true)
	}
	for _, d := range userChosen {
		add(d, false)
	}

	r.Expand(ctx, sel)

	var missing []Missing
	for _, e := range sel.Entries() {
		if e.URL == "" {
			missing = append(missing, Missing{Name: e.Name, Required: e.Required})
		}
	}

	return &Result{
		Offerable: offerable,
		Selection: sel,
		Missing:   missing,
	}
}

// Offerable matches every catalog entry against the target and returns the
// compatible subset, in catalog order. Used by callers that only need the
// pre-selection listing.
func (r *Resolver) Offerable(ctx context.Context, catalog []Descriptor) []Descriptor {
	var out []Descriptor
	for _, d := range catalog {
		if url, _ := r.resolveOne(ctx, d); url != "" {
			out = append(out, d)
		}
	}
	return out
}
