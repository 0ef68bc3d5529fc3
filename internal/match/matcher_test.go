package match

import (
	"errors"
	"fmt"
	"testing"

	"github.com/packforge-labs/packforge/internal/registry"
)

func fabricRelease(id, url string, versions []string, deps ...string) registry.CandidateRelease {
	return registry.CandidateRelease{
		ID:                    id,
		VersionTags:           versions,
		LoaderTags:            []string{"fabric"},
		FileURL:               url,
		RequiredDependencyIDs: deps,
	}
}

func TestMatchExactTier(t *testing.T) {
	candidates := []registry.CandidateRelease{
		fabricRelease("r1", "https://cdn.example/old.jar", []string{"1.19.2"}),
		fabricRelease("r2", "https://cdn.example/exact.jar", []string{"1.20.1"}),
		fabricRelease("r3", "https://cdn.example/new.jar", []string{"1.21"}),
	}

	res, err := Match(candidates, Target{ReleaseVersion: "1.20.1", Loader: "fabric"})
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if res.URL != "https://cdn.example/exact.jar" {
		t.Errorf("URL = %q, want the exact-tagged release", res.URL)
	}
}

func TestMatchLoaderMustAlsoMatch(t *testing.T) {
	candidates := []registry.CandidateRelease{
		{
			ID:          "r1",
			VersionTags: []string{"1.20.1"},
			LoaderTags:  []string{"forge"},
			FileURL:     "https://cdn.example/forge.jar",
		},
	}

	_, err := Match(candidates, Target{ReleaseVersion: "1.20.1", Loader: "fabric"})
	if !errors.Is(err, ErrNoCompatibleRelease) {
		t.Fatalf("err = %v, want ErrNoCompatibleRelease", err)
	}
}

func TestMatchCoarsenedStandalone(t *testing.T) {
	// Only a series release exists, no patch-level releases: the
	// coarsened fallback applies.
	candidates := []registry.CandidateRelease{
		fabricRelease("r1", "https://cdn.example/series.jar", []string{"1.21"}),
	}

	res, err := Match(candidates, Target{ReleaseVersion: "1.21.3", Loader: "fabric"})
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if res.URL != "https://cdn.example/series.jar" {
		t.Errorf("URL = %q, want the series release", res.URL)
	}
}

func TestMatchCoarsenedWildcardAndZeroPatch(t *testing.T) {
	tests := []struct {
		name string
		tag  string
	}{
		{"wildcard patch", "1.21.x"},
		{"zero patch", "1.21.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidates := []registry.CandidateRelease{
				fabricRelease("r1", "https://cdn.example/mod.jar", []string{tt.tag}),
			}
			res, err := Match(candidates, Target{ReleaseVersion: "1.21.4", Loader: "fabric"})
			if err != nil {
				t.Fatalf("Match: %v", err)
			}
			if res.URL != "https://cdn.example/mod.jar" {
				t.Errorf("URL = %q", res.URL)
			}
		})
	}
}

func TestMatchCoarseningSafetyGate(t *testing.T) {
	candidates := []registry.CandidateRelease{
		fabricRelease("r1", "https://cdn.example/series.jar", []string{"1.21"}),
		fabricRelease("r2", "https://cdn.example/patch5.jar", []string{"1.21.5"}),
	}

	// The requested patch is beyond every sibling patch the mod ever
	// shipped: the series fallback must be suppressed.
	_, err := Match(candidates, Target{ReleaseVersion: "1.21.6", Loader: "fabric"})
	if !errors.Is(err, ErrNoCompatibleRelease) {
		t.Fatalf("target 1.21.6: err = %v, want ErrNoCompatibleRelease", err)
	}

	// A requested patch within the shipped range may fall back.
	res, err := Match(candidates, Target{ReleaseVersion: "1.21.2", Loader: "fabric"})
	if err != nil {
		t.Fatalf("target 1.21.2: %v", err)
	}
	if res.URL != "https://cdn.example/series.jar" {
		t.Errorf("URL = %q, want the series release", res.URL)
	}
}

func TestMatchZeroPatchTagIsNotASibling(t *testing.T) {
	// A mod that spells its series release "1.21.0" (with or without a
	// bare "1.21" alias) has shipped no patch-level builds, so the
	// coarsened fallback stays available for any patch of the series.
	tests := []struct {
		name string
		tags [][]string
		want string
	}{
		{
			name: "lone zero-patch tag",
			tags: [][]string{{"1.21.0"}},
			want: "https://cdn.example/r0.jar",
		},
		{
			name: "zero-patch alongside series tag",
			tags: [][]string{{"1.21"}, {"1.21.0"}},
			want: "https://cdn.example/r0.jar",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var candidates []registry.CandidateRelease
			for i, tags := range tt.tags {
				candidates = append(candidates,
					fabricRelease(fmt.Sprintf("r%d", i), fmt.Sprintf("https://cdn.example/r%d.jar", i), tags))
			}

			res, err := Match(candidates, Target{ReleaseVersion: "1.21.6", Loader: "fabric"})
			if err != nil {
				t.Fatalf("Match: %v", err)
			}
			if res.URL != tt.want {
				t.Errorf("URL = %q, want %q", res.URL, tt.want)
			}
		})
	}

	// A real patch sibling still arms the gate even with a zero-patch
	// tag present.
	candidates := []registry.CandidateRelease{
		fabricRelease("r1", "https://cdn.example/zero.jar", []string{"1.21.0"}),
		fabricRelease("r2", "https://cdn.example/patch5.jar", []string{"1.21.5"}),
	}
	if _, err := Match(candidates, Target{ReleaseVersion: "1.21.6", Loader: "fabric"}); !errors.Is(err, ErrNoCompatibleRelease) {
		t.Fatalf("err = %v, want ErrNoCompatibleRelease with a real sibling present", err)
	}
}

func TestMatchPrimaryPreferredWithinProbe(t *testing.T) {
	candidates := []registry.CandidateRelease{
		fabricRelease("r1", "https://cdn.example/first.jar", []string{"1.20.1"}),
		{
			ID:          "r2",
			VersionTags: []string{"1.20.1"},
			LoaderTags:  []string{"fabric"},
			FileURL:     "https://cdn.example/primary.jar",
			Primary:     true,
		},
	}

	res, err := Match(candidates, Target{ReleaseVersion: "1.20.1", Loader: "fabric"})
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if res.URL != "https://cdn.example/primary.jar" {
		t.Errorf("URL = %q, want the primary-flagged release", res.URL)
	}
}

func TestMatchDependenciesFromMatchedReleaseOnly(t *testing.T) {
	candidates := []registry.CandidateRelease{
		fabricRelease("r1", "https://cdn.example/exact.jar", []string{"1.20.1"}, "depA"),
		fabricRelease("r2", "https://cdn.example/series.jar", []string{"1.20"}, "depB"),
	}

	res, err := Match(candidates, Target{ReleaseVersion: "1.20.1", Loader: "fabric"})
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if len(res.RequiredDependencyIDs) != 1 || res.RequiredDependencyIDs[0] != "depA" {
		t.Errorf("RequiredDependencyIDs = %v, want deps of the matched release only", res.RequiredDependencyIDs)
	}
}

func TestMatchSnapshotTargetHasNoCoarsenedTiers(t *testing.T) {
	candidates := []registry.CandidateRelease{
		fabricRelease("r1", "https://cdn.example/snap.jar", []string{"24w14a"}),
		fabricRelease("r2", "https://cdn.example/series.jar", []string{"24"}),
	}

	res, err := Match(candidates, Target{ReleaseVersion: "24w14a", Loader: "fabric"})
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if res.URL != "https://cdn.example/snap.jar" {
		t.Errorf("URL = %q, want the exact snapshot release", res.URL)
	}
}

func TestMatchNoCandidates(t *testing.T) {
	_, err := Match(nil, Target{ReleaseVersion: "1.21.3", Loader: "fabric"})
	if !errors.Is(err, ErrNoCompatibleRelease) {
		t.Fatalf("err = %v, want ErrNoCompatibleRelease", err)
	}
}
