// Package match decides whether a mod has a build compatible with a target
// game release and loader, and picks one deterministically. It is a pure
// function over normalized registry data; all network I/O happens before
// matching.
package match

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/packforge-labs/packforge/internal/registry"
)

// ErrNoCompatibleRelease means no probe tier matched. This is a normal
// outcome for a mod that has no build for the target, not a failure.
var ErrNoCompatibleRelease = errors.New("no compatible release")

// Target is the game release and mod loader a resolution run is performed
// against. Immutable for one run.
type Target struct {
	ReleaseVersion string
	Loader         string
}

// Result is the selected build for one mod.
type Result struct {
	URL                   string
	RequiredDependencyIDs []string
}

// Match tries an ordered list of version probes against the candidates and
// returns the build selected by the first probe that matches at least one
// candidate. Probe order:
//
//  1. the exact target version
//  2. coarsened fallbacks, in order: "major.minor", "major.minor.x",
//     "major.minor.0"
//
// Every probe additionally requires the candidate's loader tags to contain
// the target loader. Among several candidates matching the same probe, the
// one whose file is flagged primary wins; absent that flag, the first in
// candidate order. Dependencies in the Result are those declared on the
// matched release only.
//
// The coarsened tiers are gated: if the candidates carry sibling patch
// releases of the target's major.minor series and the target's patch number
// exceeds the highest sibling patch, coarsening is skipped entirely. A mod
// that never shipped a build for patch 6 must not be silently satisfied by
// its patch-2 or series build when the requester asked for 6.
func Match(candidates []registry.CandidateRelease, target Target) (*Result, error) {
	probes := []string{target.ReleaseVersion}

	if v, err := parseVersion(target.ReleaseVersion); err == nil {
		mm := fmt.Sprintf("%d.%d", v.Major(), v.Minor())
		if coarsenAllowed(candidates, mm, v.Patch()) {
			probes = append(probes, mm, mm+".x", mm+".0")
		}
	}

	loader := strings.ToLower(target.Loader)
	for _, probe := range probes {
		if sel := firstMatch(candidates, probe, loader); sel != nil {
			return &Result{
				URL:                   sel.FileURL,
				RequiredDependencyIDs: sel.RequiredDependencyIDs,
			}, nil
		}
	}
	return nil, ErrNoCompatibleRelease
}

// firstMatch returns the candidate selected for one probe, or nil if none
// matched.
func firstMatch(candidates []registry.CandidateRelease, probe, loader string) *registry.CandidateRelease {
	var first *registry.CandidateRelease
	for i := range candidates {
		c := &candidates[i]
		if !hasTag(c.VersionTags, probe) || !hasLoader(c.LoaderTags, loader) {
			continue
		}
		if c.Primary {
			return c
		}
		if first == nil {
			first = c
		}
	}
	return first
}

// coarsenAllowed implements the safety gate on the fallback tiers.
func coarsenAllowed(candidates []registry.CandidateRelease, mm string, targetPatch uint64) bool {
	highest, found := highestSiblingPatch(candidates, mm)
	if !found {
		return true
	}
	return targetPatch <= highest
}

// highestSiblingPatch scans every candidate's version tags for patch
// releases under the same major.minor series ("1.21.4" for series "1.21")
// and returns the highest patch number found. An "X.Y.0" tag is the series
// release under another spelling, not a patch sibling: counting it would
// make the ".0" fallback probe unreachable for any target past patch 0.
func highestSiblingPatch(candidates []registry.CandidateRelease, mm string) (uint64, bool) {
	var highest uint64
	found := false
	prefix := mm + "."
	for _, c := range candidates {
		for _, tag := range c.VersionTags {
			rest, ok := strings.CutPrefix(tag, prefix)
			if !ok {
				continue
			}
			patch, err := strconv.ParseUint(rest, 10, 64)
			if err != nil || patch == 0 {
				continue
			}
			if !found || patch > highest {
				highest = patch
			}
			found = true
		}
	}
	return highest, found
}

func hasTag(tags []string, want string) bool {
	for _, t := range tags {
		if t == want {
			return true
		}
	}
	return false
}

func hasLoader(tags []string, want string) bool {
	for _, t := range tags {
		if strings.EqualFold(t, want) {
			return true
		}
	}
	return false
}

// parseVersion parses a release version string, tolerating a leading "v"
// and a missing patch component ("1.21" parses as 1.21.0). Snapshot-style
// versions that don't parse simply get no coarsened tiers.
func parseVersion(version string) (*semver.Version, error) {
	return semver.NewVersion(strings.TrimPrefix(version, "v"))
}
