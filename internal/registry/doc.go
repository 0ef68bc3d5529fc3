// Package registry fetches and normalizes mod release data from the two
// external catalogs Packforge integrates with: Modrinth (open, no auth) and
// CurseForge (bearer credential required). Both clients normalize their raw
// responses into the common CandidateRelease shape; the matching and
// resolution layers never see a registry-specific field.
package registry
