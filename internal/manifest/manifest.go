// Package manifest serializes the outcome of a resolution run into the
// install manifest consumed by the installation step: an ordered list of
// mods with resolved download locations, plus a report of entries that
// ended up with no compatible build.
package manifest

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/packforge-labs/packforge/internal/match"
	"github.com/packforge-labs/packforge/internal/resolve"
)

// Entry is one mod in the install manifest. DownloadURL is null when no
// compatible build was found for the target.
type Entry struct {
	Name                  string   `json:"name"`
	Platform              string   `json:"platform"`
	ID                    string   `json:"id"`
	DownloadURL           *string  `json:"downloadUrl"`
	RequiredDependencyIDs []string `json:"requiredDependencyIds,omitempty"`
}

// Missing is one entry of the missing report.
type Missing struct {
	Name     string `json:"name"`
	Required bool   `json:"required"`
}

// Manifest is the complete output artifact of a resolution run.
type Manifest struct {
	Pack        string    `json:"pack,omitempty"`
	GameVersion string    `json:"gameVersion"`
	Loader      string    `json:"loader"`
	Mods        []Entry   `json:"mods"`
	Missing     []Missing `json:"missing,omitempty"`
}

// FromResult builds a Manifest from a resolution result, preserving the
// selection set's insertion order.
func FromResult(packName string, target match.Target, res *resolve.Result) *Manifest {
	m := &Manifest{
		Pack:        packName,
		GameVersion: target.ReleaseVersion,
		Loader:      target.Loader,
		Mods:        make([]Entry, 0, res.Selection.Len()),
	}

	for _, e := range res.Selection.Entries() {
		entry := Entry{
			Name:                  e.Name,
			Platform:              string(e.Platform),
			ID:                    e.ID,
			RequiredDependencyIDs: e.RequiredDependencyIDs,
		}
		if e.URL != "" {
			url := e.URL
			entry.DownloadURL = &url
		}
		m.Mods = append(m.Mods, entry)
	}

	for _, miss := range res.Missing {
		m.Missing = append(m.Missing, Missing{Name: miss.Name, Required: miss.Required})
	}

	return m
}

// Write encodes the manifest as indented JSON.
func (m *Manifest) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("encoding manifest: %w", err)
	}
	return nil
}
