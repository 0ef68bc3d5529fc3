package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// depRequired is the Modrinth dependency relation that must be installed
// alongside the depending mod. Other relations (optional, incompatible,
// embedded) are ignored.
const depRequired = "required"

// ModrinthClient fetches releases from the Modrinth API. Modrinth is an
// open catalog; no credential is needed.
type ModrinthClient struct {
	baseURL string
	cfg     clientConfig
}

// NewModrinth creates a client for the given Modrinth API base URL.
func NewModrinth(baseURL string, opts ...Option) *ModrinthClient {
	return &ModrinthClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		cfg:     newClientConfig(opts...),
	}
}

// Platform implements Source.
func (c *ModrinthClient) Platform() Platform { return PlatformModrinth }

// modrinthVersion mirrors one element of the /project/{id}/version response.
type modrinthVersion struct {
	ID           string   `json:"id"`
	GameVersions []string `json:"game_versions"`
	Loaders      []string `json:"loaders"`
	Files        []struct {
		Primary bool   `json:"primary"`
		URL     string `json:"url"`
	} `json:"files"`
	Dependencies []struct {
		DependencyType string `json:"dependency_type"`
		ProjectID      string `json:"project_id"`
	} `json:"dependencies"`
}

// Releases fetches every known release of the given project and normalizes
// each into a CandidateRelease. Results are sorted by release id so that
// matching is deterministic regardless of the order the registry returns.
func (c *ModrinthClient) Releases(ctx context.Context, id string) ([]CandidateRelease, error) {
	url := fmt.Sprintf("%s/project/%s/version", c.baseURL, id)
	body, err := c.cfg.get(ctx, PlatformModrinth, id, url)
	if err != nil {
		return nil, err
	}

	var versions []modrinthVersion
	if err := json.Unmarshal(body, &versions); err != nil {
		return nil, &Error{Kind: ErrParse, Platform: PlatformModrinth, ID: id, Err: err}
	}

	releases := make([]CandidateRelease, 0, len(versions))
	for _, v := range versions {
		releases = append(releases, normalizeModrinth(v))
	}
	sort.SliceStable(releases, func(i, j int) bool {
		return releases[i].ID < releases[j].ID
	})
	return releases, nil
}

func normalizeModrinth(v modrinthVersion) CandidateRelease {
	rel := CandidateRelease{
		ID:          v.ID,
		VersionTags: v.GameVersions,
		LoaderTags:  v.Loaders,
	}
	for _, f := range v.Files {
		if f.Primary {
			rel.FileURL = f.URL
			rel.Primary = true
			break
		}
	}
	if rel.FileURL == "" && len(v.Files) > 0 {
		rel.FileURL = v.Files[0].URL
	}
	for _, d := range v.Dependencies {
		if d.DependencyType == depRequired && d.ProjectID != "" {
			rel.RequiredDependencyIDs = append(rel.RequiredDependencyIDs, d.ProjectID)
		}
	}
	return rel
}

// modrinthProject mirrors the /project/{id} response fields we use.
type modrinthProject struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Metadata fetches the project's display name and description.
func (c *ModrinthClient) Metadata(ctx context.Context, id string) (*Metadata, error) {
	url := fmt.Sprintf("%s/project/%s", c.baseURL, id)
	body, err := c.cfg.get(ctx, PlatformModrinth, id, url)
	if err != nil {
		return nil, err
	}

	var proj modrinthProject
	if err := json.Unmarshal(body, &proj); err != nil {
		return nil, &Error{Kind: ErrParse, Platform: PlatformModrinth, ID: id, Err: err}
	}
	return &Metadata{Name: proj.Title, Description: proj.Description}, nil
}
