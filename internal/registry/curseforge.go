package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// relationRequired is the CurseForge dependency relation type for a mod
// that must be installed alongside the depending mod.
const relationRequired = 3

// CurseForge identifies loaders numerically in its file-listing API.
var curseForgeLoaderTypes = map[string]int{
	"forge":      1,
	"cauldron":   2,
	"liteloader": 3,
	"fabric":     4,
	"quilt":      5,
	"neoforge":   6,
}

// CurseForgeClient fetches releases from the CurseForge API. Every request
// carries a bearer credential obtained from the injected CredentialProvider.
// Loader filtering is done server-side via the modLoaderType query
// parameter, so a client is bound to one loader for its lifetime (one
// resolution run).
type CurseForgeClient struct {
	baseURL string
	loader  string
	creds   CredentialProvider
	cfg     clientConfig
}

// NewCurseForge creates a client for the given CurseForge API base URL,
// filtering file listings to the given loader (e.g. "fabric").
func NewCurseForge(baseURL, loader string, creds CredentialProvider, opts ...Option) *CurseForgeClient {
	return &CurseForgeClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		loader:  strings.ToLower(loader),
		creds:   creds,
		cfg:     newClientConfig(opts...),
	}
}

// Platform implements Source.
func (c *CurseForgeClient) Platform() Platform { return PlatformCurseForge }

// curseForgeFile mirrors one element of the /mods/{id}/files response.
// CurseForge serves numeric ids; json.Number tolerates either encoding.
type curseForgeFile struct {
	ID           json.Number `json:"id"`
	GameVersions []string    `json:"gameVersions"`
	DownloadURL  string      `json:"downloadUrl"`
	Dependencies []struct {
		RelationType int         `json:"relationType"`
		ModID        json.Number `json:"modId"`
	} `json:"dependencies"`
}

// Releases fetches the loader-filtered file list for the given mod id and
// normalizes each file into a CandidateRelease. CurseForge mixes loader
// names into gameVersions; since the loader filter already ran server-side,
// the adapter sets LoaderTags to the requested loader and passes
// gameVersions through as VersionTags for client-side version matching.
func (c *CurseForgeClient) Releases(ctx context.Context, id string) ([]CandidateRelease, error) {
	key, err := c.creds.APIKey(ctx)
	if err != nil {
		return nil, &Error{Kind: ErrCredential, Platform: PlatformCurseForge, ID: id, Err: err}
	}

	loaderType, ok := curseForgeLoaderTypes[c.loader]
	if !ok {
		return nil, &Error{Kind: ErrUnavailable, Platform: PlatformCurseForge, ID: id,
			Err: fmt.Errorf("loader %q has no CurseForge loader type", c.loader)}
	}

	url := fmt.Sprintf("%s/mods/%s/files?modLoaderType=%d", c.baseURL, id, loaderType)
	body, err := c.cfg.get(ctx, PlatformCurseForge, id, url, "x-api-key", key)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Data []curseForgeFile `json:"data"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &Error{Kind: ErrParse, Platform: PlatformCurseForge, ID: id, Err: err}
	}

	releases := make([]CandidateRelease, 0, len(payload.Data))
	for _, f := range payload.Data {
		releases = append(releases, c.normalize(f))
	}
	sort.SliceStable(releases, func(i, j int) bool {
		return fileIDLess(releases[i].ID, releases[j].ID)
	})
	return releases, nil
}

// fileIDLess orders CurseForge file ids numerically; bytewise comparison
// would put "100" before "99". Ids that fail to parse fall back to string
// order.
func fileIDLess(a, b string) bool {
	na, errA := strconv.ParseUint(a, 10, 64)
	nb, errB := strconv.ParseUint(b, 10, 64)
	if errA == nil && errB == nil {
		return na < nb
	}
	return a < b
}

func (c *CurseForgeClient) normalize(f curseForgeFile) CandidateRelease {
	rel := CandidateRelease{
		ID:          f.ID.String(),
		VersionTags: f.GameVersions,
		LoaderTags:  []string{c.loader},
		FileURL:     f.DownloadURL,
	}
	for _, d := range f.Dependencies {
		if d.RelationType == relationRequired && d.ModID.String() != "" {
			rel.RequiredDependencyIDs = append(rel.RequiredDependencyIDs, d.ModID.String())
		}
	}
	return rel
}

// curseForgeMod mirrors the /mods/{id} response fields we use.
type curseForgeMod struct {
	Data struct {
		Name    string `json:"name"`
		Summary string `json:"summary"`
	} `json:"data"`
}

// Metadata fetches the mod's display name and summary.
func (c *CurseForgeClient) Metadata(ctx context.Context, id string) (*Metadata, error) {
	key, err := c.creds.APIKey(ctx)
	if err != nil {
		return nil, &Error{Kind: ErrCredential, Platform: PlatformCurseForge, ID: id, Err: err}
	}

	url := fmt.Sprintf("%s/mods/%s", c.baseURL, id)
	body, err := c.cfg.get(ctx, PlatformCurseForge, id, url, "x-api-key", key)
	if err != nil {
		return nil, err
	}

	var mod curseForgeMod
	if err := json.Unmarshal(body, &mod); err != nil {
		return nil, &Error{Kind: ErrParse, Platform: PlatformCurseForge, ID: id, Err: err}
	}
	return &Metadata{Name: mod.Data.Name, Description: mod.Data.Summary}, nil
}
