package registry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const curseForgeFilesBody = `{
  "data": [
    {
      "id": 5012,
      "gameVersions": ["1.21.1", "Fabric"],
      "downloadUrl": "https://edge.example/files/5012/mod.jar",
      "dependencies": [
        {"relationType": 3, "modId": 306612},
        {"relationType": 2, "modId": 248787}
      ]
    },
    {
      "id": 4001,
      "gameVersions": ["1.20.1", "Fabric"],
      "downloadUrl": "https://edge.example/files/4001/mod.jar",
      "dependencies": []
    }
  ]
}`

func TestCurseForgeReleases(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/mods/238222/files" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("modLoaderType"); got != "4" {
			t.Errorf("modLoaderType = %q, want %q", got, "4")
		}
		if got := r.Header.Get("x-api-key"); got != "test-key" {
			t.Errorf("x-api-key = %q, want %q", got, "test-key")
		}
		w.Write([]byte(curseForgeFilesBody))
	}))
	defer server.Close()

	c := NewCurseForge(server.URL, "fabric", StaticCredential("test-key"),
		WithHTTPClient(server.Client()))
	releases, err := c.Releases(context.Background(), "238222")
	if err != nil {
		t.Fatalf("Releases: %v", err)
	}

	if len(releases) != 2 {
		t.Fatalf("got %d releases, want 2", len(releases))
	}

	// Sorted by file id.
	if releases[0].ID != "4001" || releases[1].ID != "5012" {
		t.Errorf("releases not sorted by id: %q, %q", releases[0].ID, releases[1].ID)
	}

	rel := releases[1]
	if rel.FileURL != "https://edge.example/files/5012/mod.jar" {
		t.Errorf("FileURL = %q", rel.FileURL)
	}
	if len(rel.LoaderTags) != 1 || rel.LoaderTags[0] != "fabric" {
		t.Errorf("LoaderTags = %v, want [fabric]", rel.LoaderTags)
	}
	if len(rel.RequiredDependencyIDs) != 1 || rel.RequiredDependencyIDs[0] != "306612" {
		t.Errorf("RequiredDependencyIDs = %v, want [306612]", rel.RequiredDependencyIDs)
	}
}

func TestCurseForgeReleasesNumericIDOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
  "data": [
    {"id": 100, "gameVersions": ["1.21.1"], "downloadUrl": "", "dependencies": []},
    {"id": 99, "gameVersions": ["1.21.1"], "downloadUrl": "", "dependencies": []}
  ]
}`))
	}))
	defer server.Close()

	c := NewCurseForge(server.URL, "fabric", StaticCredential("k"),
		WithHTTPClient(server.Client()))
	releases, err := c.Releases(context.Background(), "238222")
	if err != nil {
		t.Fatalf("Releases: %v", err)
	}
	if len(releases) != 2 {
		t.Fatalf("got %d releases, want 2", len(releases))
	}
	// Numeric order, not bytewise: 99 sorts before 100.
	if releases[0].ID != "99" || releases[1].ID != "100" {
		t.Errorf("releases sorted %q, %q; want 99, 100", releases[0].ID, releases[1].ID)
	}
}

func TestCurseForgeCredentialUnavailable(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	c := NewCurseForge(server.URL, "fabric", StaticCredential(""),
		WithHTTPClient(server.Client()))
	_, err := c.Releases(context.Background(), "238222")
	if !IsKind(err, ErrCredential) {
		t.Fatalf("err = %v, want kind %v", err, ErrCredential)
	}
	if requests != 0 {
		t.Errorf("client issued %d requests without a credential, want 0", requests)
	}
}

func TestCurseForgeUnknownLoader(t *testing.T) {
	c := NewCurseForge("https://api.example", "rift", StaticCredential("k"))
	_, err := c.Releases(context.Background(), "238222")
	if !IsKind(err, ErrUnavailable) {
		t.Fatalf("err = %v, want kind %v", err, ErrUnavailable)
	}
}

func TestCurseForgeReleasesMalformed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`data: nope`))
	}))
	defer server.Close()

	c := NewCurseForge(server.URL, "fabric", StaticCredential("k"),
		WithHTTPClient(server.Client()))
	_, err := c.Releases(context.Background(), "238222")
	if !IsKind(err, ErrParse) {
		t.Fatalf("err = %v, want kind %v", err, ErrParse)
	}
}

func TestCurseForgeMetadata(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/mods/306612" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Write([]byte(`{"data": {"name": "Fabric API", "summary": "Core API library"}}`))
	}))
	defer server.Close()

	c := NewCurseForge(server.URL, "fabric", StaticCredential("k"),
		WithHTTPClient(server.Client()))
	meta, err := c.Metadata(context.Background(), "306612")
	if err != nil {
		t.Fatalf("Metadata: %v", err)
	}
	if meta.Name != "Fabric API" || meta.Description != "Core API library" {
		t.Errorf("meta = %+v", meta)
	}
}
