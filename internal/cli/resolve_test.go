package cli

import (
	"testing"

	"github.com/packforge-labs/packforge/internal/packfile"
	"github.com/packforge-labs/packforge/internal/registry"
)

func testPack() *packfile.Packfile {
	return &packfile.Packfile{
		Name:        "testpack",
		GameVersion: "1.21.3",
		Loader:      "fabric",
		Mods: []packfile.Mod{
			{Name: "Fabric API", Platform: "modrinth", ID: "P7dR8mSH", Required: true},
			{Name: "Sodium", Platform: "modrinth", ID: "AANobbMI"},
			{Name: "Controllable", Platform: "curseforge", ID: "317269"},
		},
	}
}

func TestChooseOptionalDefaultsToAll(t *testing.T) {
	chosen, err := chooseOptional(testPack(), nil)
	if err != nil {
		t.Fatalf("chooseOptional: %v", err)
	}
	if len(chosen) != 2 {
		t.Fatalf("got %d mods, want every optional mod", len(chosen))
	}
}

func TestChooseOptionalByName(t *testing.T) {
	chosen, err := chooseOptional(testPack(), []string{"Sodium"})
	if err != nil {
		t.Fatalf("chooseOptional: %v", err)
	}
	if len(chosen) != 1 || chosen[0].Name != "Sodium" {
		t.Errorf("chosen = %+v", chosen)
	}
}

func TestChooseOptionalUnknownName(t *testing.T) {
	if _, err := chooseOptional(testPack(), []string{"Nope"}); err == nil {
		t.Fatal("chooseOptional accepted a mod that isn't in the pack")
	}
}

func TestChooseOptionalIgnoresRequired(t *testing.T) {
	// Naming an always-required mod is a no-op, not an error: it is
	// installed regardless.
	chosen, err := chooseOptional(testPack(), []string{"Fabric API", "Sodium"})
	if err != nil {
		t.Fatalf("chooseOptional: %v", err)
	}
	if len(chosen) != 1 || chosen[0].Name != "Sodium" {
		t.Errorf("chosen = %+v", chosen)
	}
}

func TestDescriptors(t *testing.T) {
	ds := descriptors(testPack().Mods)
	if len(ds) != 3 {
		t.Fatalf("got %d descriptors, want 3", len(ds))
	}
	if ds[2].Platform != registry.PlatformCurseForge || ds[2].ID != "317269" {
		t.Errorf("ds[2] = %+v", ds[2])
	}
}
