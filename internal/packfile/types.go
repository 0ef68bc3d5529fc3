package packfile

// Packfile is the parsed pack definition.
type Packfile struct {
	// Name is the pack's display name.
	Name string `yaml:"name" json:"name"`

	// GameVersion is the target game release (e.g. "1.21.3").
	GameVersion string `yaml:"game_version" json:"game_version"`

	// Loader is the mod loader the pack targets (e.g. "fabric").
	Loader string `yaml:"loader" json:"loader"`

	// Mods lists every mod the pack offers, required and optional alike.
	Mods []Mod `yaml:"mods" json:"mods"`
}

// Mod is one catalog entry in the pack definition.
type Mod struct {
	Name     string `yaml:"name" json:"name"`
	Platform string `yaml:"platform" json:"platform"`
	ID       string `yaml:"id" json:"id"`

	// Required marks mods installed regardless of user choice.
	Required bool `yaml:"required,omitempty" json:"required,omitempty"`
}

// RequiredMods returns the always-required subset, in file order.
func (p *Packfile) RequiredMods() []Mod {
	var out []Mod
	for _, m := range p.Mods {
		if m.Required {
			out = append(out, m)
		}
	}
	return out
}

// OptionalMods returns the user-choosable subset, in file order.
func (p *Packfile) OptionalMods() []Mod {
	var out []Mod
	for _, m := range p.Mods {
		if !m.Required {
			out = append(out, m)
		}
	}
	return out
}

// FindMod returns the mod with the given display name, if present.
func (p *Packfile) FindMod(name string) (Mod, bool) {
	for _, m := range p.Mods {
		if m.Name == name {
			return m, true
		}
	}
	return Mod{}, false
}
