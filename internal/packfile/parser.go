package packfile

import (
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Parse unmarshals a pack definition from raw YAML bytes. It enforces the
// few semantic rules the schema can't express; callers wanting full schema
// diagnostics use Validate first.
func Parse(data []byte) (*Packfile, error) {
	var p Packfile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing pack definition: %w", err)
	}

	if p.GameVersion == "" {
		return nil, fmt.Errorf("pack definition missing required 'game_version' field")
	}
	if p.Loader == "" {
		return nil, fmt.Errorf("pack definition missing required 'loader' field")
	}
	p.Loader = strings.ToLower(p.Loader)

	seen := make(map[string]bool, len(p.Mods))
	for i := range p.Mods {
		p.Mods[i].Platform = strings.ToLower(p.Mods[i].Platform)
		m := p.Mods[i]
		if m.Name == "" || m.Platform == "" || m.ID == "" {
			return nil, fmt.Errorf("mods[%d]: name, platform, and id are all required", i)
		}
		key := m.Platform + ":" + m.ID
		if seen[key] {
			return nil, fmt.Errorf("mods[%d]: duplicate entry %s", i, key)
		}
		seen[key] = true
	}

	return &p, nil
}

// ParseFile reads and parses a pack definition file.
func ParseFile(path string) (*Packfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return Parse(data)
}
