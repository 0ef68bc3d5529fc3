package registry

// Expected id shapes per platform. CurseForge issues numeric mod ids;
// Modrinth issues short base62 project ids. Dependency ids always travel
// with the platform of the release that declared them, but registries have
// been observed returning placeholder or file-level ids in dependency
// lists, so each id is still validated against its platform's shape before
// it enters the selection set.
const (
	modrinthIDMinLen = 6
	modrinthIDMaxLen = 12
)

// ValidID reports whether id has the shape the given platform issues.
func ValidID(p Platform, id string) bool {
	if id == "" {
		return false
	}
	switch p {
	case PlatformCurseForge:
		return allDigits(id)
	case PlatformModrinth:
		if len(id) < modrinthIDMinLen || len(id) > modrinthIDMaxLen {
			return false
		}
		return allBase62(id)
	default:
		return false
	}
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func allBase62(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		default:
			return false
		}
	}
	return true
}
