// Package packfile parses and validates the pack definition file: the YAML
// document that names the target game version and loader, and lists the
// mods a pack offers, with their platform, catalog id, and whether each is
// always required. The file is validated against an embedded JSON Schema
// before use.
package packfile
