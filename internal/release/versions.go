package release

import (
	"path/filepath"

	"github.com/loomrt/relkit/internal/component"
	"github.com/loomrt/relkit/internal/output"
)

// ResolveVersion extracts a component's version from its metadata artifact.
//
// A previously recorded artifact location wins; otherwise candidate
// locations are tried in order (flat, then nested under ebin/). The first
// artifact that exists and parses wins, and its location is recorded on
// the component. A missing vsn field yields UnknownVersion.
// When the extracted version is the sentinel AND the component is the
// designated main component, the caller-supplied fallback replaces it —
// the only substitution path. Every other component keeps the sentinel,
// surfaced as a warning. Failure to locate or parse metadata at all also
// yields the sentinel, never an error.
func ResolveVersion(parser *component.Parser, c *component.Component, fallback string, isMain bool) string {
	version := component.UnknownVersion

	if path, ok := c.MetadataPath(); ok {
		meta, err := parser.ParseFile(path)
		if err != nil {
			output.Warn("component metadata unreadable, using placeholder version",
				"component", c.Name,
				"path", path,
				"error", err,
			)
		} else {
			if rel, relErr := filepath.Rel(c.Dir, path); relErr == nil {
				c.MetadataFile = rel
			}
			version = meta.Version
		}
	} else {
		output.Warn("component metadata not found, using placeholder version",
			"component", c.Name,
			"dir", c.Dir,
		)
	}

	if version == component.UnknownVersion {
		if isMain {
			output.Debug("substituting release version for main component",
				"component", c.Name,
				"version", fallback,
			)
			return fallback
		}
		output.Warn("component declares no version",
			"component", c.Name,
			"version", version,
		)
	}

	return version
}
