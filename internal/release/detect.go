package release

import (
	"sort"

	"github.com/loomrt/relkit/internal/component"
	"github.com/loomrt/relkit/internal/output"
	"github.com/loomrt/relkit/internal/platform"
)

// DetectPlatformLibs scans the dependency table for identifiers the build
// graph needs at runtime but never declared to the caller.
//
// For every table component, the union of its declared dependencies and
// included components is collected; identifiers already present in the
// table and the foundational libraries are subtracted. Requested extras
// are unioned in unfiltered. The returned seed is sorted and duplicate-free.
//
// Build-time declarations are necessarily incomplete for libraries loaded
// dynamically or provided by the environment; detection fills that gap
// while declared dependencies stay the ground truth.
func DetectPlatformLibs(parser *component.Parser, table Table, extras []string) []string {
	referenced := make(map[string]bool)

	for _, name := range table.Names() {
		c := table[name]
		path, ok := c.MetadataPath()
		if !ok {
			output.Debug("no metadata to scan for platform dependencies", "component", c.Name)
			continue
		}
		meta, err := parser.ParseFile(path)
		if err != nil {
			output.Warn("component metadata unreadable during platform detection",
				"component", c.Name,
				"error", err,
			)
			continue
		}
		for _, dep := range meta.Dependencies {
			referenced[dep] = true
		}
		for _, inc := range meta.Included {
			referenced[inc] = true
		}
	}

	seed := make(map[string]bool)
	for name := range referenced {
		if _, declared := table[name]; declared {
			continue
		}
		if IsFoundation(name) {
			continue
		}
		seed[name] = true
	}
	for _, extra := range extras {
		seed[extra] = true
	}

	return sortedKeys(seed)
}

// ExpandPlatformLibs expands a seed of platform-library identifiers to
// their transitive platform dependencies.
//
// Worklist over the seed: each identifier is resolved against the platform
// index; unknown identifiers are kept as leaves with no further expansion.
// Resolved libraries have their installed metadata parsed and their
// declared dependencies enqueued. Every identifier is visited exactly
// once, so the walk terminates. The foundational libraries are filtered
// from the result even when reachable. The result is sorted.
func ExpandPlatformLibs(parser *component.Parser, index platform.Index, seed []string) []string {
	visited := make(map[string]bool, len(seed))
	frontier := make([]string, 0, len(seed))

	for _, name := range seed {
		if visited[name] {
			continue
		}
		visited[name] = true
		frontier = append(frontier, name)
	}

	for len(frontier) > 0 {
		name := frontier[0]
		frontier = frontier[1:]

		lib, ok := index.Resolve(name)
		if !ok {
			output.Debug("identifier not installed in platform, keeping as leaf", "library", name)
			continue
		}

		meta, found, err := parser.Load(lib.Dir, name)
		if !found {
			output.Debug("installed library has no metadata", "library", name, "dir", lib.Dir)
			continue
		}
		if err != nil {
			output.Warn("installed library metadata unreadable",
				"library", name,
				"error", err,
			)
			continue
		}

		for _, dep := range meta.Dependencies {
			if visited[dep] {
				continue
			}
			visited[dep] = true
			frontier = append(frontier, dep)
		}
	}

	libs := make(map[string]bool, len(visited))
	for name := range visited {
		if IsFoundation(name) {
			continue
		}
		libs[name] = true
	}

	return sortedKeys(libs)
}

// sortedKeys returns a set's members in sorted order.
func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for name := range set {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
