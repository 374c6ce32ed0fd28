package release

import (
	"fmt"
	"sort"

	"github.com/loomrt/relkit/internal/component"
	"github.com/loomrt/relkit/internal/output"
	"github.com/loomrt/relkit/internal/platform"
)

// BuildAppList merges the foundational libraries, the platform libraries,
// the dependency table, and the main component into the ordered release
// application list.
//
// Order is fixed, each step skipping identifiers already placed:
//  1. The foundational libraries: version from the table when declared,
//     else the installed platform version, else UnknownVersion.
//  2. Each platform library, in sorted order: table version preferred,
//     else installed version, else excluded with a warning.
//  3. Remaining table entries in sorted order, except the main component.
//  4. The main component with its resolved version, always last.
//
// The result never contains a duplicate identifier. Returned warnings
// report excluded platform libraries; the build continues without them.
func BuildAppList(main *component.Component, table Table, platformLibs []string, index platform.Index) (AppList, []string) {
	list := make(AppList, 0, len(FoundationLibs)+len(platformLibs)+len(table))
	placed := make(map[string]bool, cap(list))
	var warnings []string

	for _, name := range FoundationLibs {
		version := component.UnknownVersion
		if c, ok := table[name]; ok {
			version = c.Version
		} else if lib, ok := index.Resolve(name); ok {
			version = lib.Version
		}
		list = append(list, AppEntry{Name: name, Version: version, Origin: output.OriginFoundation})
		placed[name] = true
	}

	libs := append([]string(nil), platformLibs...)
	sort.Strings(libs)
	for _, name := range libs {
		if placed[name] || name == main.Name {
			continue
		}
		placed[name] = true

		if c, ok := table[name]; ok {
			list = append(list, AppEntry{Name: name, Version: c.Version, Origin: output.OriginDeclared})
			continue
		}
		if lib, ok := index.Resolve(name); ok {
			list = append(list, AppEntry{Name: name, Version: lib.Version, Origin: output.OriginDetected})
			continue
		}
		warnings = append(warnings, fmt.Sprintf("platform library %q has no determinable version, excluded from release", name))
	}

	for _, name := range table.Names() {
		if placed[name] || name == main.Name {
			continue
		}
		placed[name] = true
		list = append(list, AppEntry{Name: name, Version: table[name].Version, Origin: output.OriginDeclared})
	}

	list = append(list, AppEntry{Name: main.Name, Version: main.Version, Origin: output.OriginDeclared})

	return list, warnings
}
