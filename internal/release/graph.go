package release

import (
	"github.com/loomrt/relkit/internal/component"
)

// TransitiveClosure computes the set of components reachable from roots
// through their resolved dependency references.
//
// Worklist traversal: dependencies are followed through each component's
// already-resolved Deps list, never re-resolved by name. A visited set
// keyed by component name guards against duplicates and cycles, so the
// walk terminates even on malformed graphs. The returned order follows
// discovery (roots first, then their dependencies breadth-first); callers
// treat the result as a set and impose order downstream.
func TransitiveClosure(roots []*component.Component) []*component.Component {
	visited := make(map[string]bool, len(roots))
	frontier := make([]*component.Component, 0, len(roots))

	for _, root := range roots {
		if root == nil || visited[root.Name] {
			continue
		}
		visited[root.Name] = true
		frontier = append(frontier, root)
	}

	var closure []*component.Component
	for len(frontier) > 0 {
		c := frontier[0]
		frontier = frontier[1:]
		closure = append(closure, c)

		for _, dep := range c.Deps {
			if dep == nil || visited[dep.Name] {
				continue
			}
			visited[dep.Name] = true
			frontier = append(frontier, dep)
		}
	}

	return closure
}
