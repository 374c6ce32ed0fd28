package release

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"
)

// Spec mirrors the YAML shape of the release specification artifact: the
// <name>.rel file a release build emits and the bundle assembler, verifier,
// and diff all read back.
type Spec struct {
	Release      SpecIdentity `json:"release"`
	Runtime      SpecRuntime  `json:"runtime"`
	Applications []SpecApp    `json:"applications"`
}

// SpecIdentity names the release.
type SpecIdentity struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// SpecRuntime records the platform runtime the release was resolved against.
type SpecRuntime struct {
	Version string `json:"version"`
}

// SpecApp is one ordered application entry.
type SpecApp struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// App returns the entry for name, if present.
func (s *Spec) App(name string) (SpecApp, bool) {
	for _, app := range s.Applications {
		if app.Name == name {
			return app, true
		}
	}
	return SpecApp{}, false
}

// Main returns the main application: the final entry of the list.
func (s *Spec) Main() (SpecApp, bool) {
	if len(s.Applications) == 0 {
		return SpecApp{}, false
	}
	return s.Applications[len(s.Applications)-1], true
}

// ReadSpec reads and parses a release specification artifact.
func ReadSpec(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading release specification: %w", err)
	}

	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parsing release specification %s: %w", path, err)
	}
	if spec.Release.Name == "" {
		return nil, fmt.Errorf("release specification %s declares no release name", path)
	}

	return &spec, nil
}
