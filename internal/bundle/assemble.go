// Package bundle assembles deployable bundle trees from release artifacts
// and raw component outputs, and verifies assembled trees.
package bundle

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/loomrt/relkit/internal/component"
	"github.com/loomrt/relkit/internal/manifest"
	"github.com/loomrt/relkit/internal/output"
	"github.com/loomrt/relkit/internal/release"
	"github.com/loomrt/relkit/internal/templates"
)

// Fixed bundle layout names.
const (
	// BinDir holds the launcher.
	BinDir = "bin"

	// LauncherName is the launcher filename under BinDir.
	LauncherName = "run"

	// LibDir holds one versioned directory per bundled component.
	LibDir = "lib"

	// ReleasesDir holds the release artifacts.
	ReleasesDir = "releases"

	// EbinDir is the module subdirectory of a versioned component dir.
	EbinDir = "ebin"

	// PrivDir is the resource subdirectory of a versioned component dir.
	PrivDir = "priv"

	// BootName is the canonical boot artifact filename the launcher
	// looks for, independent of the release name.
	BootName = "start.boot"

	// ConfigName is the runtime configuration filename.
	ConfigName = "sys.config"
)

// Options describes one bundle assembly request.
type Options struct {
	// Main is the component the release was built around. The assembled
	// component set is Main plus its declared dependency closure.
	Main *component.Component `validate:"required"`

	// ReleaseName and ReleaseVersion identify the release being bundled.
	ReleaseName    string `validate:"required"`
	ReleaseVersion string `validate:"required"`

	// RuntimeVersion parameterizes the launcher.
	RuntimeVersion string

	// Artifacts are the release build outputs to package.
	Artifacts release.Artifacts

	// ConfigFile is an optional runtime configuration file. Empty means
	// the bundle ships without one.
	ConfigFile string

	// OutDir is the bundle root to create.
	OutDir string `validate:"required"`
}

var validate = validator.New()

// Bundle describes an assembled bundle tree.
type Bundle struct {
	// Dir is the bundle root.
	Dir string

	// Libs are the name-version refs materialized under lib/, in the
	// order they were laid out.
	Libs []string

	// Skipped are component identifiers absent from the release
	// manifest, left out of the bundle.
	Skipped []string

	// Launcher is the rendered launcher path.
	Launcher string
}

// Assemble lays out a bundle tree: versioned component directories under
// lib/, release artifacts under releases/, optional runtime configuration,
// and the launcher.
//
// Component versions come from the release manifest, never re-derived; a
// component without a manifest entry was not part of the resolved release
// and is skipped. The tree is never mutated after Assemble returns.
func Assemble(opts Options) (*Bundle, error) {
	if err := validate.Struct(opts); err != nil {
		return nil, fmt.Errorf("invalid bundle request: %w", err)
	}

	versions, err := manifest.Read(opts.Artifacts.Manifest)
	if err != nil {
		return nil, fmt.Errorf("bundle %s: %w", opts.ReleaseName, err)
	}

	log := output.Scoped(opts.ReleaseName)
	log.Debug("assembling bundle",
		"version", opts.ReleaseVersion,
		"main", opts.Main.Name,
		"out", opts.OutDir,
	)

	b := &Bundle{
		Dir:      opts.OutDir,
		Launcher: filepath.Join(opts.OutDir, BinDir, LauncherName),
	}

	components := release.TransitiveClosure([]*component.Component{opts.Main})
	for _, c := range components {
		version, ok := versions[c.Name]
		if !ok {
			// Not part of the resolved release.
			b.Skipped = append(b.Skipped, c.Name)
			log.Debug("skipping component without manifest entry", "component", c.Name)
			continue
		}
		ref, err := layoutComponent(opts.OutDir, c, version)
		if err != nil {
			return nil, fmt.Errorf("bundle %s: %w", opts.ReleaseName, err)
		}
		b.Libs = append(b.Libs, ref)
	}

	if err := layoutRelease(opts); err != nil {
		return nil, fmt.Errorf("bundle %s: %w", opts.ReleaseName, err)
	}

	if opts.ConfigFile != "" {
		if err := layoutConfig(opts); err != nil {
			return nil, fmt.Errorf("bundle %s: %w", opts.ReleaseName, err)
		}
	}

	if err := templates.RenderLauncher(b.Launcher, templates.LauncherData{
		ReleaseName:    opts.ReleaseName,
		ReleaseVersion: opts.ReleaseVersion,
		MainComponent:  opts.Main.Name,
		RuntimeVersion: opts.RuntimeVersion,
	}); err != nil {
		return nil, fmt.Errorf("bundle %s: %w", opts.ReleaseName, err)
	}

	log.Debug("bundle assembled",
		"libs", len(b.Libs),
		"skipped", len(b.Skipped),
	)

	return b, nil
}

// layoutComponent materializes one versioned component directory: module
// files under ebin/, resources under priv/. priv/ is only created when the
// component has resources.
func layoutComponent(root string, c *component.Component, version string) (string, error) {
	ref := fmt.Sprintf("%s-%s", c.Name, version)
	libDir := filepath.Join(root, LibDir, ref)

	ebin := filepath.Join(libDir, EbinDir)
	if err := os.MkdirAll(ebin, 0o755); err != nil {
		return "", fmt.Errorf("creating %s: %w", ebin, err)
	}

	for _, file := range c.AbsFiles() {
		if err := CopyFile(file, filepath.Join(ebin, filepath.Base(file))); err != nil {
			return "", err
		}
	}
	if meta, ok := c.MetadataPath(); ok {
		if err := CopyFile(meta, filepath.Join(ebin, filepath.Base(meta))); err != nil {
			return "", err
		}
	}

	for _, resource := range c.AbsResources() {
		dst := filepath.Join(libDir, PrivDir, filepath.Base(resource))
		if err := CopyTree(resource, dst); err != nil {
			return "", err
		}
	}

	return ref, nil
}

// layoutRelease places the release artifacts: the specification both at the
// top level of releases/ (discovery by name) and inside the version
// directory (canonical per-version record), the script copy, and the boot
// artifact renamed to its canonical filename.
func layoutRelease(opts Options) error {
	relDir := filepath.Join(opts.OutDir, ReleasesDir)
	vsnDir := filepath.Join(relDir, opts.ReleaseVersion)

	if err := CopyFile(opts.Artifacts.Rel, filepath.Join(relDir, opts.ReleaseName+release.RelSuffix)); err != nil {
		return err
	}
	if err := CopyFile(opts.Artifacts.Rel, filepath.Join(vsnDir, opts.ReleaseName+release.RelSuffix)); err != nil {
		return err
	}
	if err := CopyFile(opts.Artifacts.Script, filepath.Join(vsnDir, filepath.Base(opts.Artifacts.Script))); err != nil {
		return err
	}

	return CopyFile(opts.Artifacts.Boot, filepath.Join(vsnDir, BootName))
}

// layoutConfig validates and places the optional runtime configuration:
// into the version directory under the fixed filename, and at the bundle
// root for convenience access.
func layoutConfig(opts Options) error {
	data, err := os.ReadFile(opts.ConfigFile)
	if err != nil {
		return fmt.Errorf("reading runtime configuration: %w", err)
	}

	var parsed any
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("runtime configuration %s is not well-formed: %w", opts.ConfigFile, err)
	}

	vsnCopy := filepath.Join(opts.OutDir, ReleasesDir, opts.ReleaseVersion, ConfigName)
	if err := CopyFile(opts.ConfigFile, vsnCopy); err != nil {
		return err
	}

	return CopyFile(opts.ConfigFile, filepath.Join(opts.OutDir, ConfigName))
}
