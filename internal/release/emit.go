package release

import (
	"errors"
	"os"
	"path/filepath"

	"sigs.k8s.io/yaml"

	"github.com/loomrt/relkit/internal/boot"
	"github.com/loomrt/relkit/internal/component"
	"github.com/loomrt/relkit/internal/manifest"
	"github.com/loomrt/relkit/internal/output"
	"github.com/loomrt/relkit/internal/platform"
)

// RelSuffix is the filename suffix of release specification artifacts.
const RelSuffix = ".rel"

// Builder runs release resolution end to end: dependency closure, version
// resolution, platform-library detection, application list construction,
// and artifact emission.
type Builder struct {
	parser   *component.Parser
	index    platform.Index
	compiler boot.Compiler
}

// NewBuilder creates a Builder that resolves platform libraries against
// index and delegates boot-sequence generation to compiler.
func NewBuilder(index platform.Index, compiler boot.Compiler) *Builder {
	return &Builder{
		parser:   component.NewParser(),
		index:    index,
		compiler: compiler,
	}
}

// Result is the outcome of a successful release build.
type Result struct {
	// Table is the versioned dependency table.
	Table Table

	// PlatformLibs are the expanded platform-library identifiers, sorted.
	PlatformLibs []string

	// Apps is the ordered release application list.
	Apps AppList

	// RuntimeVersion is the platform runtime version recorded in the
	// release specification.
	RuntimeVersion string

	// Artifacts are the emitted artifact paths.
	Artifacts Artifacts

	// Warnings collects non-fatal conditions from list construction and
	// boot compilation.
	Warnings []string
}

// Artifacts names the on-disk outputs of one release build.
type Artifacts struct {
	// Rel is the release specification, <out>/<name>.rel.
	Rel string `json:"rel"`

	// Script is the human-readable boot script, <out>/<name>.script.
	Script string `json:"script"`

	// Boot is the binary boot artifact, <out>/<name>.boot.
	Boot string `json:"boot"`

	// Manifest is the binary version manifest, <out>/<name>.manifest.
	Manifest string `json:"manifest"`
}

// Paths returns every artifact path, in emission order.
func (a Artifacts) Paths() []string {
	return []string{a.Rel, a.Manifest, a.Script, a.Boot}
}

// Build resolves and emits a release.
//
// The build process:
//  1. Probe the boot compiler's environment support and the platform
//     runtime version (fatal when unavailable)
//  2. Validate the request shape
//  3. Walk the dependency closure and resolve per-component versions
//     into the dependency table
//  4. Detect platform libraries and expand them transitively
//  5. Merge everything into the ordered application list
//  6. Write the release specification and version manifest, delegate
//     boot compilation, and verify every declared artifact exists
func (b *Builder) Build(cfg *Config) (*Result, error) {
	if cfg == nil {
		return nil, &InputError{Message: "nil build request"}
	}
	if b.index == nil {
		return nil, &EnvError{ReleaseName: cfg.Name, Cause: errors.New("no platform index configured")}
	}
	if b.compiler == nil {
		return nil, &EnvError{ReleaseName: cfg.Name, Cause: errors.New("no boot compiler configured")}
	}

	if err := b.compiler.Check(); err != nil {
		return nil, &EnvError{ReleaseName: cfg.Name, Cause: err}
	}
	runtimeVersion, err := b.index.RuntimeVersion()
	if err != nil {
		return nil, &EnvError{ReleaseName: cfg.Name, Cause: err}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := output.Scoped(cfg.Name)
	log.Debug("building release",
		"version", cfg.Version,
		"main", cfg.Main.Name,
		"deps", len(cfg.Deps),
		"extraLibs", len(cfg.ExtraLibs),
	)

	roots := append([]*component.Component{cfg.Main}, cfg.Deps...)
	closure := TransitiveClosure(roots)
	table := make(Table, len(closure))
	for _, c := range closure {
		c.Version = ResolveVersion(b.parser, c, cfg.Version, c.Name == cfg.Main.Name)
		table[c.Name] = c
	}

	seed := DetectPlatformLibs(b.parser, table, cfg.ExtraLibs)
	platformLibs := ExpandPlatformLibs(b.parser, b.index, seed)
	log.Debug("platform libraries resolved",
		"seed", len(seed),
		"expanded", len(platformLibs),
	)

	apps, warnings := BuildAppList(cfg.Main, table, platformLibs, b.index)
	for _, w := range warnings {
		log.Warn(w)
	}

	artifacts, bootWarnings, err := b.emit(cfg, runtimeVersion, table, apps)
	if err != nil {
		return nil, err
	}
	warnings = append(warnings, bootWarnings...)

	log.Debug("release built",
		"apps", len(apps),
		"warnings", len(warnings),
	)

	return &Result{
		Table:          table,
		PlatformLibs:   platformLibs,
		Apps:           apps,
		RuntimeVersion: runtimeVersion,
		Artifacts:      artifacts,
		Warnings:       warnings,
	}, nil
}

// emit writes the release specification and version manifest, delegates
// boot compilation, and verifies the declared artifacts exist afterwards.
// The manifest is keyed by the full dependency table, not the filtered
// application list, so it may carry entries the list excluded.
func (b *Builder) emit(cfg *Config, runtimeVersion string, table Table, apps AppList) (Artifacts, []string, error) {
	artifacts := Artifacts{
		Rel:      filepath.Join(cfg.OutDir, cfg.Name+RelSuffix),
		Script:   filepath.Join(cfg.OutDir, cfg.Name+boot.ScriptSuffix),
		Boot:     filepath.Join(cfg.OutDir, cfg.Name+boot.BootSuffix),
		Manifest: filepath.Join(cfg.OutDir, cfg.Name+manifest.Suffix),
	}

	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return Artifacts{}, nil, &AssemblyError{ReleaseName: cfg.Name, Message: "creating output directory", Cause: err}
	}

	spec := Spec{
		Release:      SpecIdentity{Name: cfg.Name, Version: cfg.Version},
		Runtime:      SpecRuntime{Version: runtimeVersion},
		Applications: make([]SpecApp, 0, len(apps)),
	}
	for _, app := range apps {
		spec.Applications = append(spec.Applications, SpecApp{Name: app.Name, Version: app.Version})
	}
	data, err := yaml.Marshal(spec)
	if err != nil {
		return Artifacts{}, nil, &AssemblyError{ReleaseName: cfg.Name, Message: "encoding release specification", Cause: err}
	}
	if err := os.WriteFile(artifacts.Rel, data, 0o644); err != nil {
		return Artifacts{}, nil, &AssemblyError{ReleaseName: cfg.Name, Message: "writing release specification", Cause: err}
	}

	if err := manifest.Write(artifacts.Manifest, table.Versions()); err != nil {
		return Artifacts{}, nil, &AssemblyError{ReleaseName: cfg.Name, Message: "writing version manifest", Cause: err}
	}

	result := b.compiler.Compile(boot.Request{
		ReleaseName:     cfg.Name,
		ReleaseVersion:  cfg.Version,
		RuntimeVersion:  runtimeVersion,
		Apps:            bootApps(apps),
		SearchPaths:     searchPaths(table),
		OutDir:          cfg.OutDir,
		Silent:          cfg.Silent,
		SkipModuleCheck: cfg.SkipModuleCheck,
	})
	if result.Err != nil {
		return Artifacts{}, nil, &BootError{ReleaseName: cfg.Name, Cause: result.Err}
	}

	var missing []string
	for _, path := range artifacts.Paths() {
		if _, err := os.Stat(path); err != nil {
			missing = append(missing, path)
		}
	}
	if len(missing) > 0 {
		return Artifacts{}, nil, &AssemblyError{
			ReleaseName: cfg.Name,
			Message:     "declared artifacts missing after boot compilation",
			Missing:     missing,
		}
	}

	return artifacts, result.Warnings, nil
}

// bootApps converts an application list to the boot compiler's input shape.
func bootApps(apps AppList) []boot.App {
	out := make([]boot.App, 0, len(apps))
	for _, app := range apps {
		out = append(out, boot.App{Name: app.Name, Version: app.Version})
	}
	return out
}

// searchPaths returns one path per contributing component's build output
// directory, sorted by component name.
func searchPaths(table Table) []string {
	paths := make([]string, 0, len(table))
	for _, name := range table.Names() {
		paths = append(paths, table[name].Dir)
	}
	return paths
}
