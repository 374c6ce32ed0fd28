package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/loomrt/relkit/internal/boot"
	"github.com/loomrt/relkit/internal/bundle"
	"github.com/loomrt/relkit/internal/component"
	"github.com/loomrt/relkit/internal/manifest"
	"github.com/loomrt/relkit/internal/output"
	"github.com/loomrt/relkit/internal/release"
)

// NewBundleAssembleCmd creates the bundle assemble command.
func NewBundleAssembleCmd() *cobra.Command {
	var (
		artifactsFlag string
		depFlags      []string
		configFlag    string
		outFlag       string
		treeFlag      bool
	)

	c := &cobra.Command{
		Use:   "assemble [main-dir]",
		Short: "Assemble a deployable bundle",
		Long: `Assemble a deployable bundle tree from a release build's artifacts and the
raw component outputs.

The release name, version, and runtime version are read from the release
specification in the artifacts directory. Component versions come from the
release manifest; components absent from the manifest are skipped.

Arguments:
  main-dir    Path to the main component's build output (default: current directory)

Examples:
  # Assemble a bundle from the default artifacts directory
  relkit bundle assemble ./out/svc --dep ./out/lib_a

  # Assemble with runtime configuration
  relkit bundle assemble ./out/svc --config ./sys.config --out ./dist/svc`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			return exitify(runBundleAssemble(bundleAssembleOpts{
				mainDir:      dir,
				artifactsDir: artifactsFlag,
				deps:         depFlags,
				configFile:   configFlag,
				outDir:       outFlag,
				showTree:     treeFlag,
			}))
		},
	}

	c.Flags().StringVar(&artifactsFlag, "artifacts", "./_release", "Directory holding the release build artifacts")
	c.Flags().StringArrayVar(&depFlags, "dep", nil, "Dependency component directory (repeatable)")
	c.Flags().StringVar(&configFlag, "config", "", "Runtime configuration file to ship as sys.config")
	c.Flags().StringVarP(&outFlag, "out", "o", "", "Bundle output directory (default: ./_bundle/<release>)")
	c.Flags().BoolVar(&treeFlag, "tree", false, "Print the assembled bundle tree")

	return c
}

type bundleAssembleOpts struct {
	mainDir      string
	artifactsDir string
	deps         []string
	configFile   string
	outDir       string
	showTree     bool
}

// runBundleAssemble executes the bundle assemble command.
func runBundleAssemble(opts bundleAssembleOpts) error {
	spec, artifacts, err := locateArtifacts(opts.artifactsDir)
	if err != nil {
		return err
	}

	parser := component.NewParser()
	main, err := component.FromDir(parser, opts.mainDir)
	if err != nil {
		return WrapNotFound(err, "loading main component")
	}
	deps := make([]*component.Component, 0, len(opts.deps))
	for _, dir := range opts.deps {
		dep, err := component.FromDir(parser, dir)
		if err != nil {
			return WrapNotFound(err, "loading dependency")
		}
		deps = append(deps, dep)
	}
	main.Deps = deps

	outDir := opts.outDir
	if outDir == "" {
		outDir = filepath.Join("_bundle", spec.Release.Name)
	}

	var b *bundle.Bundle
	err = output.RunWithSpinner(context.Background(), func() error {
		var assembleErr error
		b, assembleErr = bundle.Assemble(bundle.Options{
			Main:           main,
			ReleaseName:    spec.Release.Name,
			ReleaseVersion: spec.Release.Version,
			RuntimeVersion: spec.Runtime.Version,
			Artifacts:      artifacts,
			ConfigFile:     opts.configFile,
			OutDir:         outDir,
		})
		return assembleErr
	}, output.WithTitle(fmt.Sprintf("Assembling bundle %s-%s...", spec.Release.Name, spec.Release.Version)))
	if err != nil {
		return err
	}

	for _, name := range b.Skipped {
		output.Debug("component not in release manifest, skipped", "component", name)
	}

	if opts.showTree {
		libs := make([]string, len(b.Libs))
		copy(libs, b.Libs)
		sort.Strings(libs)
		paths := []string{
			filepath.Join(bundle.BinDir, bundle.LauncherName),
			filepath.Join(bundle.ReleasesDir, spec.Release.Name+release.RelSuffix),
			filepath.Join(bundle.ReleasesDir, spec.Release.Version, bundle.BootName),
		}
		for _, lib := range libs {
			paths = append(paths, filepath.Join(bundle.LibDir, lib))
		}
		output.Print(output.RenderSimpleTree(filepath.Base(b.Dir), paths))
	}

	output.Println(output.FormatCheckmark(fmt.Sprintf("bundle assembled at %s (%d components)", b.Dir, len(b.Libs))))

	return nil
}

// locateArtifacts finds the release build outputs in an artifacts
// directory: exactly one .rel file names the release, and the sibling
// artifacts are derived from it.
func locateArtifacts(dir string) (*release.Spec, release.Artifacts, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, release.Artifacts{}, WrapNotFound(err, "reading artifacts directory")
	}

	var rels []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), release.RelSuffix) {
			rels = append(rels, entry.Name())
		}
	}
	if len(rels) == 0 {
		return nil, release.Artifacts{}, NewExitError(
			fmt.Errorf("no release specification in %s: %w", dir, ErrNotFound),
			ExitNotFound,
		)
	}
	if len(rels) > 1 {
		sort.Strings(rels)
		return nil, release.Artifacts{}, NewExitError(
			fmt.Errorf("multiple release specifications in %s: %s", dir, strings.Join(rels, ", ")),
			ExitGeneralError,
		)
	}

	name := strings.TrimSuffix(rels[0], release.RelSuffix)
	spec, err := release.ReadSpec(filepath.Join(dir, rels[0]))
	if err != nil {
		return nil, release.Artifacts{}, err
	}

	return spec, release.Artifacts{
		Rel:      filepath.Join(dir, name+release.RelSuffix),
		Script:   filepath.Join(dir, name+boot.ScriptSuffix),
		Boot:     filepath.Join(dir, name+boot.BootSuffix),
		Manifest: filepath.Join(dir, name+manifest.Suffix),
	}, nil
}
