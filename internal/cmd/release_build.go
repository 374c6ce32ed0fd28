package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/loomrt/relkit/internal/boot"
	"github.com/loomrt/relkit/internal/component"
	"github.com/loomrt/relkit/internal/output"
	"github.com/loomrt/relkit/internal/platform"
	"github.com/loomrt/relkit/internal/release"
)

// NewReleaseBuildCmd creates the release build command.
func NewReleaseBuildCmd() *cobra.Command {
	var (
		nameFlag      string
		versionFlag   string
		depFlags      []string
		extraLibFlags []string
		outFlag       string
		formatFlag    string
		silentFlag    bool
		skipModCheck  bool
	)

	c := &cobra.Command{
		Use:   "build [main-dir]",
		Short: "Resolve and emit a release",
		Long: `Build a release from a compiled main component directory.

Resolves the transitive dependency closure, auto-detects platform libraries,
orders the application list, and emits the release specification, version
manifest, boot script, and binary boot artifact.

Arguments:
  main-dir    Path to the main component's build output (default: current directory)

Examples:
  # Build a release for the component in the current directory
  relkit release build --version 1.0.0

  # Build with explicit dependencies and an extra platform library
  relkit release build ./out/svc --version 1.0.0 \
    --dep ./out/lib_a --dep ./out/lib_b --extra-lib observer

  # Build against a specific platform installation
  relkit release build ./out/svc --version 1.0.0 --platform-root /opt/loom`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			return exitify(runReleaseBuild(releaseBuildOpts{
				mainDir:      dir,
				name:         nameFlag,
				version:      versionFlag,
				deps:         depFlags,
				extraLibs:    extraLibFlags,
				outDir:       outFlag,
				format:       formatFlag,
				silent:       silentFlag,
				skipModCheck: skipModCheck,
			}))
		},
	}

	c.Flags().StringVarP(&nameFlag, "name", "n", "", "Release name (default: main component name)")
	c.Flags().StringVar(&versionFlag, "version", "", "Release version; also the fallback for an unversioned main component (required)")
	c.Flags().StringArrayVar(&depFlags, "dep", nil, "Dependency component directory (repeatable)")
	c.Flags().StringArrayVar(&extraLibFlags, "extra-lib", nil, "Extra platform library to include (repeatable)")
	c.Flags().StringVarP(&outFlag, "out", "o", "./_release", "Output directory for release artifacts")
	c.Flags().StringVar(&formatFlag, "format", "text", "Output format: text, table, json")
	c.Flags().BoolVar(&silentFlag, "silent", false, "Suppress boot compiler progress output")
	c.Flags().BoolVar(&skipModCheck, "skip-module-check", false, "Skip search-path verification during boot compilation")
	_ = c.MarkFlagRequired("version")

	return c
}

type releaseBuildOpts struct {
	mainDir      string
	name         string
	version      string
	deps         []string
	extraLibs    []string
	outDir       string
	format       string
	silent       bool
	skipModCheck bool
}

// runReleaseBuild executes the release build command.
func runReleaseBuild(opts releaseBuildOpts) error {
	format, ok := output.ParseOutputFormat(opts.format)
	if !ok || format == output.FormatYAML {
		return NewExitError(
			fmt.Errorf("invalid output format %q (valid: %v)", opts.format, output.ValidBuildFormats()),
			ExitGeneralError,
		)
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

	name := opts.name
	if name == "" {
		name = main.Name
	}

	index := newPlatformIndex()
	builder := release.NewBuilder(index, boot.NewScriptCompiler(index))

	cfg := &release.Config{
		Name:            name,
		Version:         opts.version,
		Main:            main,
		Deps:            deps,
		ExtraLibs:       opts.extraLibs,
		OutDir:          opts.outDir,
		Silent:          opts.silent,
		SkipModuleCheck: opts.skipModCheck,
	}

	var result *release.Result
	err = output.RunWithSpinner(context.Background(), func() error {
		var buildErr error
		result, buildErr = builder.Build(cfg)
		return buildErr
	}, output.WithTitle(fmt.Sprintf("Building release %s-%s...", name, opts.version)))
	if err != nil {
		return err
	}

	for _, warning := range result.Warnings {
		output.Warn(warning)
	}

	return showBuildResult(result, cfg, format)
}

// newPlatformIndex constructs the platform index from the resolved
// configuration.
func newPlatformIndex() platform.Index {
	root := resolvePlatformRoot().Root

	var opts []platform.DirIndexOption
	if override := runtimeVersionOverride(); override != "" {
		opts = append(opts, platform.WithRuntimeVersion(override))
	}

	return platform.NewDirIndex(root, opts...)
}

// showBuildResult renders the build outcome in the requested format.
func showBuildResult(result *release.Result, cfg *release.Config, format output.OutputFormat) error {
	switch format {
	case output.FormatJSON:
		payload := struct {
			Release      string             `json:"release"`
			Version      string             `json:"version"`
			Runtime      string             `json:"runtime"`
			Applications []release.AppEntry `json:"applications"`
			Artifacts    release.Artifacts  `json:"artifacts"`
			Warnings     []string           `json:"warnings,omitempty"`
		}{
			Release:      cfg.Name,
			Version:      cfg.Version,
			Runtime:      result.RuntimeVersion,
			Applications: result.Apps,
			Artifacts:    result.Artifacts,
			Warnings:     result.Warnings,
		}
		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding build result: %w", err)
		}
		output.Println(string(data))

	case output.FormatTable:
		rows := make([]output.AppRow, 0, len(result.Apps))
		for _, app := range result.Apps {
			rows = append(rows, output.AppRow{Name: app.Name, Version: app.Version, Origin: app.Origin})
		}
		output.Print(output.RenderAppTable(rows))
		output.Println(output.FormatCheckmark(fmt.Sprintf("release %s-%s built (%d applications)", cfg.Name, cfg.Version, len(result.Apps))))

	default:
		for _, app := range result.Apps {
			output.Println("  " + output.FormatAppLine(app.Name, app.Version, app.Origin))
		}
		output.Println(output.FormatCheckmark(fmt.Sprintf("release %s-%s built (%d applications, runtime %s)", cfg.Name, cfg.Version, len(result.Apps), result.RuntimeVersion)))
	}

	return nil
}
