package boot

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"

	"github.com/loomrt/relkit/internal/component"
	"github.com/loomrt/relkit/internal/output"
	"github.com/loomrt/relkit/internal/platform"
)

// ScriptSuffix and BootSuffix name the two compilation outputs.
const (
	ScriptSuffix = ".script"
	BootSuffix   = ".boot"
)

// bootScript is the serialized form of a compiled boot sequence. The script
// artifact is its YAML rendering; the boot artifact is canonical CBOR of the
// same structure.
type bootScript struct {
	Release      scriptRelease `yaml:"release" cbor:"1,keyasint"`
	Instructions []instruction `yaml:"instructions" cbor:"2,keyasint"`
}

type scriptRelease struct {
	Name    string `yaml:"name" cbor:"1,keyasint"`
	Version string `yaml:"version" cbor:"2,keyasint"`
	Runtime string `yaml:"runtime" cbor:"3,keyasint"`
}

type instruction struct {
	Op   string   `yaml:"op" cbor:"1,keyasint"`
	Args []string `yaml:"args,omitempty" cbor:"2,keyasint,omitempty"`
}

var bootEncMode cbor.EncMode

func init() {
	var err error
	bootEncMode, err = cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("boot: building CBOR encode mode: %v", err))
	}
}

// ScriptCompiler is the standard boot-sequence compiler. It needs a working
// platform installation to target; Check fails when none is available.
type ScriptCompiler struct {
	index platform.Index
}

// NewScriptCompiler creates the standard compiler against the given
// platform index.
func NewScriptCompiler(index platform.Index) *ScriptCompiler {
	return &ScriptCompiler{index: index}
}

// Check implements Compiler. The compiler requires the platform runtime
// support to be locatable; a missing or unreadable installation aborts the
// whole build before any artifact work starts.
func (c *ScriptCompiler) Check() error {
	if c.index == nil {
		return fmt.Errorf("boot compiler: no platform index configured")
	}

	if _, err := c.index.RuntimeVersion(); err != nil {
		return fmt.Errorf("boot compiler: runtime support unavailable: %w", err)
	}

	return nil
}

// Compile implements Compiler.
func (c *ScriptCompiler) Compile(req Request) Result {
	var warnings []string

	if !req.SkipModuleCheck {
		for _, path := range req.SearchPaths {
			info, err := os.Stat(path)
			if err != nil || !info.IsDir() {
				return Result{
					Warnings: warnings,
					Err:      fmt.Errorf("module path not found: %s", path),
				}
			}
		}
	}

	for _, app := range req.Apps {
		if app.Version == component.UnknownVersion {
			warnings = append(warnings, fmt.Sprintf("application %s carries placeholder version %s", app.Name, app.Version))
		}
	}

	script := buildScript(req)

	if !req.Silent {
		output.Debug("compiling boot sequence",
			"release", req.ReleaseName,
			"apps", len(req.Apps),
			"instructions", len(script.Instructions),
		)
	}

	scriptPath := filepath.Join(req.OutDir, req.ReleaseName+ScriptSuffix)
	scriptData, err := yaml.Marshal(script)
	if err != nil {
		return Result{Warnings: warnings, Err: fmt.Errorf("rendering boot script: %w", err)}
	}
	if err := os.WriteFile(scriptPath, scriptData, 0o644); err != nil {
		return Result{Warnings: warnings, Err: fmt.Errorf("writing boot script: %w", err)}
	}

	bootPath := filepath.Join(req.OutDir, req.ReleaseName+BootSuffix)
	bootData, err := bootEncMode.Marshal(script)
	if err != nil {
		return Result{Warnings: warnings, Err: fmt.Errorf("encoding boot artifact: %w", err)}
	}
	if err := os.WriteFile(bootPath, bootData, 0o644); err != nil {
		return Result{Warnings: warnings, Err: fmt.Errorf("writing boot artifact: %w", err)}
	}

	return Result{Warnings: warnings}
}

// buildScript lays out the boot sequence: establish module paths, load every
// application, then start them in list order. The list order already places
// foundational libraries first and the main application last.
func buildScript(req Request) bootScript {
	script := bootScript{
		Release: scriptRelease{
			Name:    req.ReleaseName,
			Version: req.ReleaseVersion,
			Runtime: req.RuntimeVersion,
		},
	}

	script.Instructions = append(script.Instructions, instruction{
		Op:   "progress",
		Args: []string{"init"},
	})

	for _, app := range req.Apps {
		script.Instructions = append(script.Instructions, instruction{
			Op:   "path",
			Args: []string{fmt.Sprintf("$ROOT/lib/%s-%s/ebin", app.Name, app.Version)},
		})
	}

	for _, app := range req.Apps {
		script.Instructions = append(script.Instructions, instruction{
			Op:   "load",
			Args: []string{app.Name},
		})
	}

	script.Instructions = append(script.Instructions, instruction{
		Op:   "progress",
		Args: []string{"loaded"},
	})

	for _, app := range req.Apps {
		script.Instructions = append(script.Instructions, instruction{
			Op:   "start",
			Args: []string{app.Name, app.Version},
		})
	}

	script.Instructions = append(script.Instructions, instruction{
		Op:   "progress",
		Args: []string{"started"},
	})

	return script
}
