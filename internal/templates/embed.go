// Package templates provides the embedded bundle launcher and its rendering.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"text/template"
)

//go:embed launcher/run.tmpl
var launcherFS embed.FS

// launcherTemplate is the embedded launcher source path.
const launcherTemplate = "launcher/run.tmpl"

// LauncherData parameterizes the launcher script.
type LauncherData struct {
	// ReleaseName is the release the launcher boots.
	ReleaseName string

	// ReleaseVersion selects the releases/<version> directory.
	ReleaseVersion string

	// MainComponent is the component the release is built around.
	MainComponent string

	// RuntimeVersion is the platform runtime version the release was
	// resolved against.
	RuntimeVersion string
}

// RenderLauncher renders the launcher script to path, creating parent
// directories as needed and marking the result executable.
func RenderLauncher(path string, data LauncherData) error {
	content, err := launcherFS.ReadFile(launcherTemplate)
	if err != nil {
		return fmt.Errorf("reading launcher template: %w", err)
	}

	tmpl, err := template.New("run").Parse(string(content))
	if err != nil {
		return fmt.Errorf("parsing launcher template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("rendering launcher: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating launcher directory: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o755); err != nil {
		return fmt.Errorf("writing launcher: %w", err)
	}

	return nil
}
