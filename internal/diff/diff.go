// Package diff compares two release specifications: which applications were
// added, removed, or changed version between them.
package diff

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gonvenience/ytbx"
	"github.com/homeport/dyff/pkg/dyff"

	"github.com/loomrt/relkit/internal/release"
)

// ChangedApp is an application present in both specifications with a
// different version.
type ChangedApp struct {
	Name       string
	OldVersion string
	NewVersion string
}

// Detail renders the version transition for display.
func (c ChangedApp) Detail() string {
	return fmt.Sprintf("%s to %s", c.OldVersion, c.NewVersion)
}

// Result is the comparison of two release specifications.
type Result struct {
	// Old and New identify the compared releases.
	Old release.SpecIdentity
	New release.SpecIdentity

	// Added are applications only the new specification lists.
	Added []string

	// Removed are applications only the old specification lists.
	Removed []string

	// Changed are applications whose version differs.
	Changed []ChangedApp

	// RuntimeChanged is set when the platform runtime version differs.
	RuntimeChanged bool

	// Report is the rendered structural diff of the two specification
	// documents, empty when they are identical.
	Report string
}

// HasChanges reports whether the specifications differ at all.
func (r *Result) HasChanges() bool {
	return len(r.Added) > 0 || len(r.Removed) > 0 || len(r.Changed) > 0 || r.RuntimeChanged
}

// Summary returns a one-line change summary.
func (r *Result) Summary() string {
	if !r.HasChanges() {
		return "no changes"
	}

	parts := make([]string, 0, 4)
	if len(r.Added) > 0 {
		parts = append(parts, fmt.Sprintf("%d added", len(r.Added)))
	}
	if len(r.Removed) > 0 {
		parts = append(parts, fmt.Sprintf("%d removed", len(r.Removed)))
	}
	if len(r.Changed) > 0 {
		parts = append(parts, fmt.Sprintf("%d changed", len(r.Changed)))
	}
	if r.RuntimeChanged {
		parts = append(parts, "runtime changed")
	}
	return strings.Join(parts, ", ")
}

// Releases compares two release specification files. Application order is
// ignored for add/remove/change detection; the structural report reflects
// the documents as written.
func Releases(oldPath, newPath string) (*Result, error) {
	oldSpec, err := release.ReadSpec(oldPath)
	if err != nil {
		return nil, err
	}
	newSpec, err := release.ReadSpec(newPath)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Old:            oldSpec.Release,
		New:            newSpec.Release,
		RuntimeChanged: oldSpec.Runtime.Version != newSpec.Runtime.Version,
	}

	oldApps := appVersions(oldSpec)
	newApps := appVersions(newSpec)

	for _, app := range newSpec.Applications {
		if _, ok := oldApps[app.Name]; !ok {
			result.Added = append(result.Added, app.Name)
		}
	}
	for _, app := range oldSpec.Applications {
		newVersion, ok := newApps[app.Name]
		if !ok {
			result.Removed = append(result.Removed, app.Name)
			continue
		}
		if newVersion != app.Version {
			result.Changed = append(result.Changed, ChangedApp{
				Name:       app.Name,
				OldVersion: app.Version,
				NewVersion: newVersion,
			})
		}
	}

	report, err := structuralReport(oldPath, newPath)
	if err != nil {
		return nil, err
	}
	result.Report = report

	return result, nil
}

func appVersions(spec *release.Spec) map[string]string {
	out := make(map[string]string, len(spec.Applications))
	for _, app := range spec.Applications {
		out[app.Name] = app.Version
	}
	return out
}

// structuralReport renders a human-readable document diff of the two
// specification files.
func structuralReport(oldPath, newPath string) (string, error) {
	oldInput, err := loadInput(oldPath)
	if err != nil {
		return "", err
	}
	newInput, err := loadInput(newPath)
	if err != nil {
		return "", err
	}

	report, err := dyff.CompareInputFiles(oldInput, newInput)
	if err != nil {
		return "", fmt.Errorf("comparing release specifications: %w", err)
	}
	if len(report.Diffs) == 0 {
		return "", nil
	}

	var buf bytes.Buffer
	writer := &dyff.HumanReport{
		Report:            report,
		DoNotInspectCerts: true,
		NoTableStyle:      true,
		OmitHeader:        true,
	}
	if err := writer.WriteReport(io.Writer(&buf)); err != nil {
		return "", fmt.Errorf("rendering diff report: %w", err)
	}

	lines := strings.Split(buf.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}

// loadInput reads a specification file into a dyff input.
func loadInput(path string) (ytbx.InputFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ytbx.InputFile{}, fmt.Errorf("reading %s: %w", path, err)
	}

	docs, err := ytbx.LoadYAMLDocuments(bytes.TrimSpace(data))
	if err != nil {
		return ytbx.InputFile{}, fmt.Errorf("parsing %s: %w", path, err)
	}

	return ytbx.InputFile{
		Location:  path,
		Documents: docs,
	}, nil
}
