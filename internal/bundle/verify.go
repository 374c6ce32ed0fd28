package bundle

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/loomrt/relkit/internal/release"
)

// Report is the outcome of verifying an assembled bundle tree against its
// own release specification.
type Report struct {
	// ReleaseName and ReleaseVersion come from the bundle's spec.
	ReleaseName    string
	ReleaseVersion string

	// Missing are structural paths the layout requires but the tree
	// lacks (launcher, boot artifact, version directory spec copy).
	Missing []string

	// Extra are lib/ directories naming no application in the spec, or
	// naming one at a different version.
	Extra []string

	// PlatformProvided are spec applications with no lib/ directory;
	// their files are expected from the ambient platform installation.
	PlatformProvided []string

	// Digest is the bundle's content digest.
	Digest string
}

// OK reports whether the bundle passed verification. Platform-provided
// applications are informational, not failures.
func (r *Report) OK() bool {
	return len(r.Missing) == 0 && len(r.Extra) == 0
}

// Summary renders a one-line verification summary.
func (r *Report) Summary() string {
	if r.OK() {
		return fmt.Sprintf("bundle %s-%s verified", r.ReleaseName, r.ReleaseVersion)
	}

	parts := make([]string, 0, 2)
	if len(r.Missing) > 0 {
		parts = append(parts, fmt.Sprintf("%d missing", len(r.Missing)))
	}
	if len(r.Extra) > 0 {
		parts = append(parts, fmt.Sprintf("%d unexpected", len(r.Extra)))
	}
	return fmt.Sprintf("bundle %s-%s invalid: %s", r.ReleaseName, r.ReleaseVersion, strings.Join(parts, ", "))
}

// Verify re-reads an assembled bundle: locates its release specification,
// checks the fixed layout paths, and cross-checks the lib/ tree against the
// specification's application list.
func Verify(dir string) (*Report, error) {
	spec, err := findSpec(dir)
	if err != nil {
		return nil, err
	}

	report := &Report{
		ReleaseName:    spec.Release.Name,
		ReleaseVersion: spec.Release.Version,
	}

	vsnDir := filepath.Join(ReleasesDir, spec.Release.Version)
	required := []string{
		filepath.Join(BinDir, LauncherName),
		filepath.Join(vsnDir, BootName),
		filepath.Join(vsnDir, spec.Release.Name+release.RelSuffix),
	}
	for _, rel := range required {
		if _, err := os.Stat(filepath.Join(dir, rel)); err != nil {
			report.Missing = append(report.Missing, rel)
		}
	}

	libRefs, err := listLibRefs(dir)
	if err != nil {
		return nil, err
	}

	specRefs := make(map[string]bool, len(spec.Applications))
	for _, app := range spec.Applications {
		specRefs[fmt.Sprintf("%s-%s", app.Name, app.Version)] = true
	}

	for _, ref := range libRefs {
		if !specRefs[ref] {
			report.Extra = append(report.Extra, filepath.Join(LibDir, ref))
		}
	}

	present := make(map[string]bool, len(libRefs))
	for _, ref := range libRefs {
		present[ref] = true
	}
	for _, app := range spec.Applications {
		if !present[fmt.Sprintf("%s-%s", app.Name, app.Version)] {
			report.PlatformProvided = append(report.PlatformProvided, app.Name)
		}
	}

	digest, err := TreeDigest(dir)
	if err != nil {
		return nil, err
	}
	report.Digest = digest

	return report, nil
}

// findSpec locates and parses the bundle's top-level release specification.
func findSpec(dir string) (*release.Spec, error) {
	relDir := filepath.Join(dir, ReleasesDir)
	entries, err := os.ReadDir(relDir)
	if err != nil {
		return nil, fmt.Errorf("bundle %s has no releases directory: %w", dir, err)
	}

	var specs []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), release.RelSuffix) {
			specs = append(specs, entry.Name())
		}
	}
	if len(specs) == 0 {
		return nil, fmt.Errorf("bundle %s has no release specification under %s", dir, ReleasesDir)
	}
	if len(specs) > 1 {
		sort.Strings(specs)
		return nil, fmt.Errorf("bundle %s has multiple release specifications: %s", dir, strings.Join(specs, ", "))
	}

	return release.ReadSpec(filepath.Join(relDir, specs[0]))
}

// listLibRefs lists the versioned directory names under lib/, sorted. A
// missing lib/ directory is an empty bundle, not an error.
func listLibRefs(dir string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(dir, LibDir))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("listing bundle lib directory: %w", err)
	}

	var refs []string
	for _, entry := range entries {
		if entry.IsDir() {
			refs = append(refs, entry.Name())
		}
	}
	sort.Strings(refs)

	return refs, nil
}
