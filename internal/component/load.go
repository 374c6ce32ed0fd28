package component

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FromDir constructs a Component from a build output directory laid out by
// the build orchestration layer: module files either flat or under ebin/,
// optional resources under priv/, and the metadata artifact at one of the
// candidate locations.
//
// The component identifier is the directory base name unless the metadata
// artifact declares a different one. Dependencies are not resolved here;
// the caller wires Deps from its own dependency list.
func FromDir(parser *Parser, dir string) (*Component, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving component directory %s: %w", dir, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("component directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("component path %s is not a directory", dir)
	}

	c := &Component{
		Name: filepath.Base(abs),
		Dir:  abs,
	}

	if path, ok := LocateMetadata(abs, c.Name); ok {
		c.MetadataFile, _ = filepath.Rel(abs, path)
		if meta, err := parser.ParseFile(path); err == nil && meta.Name != "" {
			c.Name = meta.Name
		}
	}

	files, err := moduleFiles(abs)
	if err != nil {
		return nil, err
	}
	c.Files = files

	resources, err := resourceFiles(abs)
	if err != nil {
		return nil, err
	}
	c.Resources = resources

	return c, nil
}

// moduleFiles lists the binary module artifacts of a component directory,
// relative to it: the contents of ebin/ when present, otherwise the
// top-level regular files. The metadata artifact is never a module file.
func moduleFiles(dir string) ([]string, error) {
	base := dir
	prefix := ""
	if info, err := os.Stat(filepath.Join(dir, "ebin")); err == nil && info.IsDir() {
		base = filepath.Join(dir, "ebin")
		prefix = "ebin"
	}

	entries, err := os.ReadDir(base)
	if err != nil {
		return nil, fmt.Errorf("listing component modules in %s: %w", base, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(entry.Name(), MetadataSuffix) {
			continue
		}
		files = append(files, filepath.Join(prefix, entry.Name()))
	}
	sort.Strings(files)

	return files, nil
}

// resourceFiles lists the resource entries of a component directory: the
// children of priv/, as paths relative to the component directory. A
// missing priv/ means no resources.
func resourceFiles(dir string) ([]string, error) {
	priv := filepath.Join(dir, "priv")
	info, err := os.Stat(priv)
	if err != nil || !info.IsDir() {
		return nil, nil
	}

	entries, err := os.ReadDir(priv)
	if err != nil {
		return nil, fmt.Errorf("listing component resources in %s: %w", priv, err)
	}

	var resources []string
	for _, entry := range entries {
		resources = append(resources, filepath.Join("priv", entry.Name()))
	}
	sort.Strings(resources)

	return resources, nil
}
