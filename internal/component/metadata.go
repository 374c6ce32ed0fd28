package component

import (
	"fmt"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// UnknownVersion is the version recorded for components whose metadata does
// not declare one. Release resolution substitutes a real version for the
// main component; everything else keeps it.
const UnknownVersion = "0.0.0"

// MetadataSuffix is the filename suffix of component metadata artifacts.
const MetadataSuffix = ".app.cue"

// Metadata is the parsed content of a component metadata artifact.
type Metadata struct {
	// Name is the declared component name.
	Name string

	// Version is the declared version, or UnknownVersion when absent.
	Version string

	// Description is free-form and optional.
	Description string

	// Dependencies are the declared direct dependency identifiers.
	Dependencies []string

	// Included are embedded components started under this component's
	// supervision rather than as standalone list entries.
	Included []string
}

// MetadataCandidates returns the candidate metadata locations for a
// component, in resolution order: flat in the component dir, then nested
// under ebin/.
func MetadataCandidates(dir, name string) []string {
	file := name + MetadataSuffix
	return []string{
		filepath.Join(dir, file),
		filepath.Join(dir, "ebin", file),
	}
}

// LocateMetadata returns the first candidate location that exists on disk.
func LocateMetadata(dir, name string) (string, bool) {
	for _, candidate := range MetadataCandidates(dir, name) {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
	}
	return "", false
}

// Parser parses component metadata artifacts.
type Parser struct {
	ctx *cue.Context
}

// NewParser creates a new metadata parser.
func NewParser() *Parser {
	return &Parser{ctx: cuecontext.New()}
}

// ParseFile reads and parses the metadata artifact at path.
func (p *Parser) ParseFile(path string) (*Metadata, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading metadata: %w", err)
	}

	return p.Parse(content, path)
}

// Parse parses metadata artifact content. The filename is used in error
// positions only.
//
// The artifact shape is a top-level component declaration:
//
//	component: {
//	    name:         "web"
//	    vsn:          "1.2.0"
//	    dependencies: ["kernel", "stdlib", "httpd"]
//	    included:     ["web_admin"]
//	}
//
// Absent fields default: vsn to UnknownVersion, list fields to empty.
// Extra fields are ignored.
func (p *Parser) Parse(content []byte, filename string) (*Metadata, error) {
	value := p.ctx.CompileBytes(content, cue.Filename(filename))
	if value.Err() != nil {
		return nil, fmt.Errorf("compiling metadata: %w", value.Err())
	}

	decl := value.LookupPath(cue.ParsePath("component"))
	if !decl.Exists() {
		return nil, fmt.Errorf("metadata %s: missing component declaration", filename)
	}

	meta := &Metadata{
		Version: UnknownVersion,
	}

	if nameVal := decl.LookupPath(cue.ParsePath("name")); nameVal.Exists() {
		str, err := nameVal.String()
		if err != nil {
			return nil, fmt.Errorf("metadata %s: name is not a string: %w", filename, err)
		}
		meta.Name = str
	}

	if versionVal := decl.LookupPath(cue.ParsePath("vsn")); versionVal.Exists() {
		str, err := versionVal.String()
		if err != nil {
			return nil, fmt.Errorf("metadata %s: vsn is not a string: %w", filename, err)
		}
		meta.Version = str
	}

	if descVal := decl.LookupPath(cue.ParsePath("description")); descVal.Exists() {
		if str, err := descVal.String(); err == nil {
			meta.Description = str
		}
	}

	deps, err := stringList(decl, "dependencies", filename)
	if err != nil {
		return nil, err
	}
	meta.Dependencies = deps

	included, err := stringList(decl, "included", filename)
	if err != nil {
		return nil, err
	}
	meta.Included = included

	return meta, nil
}

// stringList extracts an optional list-of-strings field.
func stringList(decl cue.Value, field, filename string) ([]string, error) {
	listVal := decl.LookupPath(cue.ParsePath(field))
	if !listVal.Exists() {
		return nil, nil
	}

	iter, err := listVal.List()
	if err != nil {
		return nil, fmt.Errorf("metadata %s: %s is not a list: %w", filename, field, err)
	}

	var out []string
	for iter.Next() {
		str, err := iter.Value().String()
		if err != nil {
			return nil, fmt.Errorf("metadata %s: %s entry is not a string: %w", filename, field, err)
		}
		out = append(out, str)
	}

	return out, nil
}

// Load locates and parses the metadata artifact for a component directory.
// The boolean reports whether an artifact was found at all; a found artifact
// that fails to parse returns an error.
func (p *Parser) Load(dir, name string) (*Metadata, bool, error) {
	path, ok := LocateMetadata(dir, name)
	if !ok {
		return nil, false, nil
	}

	meta, err := p.ParseFile(path)
	if err != nil {
		return nil, true, err
	}

	return meta, true, nil
}
