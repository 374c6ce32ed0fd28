// Package manifest reads and writes release version manifests: the
// identifier-to-version mapping a release build records and the bundle
// assembler consumes.
//
// The on-disk form is canonical CBOR, so a given mapping always serializes
// to the same bytes.
package manifest

import (
	"fmt"
	"os"

	"github.com/fxamacker/cbor/v2"
)

// Suffix is the filename suffix of manifest artifacts.
const Suffix = ".manifest"

var encMode cbor.EncMode

func init() {
	var err error
	encMode, err = cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("manifest: building CBOR encode mode: %v", err))
	}
}

// Encode serializes the identifier-to-version mapping.
func Encode(versions map[string]string) ([]byte, error) {
	data, err := encMode.Marshal(versions)
	if err != nil {
		return nil, fmt.Errorf("encoding manifest: %w", err)
	}
	return data, nil
}

// Decode deserializes an identifier-to-version mapping.
func Decode(data []byte) (map[string]string, error) {
	var versions map[string]string
	if err := cbor.Unmarshal(data, &versions); err != nil {
		return nil, fmt.Errorf("decoding manifest: %w", err)
	}
	return versions, nil
}

// Write writes the mapping to path.
func Write(path string, versions map[string]string) error {
	data, err := Encode(versions)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}

	return nil
}

// Read reads the mapping from path.
func Read(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	return Decode(data)
}
