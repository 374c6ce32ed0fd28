package bundle

import (
	"crypto/sha256"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// TreeDigest computes a deterministic SHA256 digest over a directory tree.
//
// Algorithm:
//  1. Collect every regular file's slash-separated relative path
//  2. Sort the paths
//  3. Hash each path followed by a NUL byte and the file's content
//  4. Return "sha256:<hex>"
//
// The digest depends only on relative paths and file bytes, so two
// assemblies of the same inputs into different directories digest
// identically.
func TreeDigest(root string) (string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		paths = append(paths, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("walking %s: %w", root, err)
	}
	sort.Strings(paths)

	h := sha256.New()
	for _, rel := range paths {
		h.Write([]byte(rel))
		h.Write([]byte{0})

		f, err := os.Open(filepath.Join(root, filepath.FromSlash(rel)))
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", rel, err)
		}
		if _, err := io.Copy(h, f); err != nil {
			f.Close()
			return "", fmt.Errorf("hashing %s: %w", rel, err)
		}
		f.Close()
	}

	return fmt.Sprintf("sha256:%x", h.Sum(nil)), nil
}
