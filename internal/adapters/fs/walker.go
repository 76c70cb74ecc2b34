// Package fs provides file system adapters for enumerating compiled classes.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"
	"strings"
)

const classFileSuffix = ".class"

// Walker enumerates compiled class files under a module's output directory.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// ClassFiles yields every file under root whose name ends in ".class", in
// discovered order, together with any traversal error. A non-nil error ends
// the sequence; callers must treat it as fatal because a readable-but-broken
// output directory is a build environment problem.
func (w *Walker) ClassFiles(root string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if !strings.HasSuffix(path, classFileSuffix) {
				return nil
			}
			if !yield(path, nil) {
				return filepath.SkipAll
			}
			return nil
		})
		if err != nil {
			yield("", err)
		}
	}
}
