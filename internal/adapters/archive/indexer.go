// Package archive indexes dependency artifacts: jar archives containing
// compiled class files.
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/classdex/internal/core/domain"
	"go.trai.ch/classdex/internal/core/ports"
	"go.trai.ch/zerr"
)

const classFileSuffix = ".class"

var _ ports.ArchiveIndexer = (*JarIndexer)(nil)

// JarIndexer implements ports.ArchiveIndexer for zip-based artifacts.
type JarIndexer struct {
	parser ports.ClassParser
}

// NewJarIndexer creates a JarIndexer delegating class decoding to the parser.
func NewJarIndexer(parser ports.ClassParser) *JarIndexer {
	return &JarIndexer{parser: parser}
}

// IndexArchive opens the jar at path and indexes every class entry.
// The archive handle and every entry stream are released before returning,
// on the failure path included.
func (j *JarIndexer) IndexArchive(path string) (*domain.TypeIndex, error) {
	rc, err := zip.OpenReader(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrArtifactUnreadable, err.Error()), "path", path)
	}
	defer rc.Close() //nolint:errcheck // read-only handle, best effort close

	builder := domain.NewIndexBuilder()
	for _, entry := range rc.File {
		if !strings.HasSuffix(entry.Name, classFileSuffix) {
			continue
		}
		info, err := j.indexEntry(entry)
		if err != nil {
			return nil, zerr.With(zerr.With(err, "path", path), "entry", entry.Name)
		}
		builder.Add(info)
	}
	return builder.Build(), nil
}

func (j *JarIndexer) indexEntry(entry *zip.File) (*domain.ClassInfo, error) {
	r, err := entry.Open()
	if err != nil {
		return nil, zerr.Wrap(domain.ErrArtifactUnreadable, err.Error())
	}
	defer r.Close() //nolint:errcheck // read-only stream, best effort close

	return j.parser.Parse(r)
}

// ContentDigest computes an xxhash digest of the archive's bytes, rendered as
// a fixed-width hex string.
func (j *JarIndexer) ContentDigest(path string) (string, error) {
	f, err := os.Open(path) //nolint:gosec // Path comes from the build tool's descriptor
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to open artifact"), "path", path)
	}
	defer f.Close() //nolint:errcheck // read-only handle, best effort close

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to hash artifact"), "path", path)
	}
	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}
