package ports

import "go.trai.ch/classdex/internal/core/domain"

// ArchiveIndexer produces a type index from a dependency artifact's backing
// archive.
//
//go:generate mockgen -source=archive_indexer.go -destination=mocks/mock_archive_indexer.go -package=mocks
type ArchiveIndexer interface {
	// IndexArchive opens the archive at path, indexes every class entry and
	// returns the completed index. The file handle is released on every exit
	// path.
	IndexArchive(path string) (*domain.TypeIndex, error)

	// ContentDigest returns a stable digest of the archive's bytes, used to
	// disambiguate snapshot coordinates in cache keys.
	ContentDigest(path string) (string, error)
}
