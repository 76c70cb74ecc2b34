package fs

import (
	"errors"
	iofs "io/fs"
	"os"

	"go.trai.ch/classdex/internal/core/domain"
	"go.trai.ch/classdex/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ModuleIndexer = (*ModuleIndexer)(nil)

// ModuleIndexer implements ports.ModuleIndexer over the local file system.
type ModuleIndexer struct {
	walker *Walker
	parser ports.ClassParser
}

// NewModuleIndexer creates a ModuleIndexer.
func NewModuleIndexer(walker *Walker, parser ports.ClassParser) *ModuleIndexer {
	return &ModuleIndexer{walker: walker, parser: parser}
}

// IndexModule walks outputDir and indexes every class file found.
// A missing directory is not an error: the module simply has no classes yet,
// and compiling before indexing is the caller's responsibility.
func (m *ModuleIndexer) IndexModule(outputDir string) (*domain.TypeIndex, error) {
	builder := domain.NewIndexBuilder()

	if _, err := os.Stat(outputDir); err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return builder.Build(), nil
		}
		return nil, zerr.With(zerr.Wrap(domain.ErrModuleOutputUnreadable, err.Error()), "path", outputDir)
	}

	for path, err := range m.walker.ClassFiles(outputDir) {
		if err != nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrModuleOutputUnreadable, err.Error()), "path", outputDir)
		}
		if err := m.indexFile(builder, path); err != nil {
			return nil, err
		}
	}

	return builder.Build(), nil
}

func (m *ModuleIndexer) indexFile(builder *domain.IndexBuilder, path string) error {
	f, err := os.Open(path) //nolint:gosec // Path comes from walking the configured output directory
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrModuleOutputUnreadable, err.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // read-only handle, best effort close

	info, err := m.parser.Parse(f)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to index module class"), "path", path)
	}
	builder.Add(info)
	return nil
}
