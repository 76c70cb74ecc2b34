package ports

import "go.trai.ch/classdex/internal/core/domain"

// ModuleIndexer indexes a build module's own compiled classes. The result is
// never cached: module output changes between incremental builds within one
// process.
//
//go:generate mockgen -source=module_indexer.go -destination=mocks/mock_module_indexer.go -package=mocks
type ModuleIndexer interface {
	// IndexModule walks outputDir recursively and indexes every class file.
	// A missing directory yields an empty index; a directory that exists but
	// cannot be traversed is an error.
	IndexModule(outputDir string) (*domain.TypeIndex, error)
}
