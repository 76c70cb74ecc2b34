package ports

import "go.trai.ch/classdex/internal/core/domain"

// DescriptorLoader reads the module descriptor produced by the surrounding
// build tool: the module's output directory, scan options and resolved
// dependency artifacts.
//
//go:generate mockgen -source=descriptor_loader.go -destination=mocks/mock_descriptor_loader.go -package=mocks
type DescriptorLoader interface {
	// Load reads and validates the descriptor at the given path.
	Load(path string) (*domain.Module, error)
}
