package ports

import (
	"io"

	"go.trai.ch/classdex/internal/core/domain"
)

// ClassParser extracts type and annotation metadata from a single compiled
// class file. Implementations must read the stream to the extent needed and
// never retain it.
//
//go:generate mockgen -source=class_parser.go -destination=mocks/mock_class_parser.go -package=mocks
type ClassParser interface {
	// Parse decodes one class file.
	Parse(r io.Reader) (*domain.ClassInfo, error)
}
