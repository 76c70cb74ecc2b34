package domain

import "go.trai.ch/zerr"

var (
	// ErrModuleOutputUnreadable is returned when the module's compiled-class
	// output directory exists but cannot be traversed. This aborts the whole
	// indexing run: it is a build environment problem, not a data problem.
	ErrModuleOutputUnreadable = zerr.New("module output directory is not readable")

	// ErrArtifactUnreadable marks a dependency artifact whose archive cannot
	// be opened or indexed. It is recovered per artifact and never aborts the
	// overall run.
	ErrArtifactUnreadable = zerr.New("artifact archive is not readable")

	// ErrCacheCompute is returned when the index cache fails while computing
	// and storing an entry. Unlike ErrArtifactUnreadable this is fatal for
	// the run.
	ErrCacheCompute = zerr.New("index cache computation failed")

	// ErrMalformedClassFile is returned when a class file does not conform to
	// the class file format.
	ErrMalformedClassFile = zerr.New("malformed class file")

	// ErrDescriptorReadFailed is returned when the module descriptor file
	// cannot be read.
	ErrDescriptorReadFailed = zerr.New("failed to read module descriptor")

	// ErrDescriptorParseFailed is returned when the module descriptor file
	// cannot be parsed.
	ErrDescriptorParseFailed = zerr.New("failed to parse module descriptor")

	// ErrMissingOutputDir is returned when a descriptor does not declare the
	// module's output directory.
	ErrMissingOutputDir = zerr.New("module descriptor is missing the output directory")
)
