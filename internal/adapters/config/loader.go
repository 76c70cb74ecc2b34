// Package config provides the module descriptor loader for classdex.
package config

import (
	"os"
	"slices"

	"go.trai.ch/classdex/internal/core/domain"
	"go.trai.ch/classdex/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Default allow-lists, applied when the descriptor leaves them empty. An
// empty list in the file means "use the defaults", not "exclude everything".
var (
	defaultScopes = []string{"compile", "system"}
	defaultTypes  = []string{"jar"}
)

// DefaultArtifactType is assumed for dependencies that do not declare a
// packaging type.
const DefaultArtifactType = "jar"

var _ ports.DescriptorLoader = (*Loader)(nil)

// Loader implements ports.DescriptorLoader using a YAML file.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads and validates the module descriptor at the given path.
func (l *Loader) Load(path string) (*domain.Module, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by the user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrDescriptorReadFailed, err.Error()), "path", path)
	}

	var desc Descriptor
	if err := yaml.Unmarshal(data, &desc); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrDescriptorParseFailed, err.Error()), "path", path)
	}

	if desc.Module.Output == "" {
		return nil, zerr.With(domain.ErrMissingOutputDir, "path", path)
	}

	module := &domain.Module{
		Name:      desc.Module.Name,
		OutputDir: desc.Module.Output,
		Scan: domain.ScanOptions{
			DisableDependencies: desc.Scan.DisableDependencies,
			Scopes:              allowList(desc.Scan.Scopes, defaultScopes),
			Types:               allowList(desc.Scan.Types, defaultTypes),
			Exclusions:          domain.NewExclusions(desc.Scan.Exclude...),
		},
		Artifacts: make([]domain.Artifact, 0, len(desc.Dependencies)),
	}

	for _, dto := range desc.Dependencies {
		typ := dto.Type
		if typ == "" {
			typ = DefaultArtifactType
		}
		module.Artifacts = append(module.Artifacts, domain.Artifact{
			Coordinate: domain.NewCoordinate(dto.Group, dto.Artifact, dto.Version, dto.Classifier, typ),
			Path:       dto.Path,
			Scope:      domain.NewInternedString(dto.Scope),
		})
	}

	return module, nil
}

// allowList canonicalizes a configured allow-list: sorted, deduplicated, and
// falling back to the defaults when empty.
func allowList(configured, defaults []string) []string {
	if len(configured) == 0 {
		return slices.Clone(defaults)
	}
	sorted := slices.Clone(configured)
	slices.Sort(sorted)
	return slices.Compact(sorted)
}
