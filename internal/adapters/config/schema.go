package config

// Descriptor represents the structure of the classdex.yaml module descriptor,
// written by the surrounding build tool after dependency resolution.
type Descriptor struct {
	Version      string        `yaml:"version"`
	Module       ModuleDTO     `yaml:"module"`
	Scan         ScanDTO       `yaml:"scan"`
	Dependencies []ArtifactDTO `yaml:"dependencies"`
}

// ModuleDTO identifies the build module being documented.
type ModuleDTO struct {
	Name   string `yaml:"name"`
	Output string `yaml:"output"`
}

// ScanDTO carries the dependency-scanning options.
type ScanDTO struct {
	DisableDependencies bool     `yaml:"disableDependencies"`
	Scopes              []string `yaml:"scopes"`
	Types               []string `yaml:"types"`
	Exclude             []string `yaml:"exclude"`
}

// ArtifactDTO is one resolved dependency artifact.
type ArtifactDTO struct {
	Group      string `yaml:"group"`
	Artifact   string `yaml:"artifact"`
	Version    string `yaml:"version"`
	Classifier string `yaml:"classifier"`
	Type       string `yaml:"type"`
	Scope      string `yaml:"scope"`
	Path       string `yaml:"path"`
}
