package domain

import "strings"

// Coordinate is the logical identity of a dependency artifact:
// group, artifact, version, classifier and packaging type.
type Coordinate struct {
	Group      InternedString
	Artifact   InternedString
	Version    InternedString
	Classifier InternedString
	Type       InternedString
}

// NewCoordinate creates a Coordinate from plain strings.
func NewCoordinate(group, artifact, version, classifier, typ string) Coordinate {
	return Coordinate{
		Group:      NewInternedString(group),
		Artifact:   NewInternedString(artifact),
		Version:    NewInternedString(version),
		Classifier: NewInternedString(classifier),
		Type:       NewInternedString(typ),
	}
}

// Key renders the coordinate as its canonical "group:artifact:version:classifier:type"
// string. The rendering is total: a missing classifier yields an empty segment,
// and no two distinct coordinates share a key because every segment keeps its
// position.
func (c Coordinate) Key() string {
	var b strings.Builder
	b.WriteString(c.Group.String())
	b.WriteByte(':')
	b.WriteString(c.Artifact.String())
	b.WriteByte(':')
	b.WriteString(c.Version.String())
	b.WriteByte(':')
	b.WriteString(c.Classifier.String())
	b.WriteByte(':')
	b.WriteString(c.Type.String())
	return b.String()
}

// GroupArtifact renders the "group:artifact" pair used by exclusion entries.
func (c Coordinate) GroupArtifact() string {
	return c.Group.String() + ":" + c.Artifact.String()
}

// IsSnapshot reports whether the version denotes mutable snapshot content.
// Snapshot coordinates can point at different bytes over the lifetime of a
// long-running process, so the cache key for them carries a content digest.
func (c Coordinate) IsSnapshot() bool {
	return strings.HasSuffix(c.Version.String(), "-SNAPSHOT")
}

// Artifact is a dependency as resolved by the surrounding build tool:
// its coordinate, the backing file on disk and the declared scope.
// It is read-only for the indexer.
type Artifact struct {
	Coordinate Coordinate
	Path       string
	Scope      InternedString
}
