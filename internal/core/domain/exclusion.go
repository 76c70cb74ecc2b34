package domain

import "slices"

// defaultExclusionEntries is the maintenance list of dependencies known to be
// irrelevant or problematic to index for documentation purposes. Entries are
// either bare group ids or exact "group:artifact" pairs; membership is checked
// verbatim, never by prefix.
var defaultExclusionEntries = []string{
	"org.graalvm.sdk:graal-sdk",
	"org.yaml:snakeyaml",
	"org.wildfly.common:wildfly-common",
	"com.fasterxml.jackson.core:jackson-core",
	"com.fasterxml.jackson.core:jackson-databind",
	"io.smallrye.reactive:smallrye-mutiny-vertx-core",
	"commons-io:commons-io",
	"io.smallrye.reactive:mutiny",
	"org.jboss.narayana.jta:narayana-jta",
	"org.glassfish.jaxb:jaxb-runtime",
	"com.github.ben-manes.caffeine:caffeine",
	"org.hibernate.validator:hibernate-validator",
	"io.smallrye.config:smallrye-config-core",
	"com.thoughtworks.xstream:xstream",
	"com.github.javaparser:javaparser-core",
	"org.jboss:jandex",

	"antlr",
	"io.netty",
	"org.drools",
	"net.bytebuddy",
	"org.hibernate",
	"org.kie",
	"org.postgresql",
	"org.apache.httpcomponents",
}

// Exclusions is a set of group and "group:artifact" identifiers that must not
// be indexed. It is initialized once and read-only afterwards.
type Exclusions struct {
	entries map[string]struct{}
}

// NewExclusions builds an exclusion set from the default table plus any extra
// entries supplied by the module descriptor.
func NewExclusions(extra ...string) Exclusions {
	entries := make(map[string]struct{}, len(defaultExclusionEntries)+len(extra))
	for _, e := range defaultExclusionEntries {
		entries[e] = struct{}{}
	}
	for _, e := range extra {
		if e == "" {
			continue
		}
		entries[e] = struct{}{}
	}
	return Exclusions{entries: entries}
}

// NewExclusionsFrom builds an exclusion set from exactly the given entries,
// without the default table. Used by tests and by callers that manage their
// own policy.
func NewExclusionsFrom(entries ...string) Exclusions {
	set := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if e == "" {
			continue
		}
		set[e] = struct{}{}
	}
	return Exclusions{entries: set}
}

// Contains reports verbatim membership of an identifier.
func (x Exclusions) Contains(id string) bool {
	_, ok := x.entries[id]
	return ok
}

// Len returns the number of entries.
func (x Exclusions) Len() int {
	return len(x.entries)
}

// IsExcluded decides whether an artifact is ineligible for indexing.
// Any of the following excludes it:
//  1. its scope is not in allowedScopes,
//  2. its packaging type is not in allowedTypes,
//  3. its group id is in the exclusion set,
//  4. its "group:artifact" pair is in the exclusion set.
func (x Exclusions) IsExcluded(artifact Artifact, allowedScopes, allowedTypes []string) bool {
	return !slices.Contains(allowedScopes, artifact.Scope.String()) ||
		!slices.Contains(allowedTypes, artifact.Coordinate.Type.String()) ||
		x.Contains(artifact.Coordinate.Group.String()) ||
		x.Contains(artifact.Coordinate.GroupArtifact())
}

// ScanOptions control which dependencies are eligible for indexing.
type ScanOptions struct {
	// DisableDependencies skips dependency indexing entirely; only the
	// module's own classes are indexed.
	DisableDependencies bool
	// Scopes is the allow-list of dependency scopes eligible for indexing.
	Scopes []string
	// Types is the allow-list of packaging types eligible for indexing.
	Types []string
	// Exclusions is the merged exclusion set consulted per artifact.
	Exclusions Exclusions
}

// Module is the build module handed to the indexer: its compiled-class output
// directory, scan options and the resolved dependency artifacts.
type Module struct {
	Name      string
	OutputDir string
	Scan      ScanOptions
	Artifacts []Artifact
}
