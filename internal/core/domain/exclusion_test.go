package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/classdex/internal/core/domain"
)

func artifact(group, name, version, classifier, typ, scope string) domain.Artifact {
	return domain.Artifact{
		Coordinate: domain.NewCoordinate(group, name, version, classifier, typ),
		Path:       "/repo/" + group + "/" + name + ".jar",
		Scope:      domain.NewInternedString(scope),
	}
}

func TestNewExclusions_IncludesDefaults(t *testing.T) {
	x := domain.NewExclusions()

	assert.True(t, x.Contains("org.jboss:jandex"))
	assert.True(t, x.Contains("io.netty"))
	assert.True(t, x.Contains("org.postgresql"))
	assert.False(t, x.Contains("com.example:app"))
}

func TestNewExclusions_MergesExtras(t *testing.T) {
	x := domain.NewExclusions("com.example:legacy", "com.example")

	assert.True(t, x.Contains("com.example:legacy"))
	assert.True(t, x.Contains("com.example"))
	// Defaults survive the merge.
	assert.True(t, x.Contains("org.yaml:snakeyaml"))
}

func TestNewExclusions_IgnoresEmptyEntries(t *testing.T) {
	base := domain.NewExclusions()
	x := domain.NewExclusions("")

	assert.Equal(t, base.Len(), x.Len())
}

func TestIsExcluded_ScopeNotAllowed(t *testing.T) {
	x := domain.NewExclusionsFrom()
	a := artifact("com.example", "lib", "1.0", "", "jar", "test")

	assert.True(t, x.IsExcluded(a, []string{"compile", "system"}, []string{"jar"}))
}

func TestIsExcluded_TypeNotAllowed(t *testing.T) {
	x := domain.NewExclusionsFrom()
	a := artifact("com.example", "lib", "1.0", "", "war", "compile")

	assert.True(t, x.IsExcluded(a, []string{"compile", "system"}, []string{"jar"}))
}

func TestIsExcluded_GroupMatch(t *testing.T) {
	x := domain.NewExclusions()
	a := artifact("io.netty", "netty-common", "4.1.100.Final", "", "jar", "compile")

	assert.True(t, x.IsExcluded(a, []string{"compile", "system"}, []string{"jar"}))
}

func TestIsExcluded_GroupArtifactMatch(t *testing.T) {
	x := domain.NewExclusions()
	a := artifact("org.jboss", "jandex", "3.1.2", "", "jar", "compile")

	assert.True(t, x.IsExcluded(a, []string{"compile", "system"}, []string{"jar"}))
}

func TestIsExcluded_NoPrefixMatching(t *testing.T) {
	// "org.hibernate" is excluded as a group, but a group that merely starts
	// with it must pass. Membership is verbatim.
	x := domain.NewExclusions()
	a := artifact("org.hibernately", "lib", "1.0", "", "jar", "compile")

	assert.False(t, x.IsExcluded(a, []string{"compile", "system"}, []string{"jar"}))
}

func TestIsExcluded_EligibleArtifact(t *testing.T) {
	x := domain.NewExclusions()
	a := artifact("com.example", "app-api", "2.3.1", "", "jar", "compile")

	assert.False(t, x.IsExcluded(a, []string{"compile", "system"}, []string{"jar"}))
}

func TestIsExcluded_SystemScopeAllowed(t *testing.T) {
	x := domain.NewExclusions()
	a := artifact("com.example", "tools", "1.0", "", "jar", "system")

	assert.False(t, x.IsExcluded(a, []string{"compile", "system"}, []string{"jar"}))
}
