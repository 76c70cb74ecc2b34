package indexer_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/classdex/internal/adapters/cache"
	"go.trai.ch/classdex/internal/adapters/telemetry"
	"go.trai.ch/classdex/internal/core/domain"
	"go.trai.ch/classdex/internal/core/ports/mocks"
	"go.trai.ch/classdex/internal/engine/indexer"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	modules  *mocks.MockModuleIndexer
	archives *mocks.MockArchiveIndexer
	logger   *mocks.MockLogger
	creator  *indexer.Creator
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		modules:  mocks.NewMockModuleIndexer(ctrl),
		archives: mocks.NewMockArchiveIndexer(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
	}
	f.logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	f.logger.EXPECT().DebugEnabled().Return(false).AnyTimes()
	f.creator = indexer.New(f.modules, f.archives, cache.NewMemory(), f.logger, telemetry.NewNoOp())
	return f
}

func indexOf(classes ...string) *domain.TypeIndex {
	b := domain.NewIndexBuilder()
	for _, name := range classes {
		b.Add(&domain.ClassInfo{Name: name})
	}
	return b.Build()
}

func dependency(name, version string) domain.Artifact {
	return domain.Artifact{
		Coordinate: domain.NewCoordinate("com.example", name, version, "", "jar"),
		Path:       "/repo/com/example/" + name + "-" + version + ".jar",
		Scope:      domain.NewInternedString("compile"),
	}
}

func testModule(artifacts ...domain.Artifact) *domain.Module {
	return &domain.Module{
		Name:      "greeting-service",
		OutputDir: "target/classes",
		Scan: domain.ScanOptions{
			Scopes:     []string{"compile", "system"},
			Types:      []string{"jar"},
			Exclusions: domain.NewExclusions(),
		},
		Artifacts: artifacts,
	}
}

func TestCreateIndex(t *testing.T) {
	f := newFixture(t)
	libA := dependency("lib-a", "1.0")
	libB := dependency("lib-b", "2.0")
	module := testModule(libA, libB)

	f.modules.EXPECT().IndexModule("target/classes").Return(indexOf("com.example.App"), nil)
	f.archives.EXPECT().IndexArchive(libA.Path).Return(indexOf("com.example.a.A"), nil)
	f.archives.EXPECT().IndexArchive(libB.Path).Return(indexOf("com.example.b.B"), nil)

	result, err := f.creator.CreateIndex(context.Background(), module)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Indexed)
	assert.Equal(t, 0, result.Skipped)
	assert.Empty(t, result.Failed)
	assert.Len(t, result.Timings, 2)
	assert.Equal(t, 3, result.Index.NumClasses())
	assert.NotNil(t, result.Index.Class("com.example.App"))
	assert.NotNil(t, result.Index.Class("com.example.b.B"))
}

func TestCreateIndex_ModuleShadowsArtifacts(t *testing.T) {
	f := newFixture(t)
	lib := dependency("lib-a", "1.0")
	module := testModule(lib)

	moduleApp := &domain.ClassInfo{Name: "com.example.App", SuperName: "module"}
	artifactApp := &domain.ClassInfo{Name: "com.example.App", SuperName: "artifact"}

	moduleIdx := domain.NewIndexBuilder()
	moduleIdx.Add(moduleApp)
	artifactIdx := domain.NewIndexBuilder()
	artifactIdx.Add(artifactApp)

	f.modules.EXPECT().IndexModule("target/classes").Return(moduleIdx.Build(), nil)
	f.archives.EXPECT().IndexArchive(lib.Path).Return(artifactIdx.Build(), nil)

	result, err := f.creator.CreateIndex(context.Background(), module)
	require.NoError(t, err)
	assert.Same(t, moduleApp, result.Index.Class("com.example.App"))
}

func TestCreateIndex_DisableDependencies(t *testing.T) {
	f := newFixture(t)
	module := testModule(dependency("lib-a", "1.0"))
	module.Scan.DisableDependencies = true

	f.modules.EXPECT().IndexModule("target/classes").Return(indexOf("com.example.App"), nil)
	// No IndexArchive expectation: dependencies must not be touched.

	result, err := f.creator.CreateIndex(context.Background(), module)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Index.NumClasses())
	assert.Equal(t, 0, result.Indexed)
	assert.Empty(t, result.Timings)
}

func TestCreateIndex_AppliesScanPolicy(t *testing.T) {
	f := newFixture(t)
	eligible := dependency("lib-a", "1.0")
	testScoped := dependency("lib-test", "1.0")
	testScoped.Scope = domain.NewInternedString("test")
	excludedGroup := domain.Artifact{
		Coordinate: domain.NewCoordinate("io.netty", "netty-common", "4.1.100.Final", "", "jar"),
		Path:       "/repo/io/netty/netty-common.jar",
		Scope:      domain.NewInternedString("compile"),
	}
	module := testModule(eligible, testScoped, excludedGroup)

	f.modules.EXPECT().IndexModule("target/classes").Return(indexOf(), nil)
	f.archives.EXPECT().IndexArchive(eligible.Path).Return(indexOf("com.example.a.A"), nil)

	result, err := f.creator.CreateIndex(context.Background(), module)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Indexed)
	assert.Equal(t, 2, result.Skipped)
	assert.Len(t, result.Timings, 1)
}

func TestCreateIndex_UnreadableArtifactDoesNotAbort(t *testing.T) {
	f := newFixture(t)
	broken := dependency("broken", "1.0")
	healthy := dependency("lib-a", "1.0")
	module := testModule(broken, healthy)

	f.modules.EXPECT().IndexModule("target/classes").Return(indexOf("com.example.App"), nil)
	f.archives.EXPECT().IndexArchive(broken.Path).Return(nil, domain.ErrArtifactUnreadable)
	f.archives.EXPECT().IndexArchive(healthy.Path).Return(indexOf("com.example.a.A"), nil)
	f.logger.EXPECT().Error(gomock.Any()).Times(1)

	result, err := f.creator.CreateIndex(context.Background(), module)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Indexed)
	require.Len(t, result.Failed, 1)
	assert.Equal(t, broken.Coordinate, result.Failed[0].Artifact.Coordinate)
	assert.ErrorIs(t, result.Failed[0].Err, domain.ErrArtifactUnreadable)
	// The composite still serves everything that was readable.
	assert.Equal(t, 2, result.Index.NumClasses())
	assert.Nil(t, result.Index.Class("com.example.broken.X"))
}

func TestCreateIndex_FailedArtifactStaysAbsent(t *testing.T) {
	f := newFixture(t)
	broken := dependency("broken", "1.0")

	f.modules.EXPECT().IndexModule("target/classes").Return(indexOf(), nil).Times(2)
	// The archive is read once; the absent result is cached afterwards.
	f.archives.EXPECT().IndexArchive(broken.Path).Return(nil, domain.ErrArtifactUnreadable).Times(1)
	f.logger.EXPECT().Error(gomock.Any()).Times(1)

	first, err := f.creator.CreateIndex(context.Background(), testModule(broken))
	require.NoError(t, err)
	require.Len(t, first.Failed, 1)

	second, err := f.creator.CreateIndex(context.Background(), testModule(broken))
	require.NoError(t, err)
	// Already-absent results are not re-reported as fresh failures.
	assert.Empty(t, second.Failed)
	assert.Equal(t, 0, second.Indexed)
}

func TestCreateIndex_CachesAcrossModules(t *testing.T) {
	f := newFixture(t)
	shared := dependency("shared", "1.0")

	f.modules.EXPECT().IndexModule("target/classes").Return(indexOf(), nil).Times(2)
	f.archives.EXPECT().IndexArchive(shared.Path).Return(indexOf("com.example.s.S"), nil).Times(1)

	for range 2 {
		result, err := f.creator.CreateIndex(context.Background(), testModule(shared))
		require.NoError(t, err)
		assert.Equal(t, 1, result.Indexed)
		assert.NotNil(t, result.Index.Class("com.example.s.S"))
	}
}

func TestCreateIndex_SnapshotKeyTracksContent(t *testing.T) {
	f := newFixture(t)
	snapshot := dependency("lib-dev", "1.0-SNAPSHOT")

	f.modules.EXPECT().IndexModule("target/classes").Return(indexOf(), nil).Times(3)
	// Same digest twice, then the archive is republished.
	gomock.InOrder(
		f.archives.EXPECT().ContentDigest(snapshot.Path).Return("digest-1", nil),
		f.archives.EXPECT().ContentDigest(snapshot.Path).Return("digest-1", nil),
		f.archives.EXPECT().ContentDigest(snapshot.Path).Return("digest-2", nil),
	)
	f.archives.EXPECT().IndexArchive(snapshot.Path).Return(indexOf("com.example.s.S"), nil).Times(2)

	for range 3 {
		_, err := f.creator.CreateIndex(context.Background(), testModule(snapshot))
		require.NoError(t, err)
	}
}

func TestCreateIndex_ReleasedVersionSkipsDigest(t *testing.T) {
	f := newFixture(t)
	released := dependency("lib-a", "1.0")

	f.modules.EXPECT().IndexModule("target/classes").Return(indexOf(), nil)
	f.archives.EXPECT().IndexArchive(released.Path).Return(indexOf(), nil)
	// No ContentDigest expectation: released coordinates are immutable.

	_, err := f.creator.CreateIndex(context.Background(), testModule(released))
	require.NoError(t, err)
}

func TestCreateIndex_SnapshotDigestFailureIsIsolated(t *testing.T) {
	f := newFixture(t)
	snapshot := dependency("lib-dev", "1.0-SNAPSHOT")

	f.modules.EXPECT().IndexModule("target/classes").Return(indexOf(), nil)
	f.archives.EXPECT().ContentDigest(snapshot.Path).Return("", errors.New("open failed"))
	f.logger.EXPECT().Error(gomock.Any()).Times(1)

	result, err := f.creator.CreateIndex(context.Background(), testModule(snapshot))
	require.NoError(t, err)
	require.Len(t, result.Failed, 1)
}

func TestCreateIndex_UnreadableModuleOutputIsFatal(t *testing.T) {
	f := newFixture(t)
	module := testModule(dependency("lib-a", "1.0"))

	f.modules.EXPECT().IndexModule("target/classes").Return(nil, domain.ErrModuleOutputUnreadable)

	_, err := f.creator.CreateIndex(context.Background(), module)
	require.ErrorIs(t, err, domain.ErrModuleOutputUnreadable)
}

func TestCreateIndex_CacheFailureIsFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	modules := mocks.NewMockModuleIndexer(ctrl)
	archives := mocks.NewMockArchiveIndexer(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	indexCache := mocks.NewMockIndexCache(ctrl)

	creator := indexer.New(modules, archives, indexCache, logger, telemetry.NewNoOp())
	lib := dependency("lib-a", "1.0")

	modules.EXPECT().IndexModule("target/classes").Return(indexOf(), nil)
	indexCache.EXPECT().GetOrCompute(lib.Coordinate.Key(), gomock.Any()).
		Return(nil, domain.ErrCacheCompute)

	_, err := creator.CreateIndex(context.Background(), testModule(lib))
	require.ErrorIs(t, err, domain.ErrCacheCompute)
}
