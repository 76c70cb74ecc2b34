package app_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/classdex/internal/adapters/cache"
	"go.trai.ch/classdex/internal/adapters/telemetry"
	"go.trai.ch/classdex/internal/app"
	"go.trai.ch/classdex/internal/core/domain"
	"go.trai.ch/classdex/internal/core/ports/mocks"
	"go.trai.ch/classdex/internal/engine/indexer"
	"go.uber.org/mock/gomock"
)

type appFixture struct {
	loader   *mocks.MockDescriptorLoader
	modules  *mocks.MockModuleIndexer
	archives *mocks.MockArchiveIndexer
	logger   *mocks.MockLogger
	app      *app.App
}

func newAppFixture(t *testing.T) *appFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &appFixture{
		loader:   mocks.NewMockDescriptorLoader(ctrl),
		modules:  mocks.NewMockModuleIndexer(ctrl),
		archives: mocks.NewMockArchiveIndexer(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
	}
	f.logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	f.logger.EXPECT().DebugEnabled().Return(false).AnyTimes()

	creator := indexer.New(f.modules, f.archives, cache.NewMemory(), f.logger, telemetry.NewNoOp())
	f.app = app.New(f.loader, creator, f.logger)
	return f
}

func emptyIndex() *domain.TypeIndex {
	return domain.NewIndexBuilder().Build()
}

func loadedModule(artifacts ...domain.Artifact) *domain.Module {
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

func TestApp_Run(t *testing.T) {
	f := newAppFixture(t)

	f.loader.EXPECT().Load("classdex.yaml").Return(loadedModule(), nil)
	f.modules.EXPECT().IndexModule("target/classes").Return(emptyIndex(), nil)
	f.logger.EXPECT().Info(gomock.Any()).Times(1)

	err := f.app.Run(context.Background(), "classdex.yaml", app.RunOptions{})
	require.NoError(t, err)
}

func TestApp_Run_LoaderError(t *testing.T) {
	f := newAppFixture(t)

	f.loader.EXPECT().Load("missing.yaml").Return(nil, domain.ErrDescriptorReadFailed)

	err := f.app.Run(context.Background(), "missing.yaml", app.RunOptions{})
	require.ErrorIs(t, err, domain.ErrDescriptorReadFailed)
}

func TestApp_Run_DisableDependenciesOverride(t *testing.T) {
	f := newAppFixture(t)
	lib := domain.Artifact{
		Coordinate: domain.NewCoordinate("com.example", "lib", "1.0", "", "jar"),
		Path:       "/repo/lib.jar",
		Scope:      domain.NewInternedString("compile"),
	}

	f.loader.EXPECT().Load("classdex.yaml").Return(loadedModule(lib), nil)
	f.modules.EXPECT().IndexModule("target/classes").Return(emptyIndex(), nil)
	// No IndexArchive expectation: the flag must win over the descriptor.
	f.logger.EXPECT().Info(gomock.Any()).Times(1)

	err := f.app.Run(context.Background(), "classdex.yaml", app.RunOptions{DisableDependencies: true})
	require.NoError(t, err)
}

func TestApp_Run_IndexingError(t *testing.T) {
	f := newAppFixture(t)

	f.loader.EXPECT().Load("classdex.yaml").Return(loadedModule(), nil)
	f.modules.EXPECT().IndexModule("target/classes").Return(nil, domain.ErrModuleOutputUnreadable)

	err := f.app.Run(context.Background(), "classdex.yaml", app.RunOptions{})
	require.ErrorIs(t, err, domain.ErrModuleOutputUnreadable)
}
