// Package indexer orchestrates the construction of a composite class index
// for a build module and its dependency artifacts.
package indexer

import (
	"context"
	"errors"
	"time"

	"go.trai.ch/classdex/internal/core/domain"
	"go.trai.ch/classdex/internal/core/ports"
	"go.trai.ch/zerr"
)

// Creator builds composite class indexes. Module output is re-indexed on
// every call while artifact indexes are served from the shared cache.
type Creator struct {
	modules   ports.ModuleIndexer
	archives  ports.ArchiveIndexer
	cache     ports.IndexCache
	logger    ports.Logger
	telemetry ports.Telemetry
}

// New creates a Creator.
func New(
	modules ports.ModuleIndexer,
	archives ports.ArchiveIndexer,
	cache ports.IndexCache,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *Creator {
	return &Creator{
		modules:   modules,
		archives:  archives,
		cache:     cache,
		logger:    logger,
		telemetry: telemetry,
	}
}

// Result is the outcome of one CreateIndex call.
type Result struct {
	// Index is the composite view over the module and all readable artifacts.
	Index domain.IndexView
	// Indexed counts artifacts whose index was produced, fresh or cached.
	Indexed int
	// Skipped counts artifacts rejected by the scan policy.
	Skipped int
	// Failed lists artifacts whose archives could not be read this call.
	// Artifacts that failed in an earlier call stay absent but are not
	// re-reported here.
	Failed []FailedArtifact
	// Timings holds the per-artifact indexing durations.
	Timings []domain.IndexTiming
}

// FailedArtifact records an artifact whose archive could not be indexed.
type FailedArtifact struct {
	Artifact domain.Artifact
	Err      error
}

type artifactOutcome struct {
	artifact domain.Artifact
	index    *domain.TypeIndex
	err      error
}

// CreateIndex indexes the module's compiled output and, unless dependency
// scanning is disabled, every dependency artifact that passes the scan
// policy. An unreadable archive never aborts the run: the artifact is
// recorded as failed and the composite simply lacks its classes. Unreadable
// module output and cache failures are fatal.
func (c *Creator) CreateIndex(ctx context.Context, module *domain.Module) (*Result, error) {
	ctx, vertex := c.telemetry.Record(ctx, "index "+module.Name)

	result, err := c.createIndex(ctx, module)
	vertex.Complete(err)
	if err != nil {
		return nil, err
	}

	c.reportFailures(result.Failed)
	c.reportDurations(result.Timings)
	return result, nil
}

func (c *Creator) createIndex(ctx context.Context, module *domain.Module) (*Result, error) {
	moduleIndex, err := c.modules.IndexModule(module.OutputDir)
	if err != nil {
		return nil, err
	}

	if module.Scan.DisableDependencies {
		c.logger.Debug("dependency scanning disabled, indexing module output only")
		return &Result{Index: domain.NewCompositeIndex(moduleIndex)}, nil
	}

	scopes := module.Scan.Scopes
	types := module.Scan.Types

	result := &Result{}
	var outcomes []artifactOutcome
	for _, artifact := range module.Artifacts {
		if module.Scan.Exclusions.IsExcluded(artifact, scopes, types) {
			result.Skipped++
			continue
		}
		outcome, timing := c.indexArtifact(ctx, artifact)
		if outcome.err != nil && errors.Is(outcome.err, domain.ErrCacheCompute) {
			return nil, outcome.err
		}
		outcomes = append(outcomes, outcome)
		result.Timings = append(result.Timings, timing)
	}

	indexes := make([]domain.IndexView, 0, len(outcomes))
	for _, outcome := range outcomes {
		if outcome.err != nil {
			result.Failed = append(result.Failed, FailedArtifact{Artifact: outcome.artifact, Err: outcome.err})
			continue
		}
		if outcome.index == nil {
			// Cached absent result from an earlier failed attempt.
			continue
		}
		result.Indexed++
		indexes = append(indexes, outcome.index)
	}

	result.Index = domain.NewCompositeIndex(moduleIndex, indexes...)
	return result, nil
}

// indexArtifact resolves one artifact's index through the cache. The second
// error class matters here: an unreadable archive is reported through the
// outcome and swallowed by the caller, while a cache failure aborts the run.
func (c *Creator) indexArtifact(ctx context.Context, artifact domain.Artifact) (artifactOutcome, domain.IndexTiming) {
	_, vertex := c.telemetry.Record(ctx, artifact.Coordinate.Key())
	start := time.Now()

	outcome := artifactOutcome{artifact: artifact}

	key, err := c.cacheKey(artifact)
	if err != nil {
		outcome.err = err
		vertex.Complete(err)
		return outcome, domain.IndexTiming{Artifact: artifact, Elapsed: time.Since(start)}
	}

	computed := false
	index, err := c.cache.GetOrCompute(key, func() (*domain.TypeIndex, error) {
		computed = true
		index, err := c.archives.IndexArchive(artifact.Path)
		if err != nil {
			outcome.err = err
			// Cache the absent result so the archive is not re-read on
			// every module of a multi-module build.
			return nil, nil
		}
		return index, nil
	})
	outcome.index = index
	if err != nil {
		outcome.err = zerr.With(err, "artifact", artifact.Coordinate.Key())
	}

	switch {
	case outcome.err != nil:
		vertex.Complete(outcome.err)
	case !computed:
		vertex.Cached()
		vertex.Complete(nil)
	default:
		vertex.Complete(nil)
	}

	return outcome, domain.IndexTiming{Artifact: artifact, Elapsed: time.Since(start)}
}

// cacheKey derives the cache key for an artifact. Released versions are
// immutable so the coordinate alone identifies the content. Snapshot
// archives can be republished under the same coordinate, so their key
// carries a digest of the archive bytes.
func (c *Creator) cacheKey(artifact domain.Artifact) (string, error) {
	key := artifact.Coordinate.Key()
	if !artifact.Coordinate.IsSnapshot() {
		return key, nil
	}
	d, err := c.archives.ContentDigest(artifact.Path)
	if err != nil {
		return "", err
	}
	return key + "@" + d, nil
}

func (c *Creator) reportFailures(failed []FailedArtifact) {
	for _, f := range failed {
		c.logger.Error(zerr.Wrap(f.Err, "can't compute index of "+f.Artifact.Path+", skipping"))
	}
}
