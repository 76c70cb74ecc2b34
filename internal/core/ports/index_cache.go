package ports

import "go.trai.ch/classdex/internal/core/domain"

// IndexCache memoizes artifact indexes by coordinate key for the lifetime of
// the process. GetOrCompute is atomic per key: concurrent callers for the
// same key trigger at most one computation.
//
// A compute function may return (nil, nil) for an artifact whose archive is
// unreadable; the nil result is cached like any other, so a failed artifact
// stays failed for the remainder of the process. Errors returned by compute
// are NOT cached and propagate to the caller.
//
//go:generate mockgen -source=index_cache.go -destination=mocks/mock_index_cache.go -package=mocks
type IndexCache interface {
	GetOrCompute(key string, compute func() (*domain.TypeIndex, error)) (*domain.TypeIndex, error)
}
