package ports

import "go.trai.ch/seek/internal/core/domain"

// ServiceCache persists the unfiltered walk output of the stable roots.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ServiceCache interface {
	// Load returns the cached services in the order they were saved.
	// An empty result without error is a cache miss.
	Load() ([]domain.Service, error)

	// Save replaces the cached content with services and returns services unchanged,
	// even when the write fails.
	Save(services []domain.Service) ([]domain.Service, error)

	// Clear empties the cache so that the next read misses.
	Clear() error

	// Location returns the backing file, or "" when caching is disabled.
	Location() string

	// Close releases the backing file.
	Close() error
}

// CacheProvider opens the service cache for resolved settings.
type CacheProvider interface {
	// Open returns the cache for settings. A settings value without a cache
	// location yields a cache that never stores anything.
	Open(settings *domain.Settings) ServiceCache
}
