// Package query combines cached and freshly walked services and filters them
// against a search query.
package query

import (
	"strings"

	"github.com/sourcegraph/conc"
	"go.trai.ch/seek/internal/core/domain"
	"go.trai.ch/seek/internal/core/ports"
	"go.trai.ch/seek/internal/engine/matcher"
	"go.trai.ch/seek/internal/engine/resolver"
)

// Engine answers queries over the stable and volatile roots of one settings value.
// Settings must not change while the engine is in use.
type Engine struct {
	settings *domain.Settings
	walker   ports.Walker
	resolver *resolver.Resolver
	cache    ports.ServiceCache
	logger   ports.Logger
}

// New creates an Engine.
func New(settings *domain.Settings, walker ports.Walker, cache ports.ServiceCache, logger ports.Logger) *Engine {
	return &Engine{
		settings: settings,
		walker:   walker,
		resolver: resolver.New(settings.NameOverrides),
		cache:    cache,
		logger:   logger,
	}
}

// Normalize trims and lower-cases a raw query.
func Normalize(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// Search returns the services whose titles match query.
// Stable matches precede volatile matches. Traversal and cache problems are
// logged and never fail the search.
func (e *Engine) Search(query string) []domain.Service {
	q := Normalize(query)

	var stable, volatile []domain.Service
	var wg conc.WaitGroup
	wg.Go(func() { stable = e.Stable() })
	wg.Go(func() { volatile = e.Volatile() })
	wg.Wait()

	results := Filter(q, stable)
	return append(results, Filter(q, volatile)...)
}

// Stable returns every service under the stable roots.
// A non-empty cache is trusted as is. On a miss the roots are walked and the
// unfiltered result is written back.
func (e *Engine) Stable() []domain.Service {
	if len(e.settings.Cached) == 0 {
		return nil
	}

	cached, err := e.cache.Load()
	if err != nil {
		e.logger.Warn("cache read failed, walking stable roots", "path", e.cache.Location(), "error", err)
	} else if len(cached) > 0 {
		e.logger.Debug("cache hit", "path", e.cache.Location(), "services", len(cached))
		return cached
	}

	services, err := e.Rebuild()
	if err != nil {
		e.logger.Warn("cache write failed", "path", e.cache.Location(), "error", err)
	}
	return services
}

// Rebuild walks the stable roots and overwrites the cache with the result.
// The walked services are returned even when the write fails.
func (e *Engine) Rebuild() ([]domain.Service, error) {
	services := e.resolver.ResolveAll(e.walker.WalkAll(e.settings.Cached))
	e.logger.Debug("walked stable roots", "roots", len(e.settings.Cached), "services", len(services))
	return e.cache.Save(services)
}

// Volatile walks the volatile roots. The result is never cached.
func (e *Engine) Volatile() []domain.Service {
	if len(e.settings.Updated) == 0 {
		return nil
	}
	services := e.resolver.ResolveAll(e.walker.WalkAll(e.settings.Updated))
	e.logger.Debug("walked volatile roots", "roots", len(e.settings.Updated), "services", len(services))
	return services
}

// Filter returns the services whose titles match the normalized query, in order.
func Filter(query string, services []domain.Service) []domain.Service {
	matched := make([]domain.Service, 0, len(services))
	for _, s := range services {
		if matcher.Match(query, s.Title) {
			matched = append(matched, s)
		}
	}
	return matched
}
