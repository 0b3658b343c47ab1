// Package resolver turns bundle paths into display services.
package resolver

import (
	"strings"
	"unicode/utf8"

	"go.trai.ch/seek/internal/core/domain"
	"go.trai.ch/seek/internal/engine/matcher"
)

// Resolver derives display titles for bundle paths.
type Resolver struct {
	overrides map[string]string
}

// New creates a Resolver that consults overrides for preference pane stems.
func New(overrides map[string]string) *Resolver {
	return &Resolver{overrides: overrides}
}

// Title returns the display title of path.
func (r *Resolver) Title(path string) string {
	stem := domain.Stem(path)
	if domain.Extension(path) == domain.OverrideExtension {
		if name, ok := r.overrides[stem]; ok {
			return name
		}
	}
	return strings.Join(matcher.Tokenize(stem), " ")
}

// Resolve builds the service for path. Paths that are not valid UTF-8 cannot be
// emitted as JSON text and are rejected.
func (r *Resolver) Resolve(path string) (domain.Service, bool) {
	if !utf8.ValidString(path) {
		return domain.Service{}, false
	}
	return domain.NewService(r.Title(path), path), true
}

// ResolveAll resolves paths in order, dropping the ones that cannot be represented.
func (r *Resolver) ResolveAll(paths []string) []domain.Service {
	services := make([]domain.Service, 0, len(paths))
	for _, path := range paths {
		if svc, ok := r.Resolve(path); ok {
			services = append(services, svc)
		}
	}
	return services
}
