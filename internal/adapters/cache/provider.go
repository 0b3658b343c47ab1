package cache

import (
	"go.trai.ch/seek/internal/core/domain"
	"go.trai.ch/seek/internal/core/ports"
)

var _ ports.CacheProvider = (*Provider)(nil)

// Provider opens service caches at the location the settings describe.
type Provider struct {
	logger ports.Logger
}

// NewProvider creates a Provider that reports decode problems to logger.
func NewProvider(logger ports.Logger) *Provider {
	return &Provider{logger: logger}
}

// Open returns the cache for settings.
func (p *Provider) Open(settings *domain.Settings) ports.ServiceCache {
	return NewManager[domain.Service](Location(settings), JSONCodec[domain.Service]{}, p.logger)
}
