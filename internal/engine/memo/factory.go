package memo

import (
	"go.trai.ch/gqlmemo/internal/core/domain"
	"go.trai.ch/gqlmemo/internal/core/ports"
)

var _ ports.CacheFactory = (*Factory)(nil)

// Factory builds caches that share one parser.
type Factory struct {
	parser ports.Parser
}

// NewFactory creates a Factory for parser.
func NewFactory(parser ports.Parser) *Factory {
	return &Factory{parser: parser}
}

// NewCache returns an empty cache configured from cfg.
func (f *Factory) NewCache(cfg domain.CacheConfig, hasher ports.KeyHasher) ports.DocumentCache {
	return New(f.parser,
		WithCapacity(cfg.Capacity),
		WithHasher(hasher),
		WithCoalescing(cfg.Coalesce),
	)
}
