// Package app implements the application layer for gqlmemo.
package app

import (
	"context"

	"go.trai.ch/gqlmemo/internal/core/domain"
	"go.trai.ch/gqlmemo/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	parser       ports.Parser
	caches       ports.CacheFactory
	hashers      ports.HasherRegistry
	logger       ports.Logger
	tracer       ports.Tracer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	parser ports.Parser,
	caches ports.CacheFactory,
	hashers ports.HasherRegistry,
	log ports.Logger,
	tracer ports.Tracer,
) *App {
	return &App{
		configLoader: loader,
		parser:       parser,
		caches:       caches,
		hashers:      hashers,
		logger:       log,
		tracer:       tracer,
	}
}

// configurableLogger is implemented by loggers whose level and format follow
// the loaded configuration.
type configurableLogger interface {
	Configure(cfg domain.LogConfig) error
}

// Open loads the configuration in dir and returns a session with an empty
// cache built from it.
func (a *App) Open(dir string) (*Session, error) {
	cfg, err := a.configLoader.Load(dir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	if l, ok := a.logger.(configurableLogger); ok {
		if err := l.Configure(cfg.Log); err != nil {
			return nil, err
		}
	}

	return a.newSession(cfg)
}

func (a *App) newSession(cfg *domain.Config) (*Session, error) {
	hasher, err := a.hashers.Lookup(cfg.Cache.Hasher)
	if err != nil {
		return nil, err
	}

	a.logger.Debug("opened session",
		"hasher", hasher.Name(),
		"capacity", cfg.Cache.Capacity,
		"coalesce", cfg.Cache.Coalesce,
	)

	return &Session{
		config: cfg,
		hasher: hasher,
		cache:  a.caches.NewCache(cfg.Cache, hasher),
		logger: a.logger,
		tracer: a.tracer,
	}, nil
}

// Session owns one document cache and the configuration it was built from.
// A Session is safe for concurrent use.
type Session struct {
	config *domain.Config
	hasher ports.KeyHasher
	cache  ports.DocumentCache
	logger ports.Logger
	tracer ports.Tracer
}

// Config returns the configuration the session was opened with.
func (s *Session) Config() *domain.Config {
	return s.config
}

// Hasher returns the key hasher of the session's cache.
func (s *Session) Hasher() ports.KeyHasher {
	return s.hasher
}

// Stats returns the counters of the session's cache.
func (s *Session) Stats() domain.CacheStats {
	return s.cache.Stats()
}

// GetOrParse returns the document for query from the session's cache,
// parsing it on a miss.
func (s *Session) GetOrParse(ctx context.Context, query domain.QueryText) (domain.Document, error) {
	_, span := s.tracer.Start(ctx, "gqlmemo.get_or_parse",
		ports.WithAttribute("query.bytes", query.Len()),
	)
	defer span.End()

	doc, hit, err := s.cache.Lookup(query)
	entries := s.cache.Len()

	span.SetAttribute("cache.hit", hit)
	span.SetAttribute("cache.entries", entries)
	s.logger.Debug("cache lookup", "bytes", query.Len(), "hit", hit, "entries", entries)

	if err != nil {
		span.RecordError(err)
		return domain.Document{}, err
	}
	return doc, nil
}
