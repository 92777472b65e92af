package ports

import "go.trai.ch/gqlmemo/internal/core/domain"

// DocumentCache memoizes parsed documents by exact query text.
//
//go:generate mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type DocumentCache interface {
	// GetOrParse returns the stored document for query, parsing and storing
	// it on a miss. Parse failures are returned unchanged and never stored.
	GetOrParse(query domain.QueryText) (domain.Document, error)
	// Lookup behaves like GetOrParse and also reports whether the document
	// was served from the cache.
	Lookup(query domain.QueryText) (doc domain.Document, hit bool, err error)
	// Len returns the number of stored documents.
	Len() int
	// Stats returns a snapshot of the cache counters.
	Stats() domain.CacheStats
	// Purge drops every stored document.
	Purge()
}

// CacheFactory builds independent document caches.
type CacheFactory interface {
	// NewCache returns an empty cache using hasher for its bucket index.
	NewCache(cfg domain.CacheConfig, hasher KeyHasher) DocumentCache
}
