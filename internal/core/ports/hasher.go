package ports

import "go.trai.ch/gqlmemo/internal/core/domain"

// KeyHasher maps query text to the 64-bit bucket index of a parse cache.
//
// The hash only picks a bucket. Lookups still compare the full text, so the
// choice of hasher affects speed, never which document is returned.
//
//go:generate mockgen -destination=mocks/mock_hasher.go -package=mocks -source=hasher.go
type KeyHasher interface {
	// Name returns the strategy name used in configuration.
	Name() string
	// Sum64 hashes the query text.
	Sum64(query domain.QueryText) uint64
}

// HasherRegistry resolves key hashers by name.
type HasherRegistry interface {
	// Lookup returns the hasher registered under name.
	Lookup(name string) (KeyHasher, error)
	// Names returns the registered names in sorted order.
	Names() []string
}
