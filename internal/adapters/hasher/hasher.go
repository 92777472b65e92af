// Package hasher provides the key hashing strategies for the parse cache.
package hasher

import (
	"hash/fnv"
	"hash/maphash"
	"io"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/gqlmemo/internal/core/domain"
	"go.trai.ch/gqlmemo/internal/core/ports"
	"go.trai.ch/zerr"
)

// Strategy names.
const (
	XXHashName  = "xxhash"
	FNV1aName   = "fnv1a"
	MapHashName = "maphash"
)

var (
	_ ports.KeyHasher      = XXHash{}
	_ ports.KeyHasher      = FNV1a{}
	_ ports.KeyHasher      = (*MapHash)(nil)
	_ ports.HasherRegistry = (*Registry)(nil)
)

// XXHash hashes keys with XXH64. It is the default strategy.
type XXHash struct{}

// Name returns the strategy name.
func (XXHash) Name() string { return XXHashName }

// Sum64 hashes the query text.
func (XXHash) Sum64(query domain.QueryText) uint64 {
	return xxhash.Sum64String(string(query))
}

// FNV1a hashes keys with 64-bit FNV-1a.
type FNV1a struct{}

// Name returns the strategy name.
func (FNV1a) Name() string { return FNV1aName }

// Sum64 hashes the query text.
func (FNV1a) Sum64(query domain.QueryText) uint64 {
	h := fnv.New64a()
	_, _ = io.WriteString(h, string(query))
	return h.Sum64()
}

// MapHash hashes keys with the runtime's hash function under a random
// per-instance seed. Values are only comparable within one MapHash.
type MapHash struct {
	seed maphash.Seed
}

// NewMapHash creates a MapHash with a fresh random seed.
func NewMapHash() *MapHash {
	return &MapHash{seed: maphash.MakeSeed()}
}

// Name returns the strategy name.
func (*MapHash) Name() string { return MapHashName }

// Sum64 hashes the query text.
func (m *MapHash) Sum64(query domain.QueryText) uint64 {
	return maphash.String(m.seed, string(query))
}

// Registry resolves key hashers by name.
type Registry struct {
	hashers map[string]ports.KeyHasher
}

// NewRegistry creates a Registry holding the built-in strategies.
func NewRegistry() *Registry {
	r := &Registry{hashers: make(map[string]ports.KeyHasher)}
	r.Register(XXHash{})
	r.Register(FNV1a{})
	r.Register(NewMapHash())
	return r
}

// Register adds h under its own name, replacing any previous entry.
func (r *Registry) Register(h ports.KeyHasher) {
	r.hashers[h.Name()] = h
}

// Lookup returns the hasher registered under name. An empty name selects
// the default strategy.
func (r *Registry) Lookup(name string) (ports.KeyHasher, error) {
	if name == "" {
		name = domain.DefaultHasher
	}
	h, ok := r.hashers[strings.ToLower(name)]
	if !ok {
		return nil, zerr.With(
			zerr.With(domain.ErrUnknownHasher, "hasher", name),
			"available", strings.Join(r.Names(), ", "),
		)
	}
	return h, nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.hashers))
	for name := range r.hashers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
