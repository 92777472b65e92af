package memo

import (
	"go.trai.ch/gqlmemo/internal/adapters/hasher" //nolint:depguard // Default key hasher
	"go.trai.ch/gqlmemo/internal/core/ports"
)

type options struct {
	capacity int
	hasher   ports.KeyHasher
	coalesce bool
}

func defaultOptions() options {
	return options{hasher: hasher.XXHash{}}
}

// Option configures a Cache.
type Option func(*options)

// WithCapacity bounds the cache to n entries, evicting the least recently
// used entry when full. n <= 0 leaves the cache unbounded.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n < 0 {
			n = 0
		}
		o.capacity = n
	}
}

// WithHasher sets the key hasher. A nil hasher keeps the default.
func WithHasher(h ports.KeyHasher) Option {
	return func(o *options) {
		if h != nil {
			o.hasher = h
		}
	}
}

// WithCoalescing makes concurrent misses on the same query wait for a single
// parse instead of each parsing on their own.
func WithCoalescing(enabled bool) Option {
	return func(o *options) {
		o.coalesce = enabled
	}
}
