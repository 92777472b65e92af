package domain

// CacheStats is a point-in-time snapshot of a parse cache's counters.
type CacheStats struct {
	// Hits counts lookups served from the cache.
	Hits uint64
	// Misses counts lookups that had to call the parser.
	Misses uint64
	// Evictions counts entries dropped to honour a capacity bound.
	Evictions uint64
	// ParseErrors counts misses whose parse failed. They are a subset of Misses.
	ParseErrors uint64
	// Entries is the number of documents currently stored.
	Entries int
}

// Lookups returns the total number of lookups.
func (s CacheStats) Lookups() uint64 {
	return s.Hits + s.Misses
}

// HitRatio returns Hits / Lookups, or 0 before the first lookup.
func (s CacheStats) HitRatio() float64 {
	total := s.Lookups()
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}
