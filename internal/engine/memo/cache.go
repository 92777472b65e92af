// Package memo implements the memoizing parse cache.
//
// A Cache maps exact query text to the document the parser produced for it.
// Lookups hash the text to pick a bucket and then compare the full text, so
// the configured hasher decides speed only. Parse failures are handed back
// to the caller and never stored.
package memo

import (
	"container/list"
	"sync"
	"sync/atomic"

	"go.trai.ch/gqlmemo/internal/core/domain"
	"go.trai.ch/gqlmemo/internal/core/ports"
	"golang.org/x/sync/singleflight"
)

var _ ports.DocumentCache = (*Cache)(nil)

type entry struct {
	hash uint64
	text domain.QueryText
	doc  domain.Document
	// elem is the entry's place in the recency list, nil when unbounded.
	elem *list.Element
}

// Cache memoizes parsed documents by exact query text.
type Cache struct {
	parser   ports.Parser
	hasher   ports.KeyHasher
	capacity int
	coalesce bool
	flights  singleflight.Group

	mu      sync.RWMutex
	buckets map[uint64][]*entry
	// order holds entries most recently used first. It is nil when the
	// cache is unbounded.
	order *list.List
	size  int

	hits        atomic.Uint64
	misses      atomic.Uint64
	evictions   atomic.Uint64
	parseErrors atomic.Uint64
}

// New creates an empty cache that calls parser on every miss.
func New(parser ports.Parser, opts ...Option) *Cache {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &Cache{
		parser:   parser,
		hasher:   o.hasher,
		capacity: o.capacity,
		coalesce: o.coalesce,
		buckets:  make(map[uint64][]*entry),
	}
	if c.capacity > 0 {
		c.order = list.New()
	}
	return c
}

// GetOrParse returns the stored document for query, or parses it, stores the
// result and returns it. A parse error is returned unchanged and the cache
// is left exactly as it was.
func (c *Cache) GetOrParse(query domain.QueryText) (domain.Document, error) {
	doc, _, err := c.Lookup(query)
	return doc, err
}

// Lookup is GetOrParse that also reports whether the document was served
// from the cache.
func (c *Cache) Lookup(query domain.QueryText) (domain.Document, bool, error) {
	h := c.hasher.Sum64(query)
	if doc, ok := c.lookup(h, query); ok {
		c.hits.Add(1)
		return doc, true, nil
	}
	c.misses.Add(1)

	var (
		doc domain.Document
		err error
	)
	if c.coalesce {
		doc, err = c.parseShared(h, query)
	} else {
		doc, err = c.parseAndStore(h, query)
	}
	return doc, false, err
}

// Contains reports whether query is stored. It counts as neither hit nor
// miss and does not change recency.
func (c *Cache) Contains(query domain.QueryText) bool {
	h := c.hasher.Sum64(query)

	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.find(h, query) != nil
}

// Len returns the number of stored documents.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.size
}

// Capacity returns the entry bound, or zero when unbounded.
func (c *Cache) Capacity() int {
	return c.capacity
}

// Hasher returns the key hasher in use.
func (c *Cache) Hasher() ports.KeyHasher {
	return c.hasher
}

// Stats returns a snapshot of the cache counters.
func (c *Cache) Stats() domain.CacheStats {
	return domain.CacheStats{
		Hits:        c.hits.Load(),
		Misses:      c.misses.Load(),
		Evictions:   c.evictions.Load(),
		ParseErrors: c.parseErrors.Load(),
		Entries:     c.Len(),
	}
}

// Purge drops every stored document. Counters are kept.
func (c *Cache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.buckets = make(map[uint64][]*entry)
	if c.order != nil {
		c.order.Init()
	}
	c.size = 0
}

func (c *Cache) lookup(h uint64, query domain.QueryText) (domain.Document, bool) {
	if c.order == nil {
		c.mu.RLock()
		defer c.mu.RUnlock()
		if e := c.find(h, query); e != nil {
			return e.doc, true
		}
		return domain.Document{}, false
	}

	// Hits reorder the recency list.
	c.mu.Lock()
	defer c.mu.Unlock()
	e := c.find(h, query)
	if e == nil {
		return domain.Document{}, false
	}
	c.order.MoveToFront(e.elem)
	return e.doc, true
}

func (c *Cache) parseShared(h uint64, query domain.QueryText) (domain.Document, error) {
	v, err, _ := c.flights.Do(string(query), func() (any, error) {
		// A flight that finished just before this one began may have stored it.
		if doc, ok := c.peek(h, query); ok {
			return doc, nil
		}
		return c.parseAndStore(h, query)
	})
	if err != nil {
		return domain.Document{}, err
	}
	return v.(domain.Document), nil //nolint:forcetypeassert // only Documents are returned above
}

func (c *Cache) parseAndStore(h uint64, query domain.QueryText) (domain.Document, error) {
	doc, err := c.parser.Parse(query)
	if err != nil {
		c.parseErrors.Add(1)
		return domain.Document{}, err
	}
	return c.insert(h, query, doc), nil
}

func (c *Cache) peek(h uint64, query domain.QueryText) (domain.Document, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if e := c.find(h, query); e != nil {
		return e.doc, true
	}
	return domain.Document{}, false
}

// insert stores doc under query unless another caller stored it first, and
// returns whichever document ends up in the cache.
func (c *Cache) insert(h uint64, query domain.QueryText, doc domain.Document) domain.Document {
	e := &entry{hash: h, text: query, doc: doc}

	c.mu.Lock()
	defer c.mu.Unlock()

	if existing := c.find(h, query); existing != nil {
		if c.order != nil {
			c.order.MoveToFront(existing.elem)
		}
		return existing.doc
	}

	c.buckets[h] = append(c.buckets[h], e)
	c.size++

	if c.order != nil {
		e.elem = c.order.PushFront(e)
		for c.size > c.capacity {
			c.evictOldest()
		}
	}
	return doc
}

// find scans the bucket for h. Callers must hold c.mu.
func (c *Cache) find(h uint64, query domain.QueryText) *entry {
	for _, e := range c.buckets[h] {
		if e.text == query {
			return e
		}
	}
	return nil
}

// evictOldest drops the least recently used entry. Callers must hold c.mu
// for writing.
func (c *Cache) evictOldest() {
	back := c.order.Back()
	if back == nil {
		return
	}
	e := back.Value.(*entry) //nolint:forcetypeassert // the list only holds entries
	c.order.Remove(back)
	c.removeFromBucket(e)
	c.size--
	c.evictions.Add(1)
}

func (c *Cache) removeFromBucket(e *entry) {
	bucket := c.buckets[e.hash]
	for i, candidate := range bucket {
		if candidate != e {
			continue
		}
		bucket[i] = bucket[len(bucket)-1]
		bucket[len(bucket)-1] = nil
		bucket = bucket[:len(bucket)-1]
		break
	}
	if len(bucket) == 0 {
		delete(c.buckets, e.hash)
		return
	}
	c.buckets[e.hash] = bucket
}
