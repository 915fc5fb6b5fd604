package hxstyle

// Stats is a point-in-time snapshot of cache activity.
//
// Calls == Hits + Misses after any sequence of lookups. Bailouts counts
// compositions reported by callers as cheap enough to skip the cache
// entirely (the no-style fast path); the cache never increments it itself.
type Stats struct {
	Entries  int
	Calls    int
	Hits     int
	Misses   int
	Bailouts int
}

// Cache memoizes materialized class names by composition key.
//
// A Cache is scoped to one styling session: created when the session
// starts, shared by every consumer in it, discarded when it ends. Entries
// are never evicted or updated once set - a materialized class is a pure
// function of its key.
//
// Cache is NOT safe for concurrent use. A session is expected to run on a
// single logical goroutine (one rendering pass); callers that share a
// cache across goroutines must serialize access themselves, keeping each
// lookup-resolve-store span atomic to preserve at-most-once
// materialization.
type Cache struct {
	classes  map[string]string
	calls    int
	hits     int
	misses   int
	bailouts int
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{classes: make(map[string]string)}
}

// Lookup returns the class stored for key. Every call increments Calls and
// exactly one of Hits or Misses.
//
// The no-style sentinel key must be short-circuited by the caller before
// reaching the cache; Lookup does not special-case it.
func (c *Cache) Lookup(key string) (string, bool) {
	c.calls++
	class, ok := c.classes[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return class, ok
}

// Store inserts the class for key, overwriting any existing entry.
// Counters are unaffected. Re-storing a present key is harmless since
// classes are pure functions of their key, but correct callers rarely do
// it.
func (c *Cache) Store(key, class string) {
	c.classes[key] = class
}

// Bailout records one composition that skipped the cache entirely.
func (c *Cache) Bailout() {
	c.bailouts++
}

// Stats returns a read-only snapshot of the cache's counters and size.
func (c *Cache) Stats() Stats {
	return Stats{
		Entries:  len(c.classes),
		Calls:    c.calls,
		Hits:     c.hits,
		Misses:   c.misses,
		Bailouts: c.bailouts,
	}
}
