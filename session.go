package hxstyle

import "github.com/rs/zerolog"

// Materializer turns a resolved style object into its consumer-facing
// class name.
//
// A Materializer must be deterministic - equal objects yield equal class
// names - and is assumed total over well-formed style objects. It is
// expected to be expensive enough to be worth caching: a Session invokes
// it at most once per distinct composition key.
type Materializer func(CSS) string

// Session is the entry point a rendering layer calls per render target.
//
// A Session owns one Cache and one Materializer for the lifetime of a
// styling scope (typically one top-level mount or one request). It is
// passed down explicitly to consumers - there is no ambient or global
// session state.
//
// Like its Cache, a Session is not safe for concurrent use.
type Session struct {
	cache       *Cache
	materialize Materializer
	debug       bool
	log         zerolog.Logger
}

// NewSession creates a session with a fresh cache.
//
//	sheet := hxstyle.NewSheet()
//	sess := hxstyle.NewSession(sheet.Materialize)
func NewSession(m Materializer) *Session {
	return &Session{
		cache:       NewCache(),
		materialize: m,
		log:         zerolog.Nop(),
	}
}

// Debug enables a structured trace event on l for every cache miss. The
// event carries the merged key, both input nodes (function payloads
// rendered as an opaque placeholder), and the resolved object. Traces are
// for developer inspection only - nothing reads them programmatically.
func (s *Session) Debug(l zerolog.Logger) *Session {
	s.debug = true
	s.log = l
	return s
}

// WithCache replaces the session's cache. Use it to share one cache across
// several sessions within the same styling scope; the caller then owns
// serializing access to it.
func (s *Session) WithCache(c *Cache) *Session {
	s.cache = c
	return s
}

// Class merges root and override and returns the class name for the
// result. Either argument may be the absent style.
//
// If the merge is absent, Class records a bailout and returns "" without
// touching the cache's call counters. Otherwise it looks the merged key up
// in the cache, and on a miss resolves the node, materializes it, stores
// the class, and returns it. Lookup, resolve, and store run back to back
// with no yielding, so the materializer runs at most once per distinct key
// per session.
func (s *Session) Class(root, override *Style) string {
	merged := Merge(root, override)
	if merged == nil {
		s.cache.Bailout()
		return ""
	}

	key := merged.Key()
	if class, ok := s.cache.Lookup(key); ok {
		return class
	}

	resolved := Resolve(merged)
	if s.debug {
		s.log.Debug().
			Str("key", key).
			Str("root", root.describe()).
			Str("override", override.describe()).
			Interface("resolved", resolved).
			Msg("style cache miss")
	}

	class := s.materialize(resolved)
	s.cache.Store(key, class)
	return class
}

// Stats returns the session cache's counters.
func (s *Session) Stats() Stats {
	return s.cache.Stats()
}

// Cache returns the session's cache.
func (s *Session) Cache() *Cache {
	return s.cache
}
