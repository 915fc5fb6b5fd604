// Package hxstyle provides composable, cached styling for server-rendered
// Go applications. Components declare style fragments independently; at
// render time the fragments are merged into a single deduplicated class,
// and repeated renders of the same logical composition never recompute or
// re-register the underlying CSS.
//
// hxstyle is a sibling to hxcmp: where hxcmp gives components their
// lifecycle and routing, hxstyle gives them their look.
//
// # Style Nodes
//
// A *Style is an immutable value in a small style algebra. Fragments are
// built with the composer functions and combined with Merge:
//
//	var card = hxstyle.Static(hxstyle.CSS{
//	    "padding":       "12px",
//	    "border-radius": "6px",
//	})
//
//	var accent = hxstyle.Func(func(color string) hxstyle.CSS {
//	    return hxstyle.CSS{"border-color": color}
//	})
//
//	node := hxstyle.Merge(card, accent("#8b5cf6"))
//
// Static hashes its object once so structurally equal declarations share
// cache entries; Dynamic skips the hash for cheap per-render objects; Func
// binds props to a pure style function, keying each distinct props value
// separately. The absent style is a nil *Style (hxstyle.None()).
//
// # Composition Keys
//
// Every node carries a composition key identifying its semantic content.
// Merge is associative over keys - a merge node's key is its children's
// keys joined by a single space, so nested merges flatten into the same
// token sequence regardless of grouping - and the absent style is the
// identity. Merging two equal-keyed nodes returns the left node unchanged.
// These properties make the key a cheap, incremental cache handle for a
// whole composition tree.
//
// # Sessions and Caching
//
// A Session ties a composition cache to a Materializer (CSS object in,
// class name out) for the lifetime of one styling scope:
//
//	sheet := hxstyle.NewSheet()
//	sess := hxstyle.NewSession(sheet.Materialize)
//
//	class := sess.Class(card, accent(user.Color))
//
// Class merges its arguments, consults the cache by the merged key, and
// only on a miss resolves the node (deep-merging right over left) and
// materializes it. The materializer runs at most once per distinct key per
// session. Session and Cache are single-goroutine by contract - one
// session per rendering pass; the Sheet is shared and locked.
//
// Cache behavior is observable through Stats (calls, hits, misses,
// bailouts, entries), and Session.Debug enables a structured zerolog trace
// per miss.
//
// # Design Rationale
//
// The system favors explicitness over magic:
//   - Explicit sessions (no ambient or global cache)
//   - Explicit materializer injection (Sheet is a default, not a
//     requirement)
//   - Explicit purity contract on Func fragments, traded for at-most-once
//     materialization
//
// hxstyle does not decide CSS semantics: property names and values pass
// through unvalidated, and the deep-merge override policy (right wins on
// conflicts, recursively) is the only structure it imposes.
package hxstyle
