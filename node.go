package hxstyle

import (
	"fmt"

	"github.com/pthm/hxstyle/lib/stylekey"
)

// CSS is a plain style object: property names mapped to values. Values are
// typically strings ("12px", "#333"); a nested CSS value declares a nested
// block keyed by selector, with "&" standing for the generated class:
//
//	hxstyle.CSS{
//	    "padding": "12px",
//	    "&:hover": hxstyle.CSS{"background": "#eee"},
//	}
//
// hxstyle does not validate property names or values - it composes objects
// and hands the result to a Materializer.
type CSS map[string]any

// noneKey is the key of the absent style. The character is outside the
// alphabets of hashed and serialized keys, so it can never collide with a
// real fragment's key.
const noneKey = "*"

type kind uint8

const (
	kindStatic kind = iota
	kindDynamic
	kindFunc
	kindMerge
)

// Style is one immutable node in the style algebra: a static fragment, a
// per-render object, a parametric fragment bound to props, or a merge of
// two nodes. The absent style is a nil *Style.
//
// Every node carries a composition key identifying its semantic content.
// Keys drive both merge canonicalization and cache lookups: two nodes with
// equal keys are treated as the same style everywhere in this package.
//
// Nodes are never mutated after construction and are safe to share across
// sessions and goroutines.
type Style struct {
	kind        kind
	key         string
	obj         CSS        // static, dynamic
	fn          func() CSS // func, with props already bound
	token       string     // func: factory base token
	left, right *Style
}

// Key returns the node's composition key. The nil (absent) style has a
// fixed sentinel key distinct from every real key.
func (s *Style) Key() string {
	if s == nil {
		return noneKey
	}
	return s.key
}

// None returns the absent style. Merging it with any node returns that
// node unchanged.
func None() *Style { return nil }

// Static builds a fragment from a style object known up front.
//
// The key is a content hash of the object, so two Static calls with
// structurally equal objects share cache entries. Hashing costs a
// serialization per call - declare Static fragments once at package scope,
// not per render (use Dynamic for per-render objects).
//
// Panics with an error wrapping ErrUnserializable if obj contains values
// that have no canonical textual form (functions, channels, cyclic data).
func Static(obj CSS) *Style {
	h, err := stylekey.Hash(obj)
	if err != nil {
		panic(fmt.Errorf("%w: static style: %v", ErrUnserializable, err))
	}
	return &Style{kind: kindStatic, key: h, obj: obj}
}

// Dynamic builds a fragment from a style object computed at call time.
//
// The raw serialization of the object is used directly as the key - no
// hashing - trading key size for call-site cost. Intended for small
// objects constructed during a render.
//
// Panics with an error wrapping ErrUnserializable on unserializable values.
func Dynamic(obj CSS) *Style {
	raw, err := stylekey.Serialize(obj)
	if err != nil {
		panic(fmt.Errorf("%w: dynamic style: %v", ErrUnserializable, err))
	}
	return &Style{kind: kindDynamic, key: raw, obj: obj}
}

// Func wraps a style-computing function into a fragment factory.
//
// The factory generates one random base token when Func is called; each
// invocation of the returned applier binds a props value and yields a node
// keyed by token + "(" + serialized props + ")". Distinct props values get
// distinct, cacheable keys while sharing the factory's setup cost:
//
//	accent := hxstyle.Func(func(color string) hxstyle.CSS {
//	    return hxstyle.CSS{"border-color": color}
//	})
//	node := accent("#8b5cf6")
//
// fn must be referentially pure: equal props must always yield the same
// style object. The cache treats equal keys as equal artifacts and never
// re-invokes fn for a key it has already materialized, so an impure fn
// silently produces stale results. This precondition is not checked.
//
// Keys embed a per-process random token and are not stable across process
// restarts; do not persist them.
//
// The returned applier panics with an error wrapping ErrUnserializable if
// props cannot be serialized.
func Func[P any](fn func(P) CSS) func(P) *Style {
	token := stylekey.Token()
	return func(props P) *Style {
		ser, err := stylekey.Serialize(props)
		if err != nil {
			panic(fmt.Errorf("%w: style props: %v", ErrUnserializable, err))
		}
		return &Style{
			kind:  kindFunc,
			key:   token + "(" + ser + ")",
			token: token,
			fn:    func() CSS { return fn(props) },
		}
	}
}

// describe renders the node for debug traces. Function payloads appear as
// an opaque placeholder, never serialized.
func (s *Style) describe() string {
	if s == nil {
		return "none"
	}
	switch s.kind {
	case kindStatic:
		return fmt.Sprintf("static%v", s.obj)
	case kindDynamic:
		return fmt.Sprintf("dynamic%v", s.obj)
	case kindFunc:
		return s.token + "(fn)"
	case kindMerge:
		return s.left.describe() + " + " + s.right.describe()
	}
	return "unknown"
}
