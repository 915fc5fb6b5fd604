package hxstyle

import (
	"fmt"

	"dario.cat/mergo"
)

// Resolve flattens a style node into the concrete style object it denotes.
//
// The absent style resolves to nil. Static and Dynamic nodes return their
// stored object; Func nodes invoke the bound function; merge nodes resolve
// both sides and deep-merge them with right-hand values overriding
// left-hand values on conflicting properties, recursively for nested CSS
// blocks. If one side of a merge resolves to nil the other side is
// returned unchanged, with no merge work.
//
// Resolve is pure apart from invoking bound functions, which must
// themselves be pure. The returned map may be a node's stored object -
// callers MUST NOT modify it.
func Resolve(s *Style) CSS {
	if s == nil {
		return nil
	}
	switch s.kind {
	case kindStatic, kindDynamic:
		return s.obj
	case kindFunc:
		return s.fn()
	case kindMerge:
		left := Resolve(s.left)
		right := Resolve(s.right)
		if left == nil {
			return right
		}
		if right == nil {
			return left
		}
		return overrideMerge(left, right)
	}
	return nil
}

// overrideMerge deep-merges right over left into a fresh map. Neither
// input is modified; resolved objects may be held by live style nodes.
func overrideMerge(left, right CSS) CSS {
	out := cloneCSS(left)
	if err := mergo.Merge(&out, right, mergo.WithOverride); err != nil {
		// mergo accepts any pair of same-typed maps; failing here means the
		// inputs were not well-formed CSS at all.
		panic(fmt.Sprintf("hxstyle: deep merge: %v", err))
	}
	return out
}

func cloneCSS(obj CSS) CSS {
	out := make(CSS, len(obj))
	for k, v := range obj {
		if nested, ok := v.(CSS); ok {
			out[k] = cloneCSS(nested)
			continue
		}
		out[k] = v
	}
	return out
}
