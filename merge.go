package hxstyle

// Merge combines two style nodes into one. It is total and never fails.
//
// Merge is an identity-carrying associative operation over composition
// keys:
//
//   - Merging with the absent style returns the other node unchanged.
//   - Merging two nodes with equal keys returns left unchanged - they are
//     the same style under the cache's notion of equality, so no merge
//     node is allocated.
//   - A merge node's key is leftKey + " " + rightKey. Because sub-keys are
//     joined with a bare space and no brackets, nested merges flatten into
//     one space-joined token sequence: merging A, B, C yields the same key
//     no matter how the calls were grouped.
//
// When right is itself a merge node the result is re-associated left-leaning,
// so the right child of any Merge-built node is never a merge node. The key
// is unchanged either way; the shape keeps recursion depth bounded by the
// right argument's merge chain, which stays short in the common pattern of
// re-merging a small per-render override onto a large shared base.
//
// Equality is by key, computed from content: a node merged with a
// structurally identical but differently-keyed reconstruction (for example
// a Static next to a Dynamic of the same object) is not detected as equal.
func Merge(left, right *Style) *Style {
	if right == nil {
		return left
	}
	if left == nil {
		return right
	}
	if left.key == right.key {
		return left
	}
	if right.kind == kindMerge {
		return Merge(Merge(left, right.left), right.right)
	}
	return &Style{
		kind:  kindMerge,
		key:   left.key + " " + right.key,
		left:  left,
		right: right,
	}
}

// Compose merges any number of nodes left to right. Nil (absent) entries
// drop out; Compose() returns the absent style.
func Compose(nodes ...*Style) *Style {
	var out *Style
	for _, n := range nodes {
		out = Merge(out, n)
	}
	return out
}
