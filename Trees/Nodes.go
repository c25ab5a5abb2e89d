package Trees

import "golang.org/x/exp/constraints"

// A node in the LinkedBST.
// A node owns its children exclusively; nil means the child is absent. There
// is no parent pointer, walks that need one keep it themselves.
type node[T constraints.Ordered] struct {
	v    T
	l, r *node[T]
}

// maxOf the subtree rooting at n. n mustn't be nil.
func maxOf[T constraints.Ordered](n *node[T]) *node[T] {
	for n.r != nil {
		n = n.r
	}
	return n
}

// minOf the subtree rooting at n. n mustn't be nil.
func minOf[T constraints.Ordered](n *node[T]) *node[T] {
	for n.l != nil {
		n = n.l
	}
	return n
}

// build a tree from the sorted slice s by always taking the middle element as the root.
// Recursive. The resulting height is ceil(log2(len(s)+1))-1.
// Time: O(n)
func build[T constraints.Ordered](s []T) *node[T] {
	if len(s) == 0 {
		return nil
	}
	mid := len(s) >> 1
	return &node[T]{s[mid], build(s[:mid]), build(s[mid+1:])}
}
