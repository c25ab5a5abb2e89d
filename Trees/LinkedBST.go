package Trees

import (
	"fmt"
	"math"
	"strings"

	"github.com/emirpasic/gods/containers"
	"github.com/g-m-twostay/linkedbst/Queues"
	"golang.org/x/exp/constraints"
)

var (
	_ Tree[int]            = (*LinkedBST[int])(nil)
	_ containers.Container = (*LinkedBST[int])(nil)
)

// LinkedBST is a plain binary search tree built from linked nodes. It never balances
// itself: Insert and Remove are pure BST operations, and the shape only becomes
// minimal when Rebalance is called.
// Equal values are allowed. Insert sends a value equal to a node into its right
// subtree, but Remove and Rebalance may leave an equal value in the left subtree,
// so the ordering kept is left<=node<=right. Lookups are exact under this ordering.
// D below is the current height of the tree.
// The zero value is an empty tree ready to use. LinkedBST isn't safe for concurrent use.
type LinkedBST[T constraints.Ordered] struct {
	root *node[T] //nil iff size==0
	size int
}

// New returns a tree holding items, inserted one by one in the given order.
// Time: O(n*D)
func New[T constraints.Ordered](items ...T) *LinkedBST[T] {
	u := new(LinkedBST[T])
	for _, v := range items {
		u.Insert(v)
	}
	return u
}

// Size [Tree.Size]
// Time: O(1); Space: O(1)
func (u *LinkedBST[T]) Size() int {
	return u.size
}

// Empty [Tree.Empty]
func (u *LinkedBST[T]) Empty() bool {
	return u.size == 0
}

// Clear [Tree.Clear]. The old nodes are left to the garbage collector.
func (u *LinkedBST[T]) Clear() {
	u.root, u.size = nil, 0
}

// Insert [Tree.Insert]
// Time: O(D); Space: O(1)
func (u *LinkedBST[T]) Insert(v T) {
	p := &u.root
	for *p != nil {
		if v < (*p).v {
			p = &(*p).l
		} else {
			p = &(*p).r
		}
	}
	*p = &node[T]{v: v}
	u.size++
}

// find the node holding v in the subtree rooting at n. Recursive.
func find[T constraints.Ordered](n *node[T], v T) *node[T] {
	if n == nil {
		return nil
	} else if v == n.v {
		return n
	} else if v < n.v {
		return find(n.l, v)
	} else {
		return find(n.r, v)
	}
}

// Find [Tree.Find]. Recursive.
// Time: O(D)
func (u *LinkedBST[T]) Find(v T) (T, bool) {
	if n := find(u.root, v); n != nil {
		return n.v, true
	}
	return *new(T), false
}

// Has [Tree.Has]. Recursive.
// Time: O(D)
func (u *LinkedBST[T]) Has(v T) bool {
	return find(u.root, v) != nil
}

// Replace [Tree.Replace]
// Time: O(D); Space: O(1)
func (u *LinkedBST[T]) Replace(v, nv T) (T, bool) {
	for cur := u.root; cur != nil; {
		if cur.v == v {
			old := cur.v
			cur.v = nv
			return old, true
		} else if v < cur.v {
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	return *new(T), false
}

// liftMaxOfLeft replaces top.v with the maximum of its left subtree and unlinks
// the node that held the maximum. top.l mustn't be nil.
func liftMaxOfLeft[T constraints.Ordered](top *node[T]) {
	parent, cur := top, top.l
	for cur.r != nil {
		parent, cur = cur, cur.r
	}
	top.v = cur.v
	if parent == top {
		top.l = cur.l
	} else {
		parent.r = cur.l
	}
}

// Remove [Tree.Remove]
// A node with 2 children isn't unlinked: it takes the maximum value of its left
// subtree, and the node that held that maximum is unlinked instead.
// Time: O(D); Space: O(1)
func (u *LinkedBST[T]) Remove(v T) (T, error) {
	if !u.Has(v) {
		return *new(T), &MissingKeyError[T]{v}
	}
	// preRoot stands in as the parent of root, so root is relinked like any other node.
	preRoot := &node[T]{l: u.root}
	parent, cur, left := preRoot, u.root, true
	for cur != nil && cur.v != v {
		parent = cur
		if v < cur.v {
			cur, left = cur.l, true
		} else {
			cur, left = cur.r, false
		}
	}
	if cur == nil {
		return *new(T), &MissingKeyError[T]{v}
	}
	removed := cur.v
	if cur.l != nil && cur.r != nil {
		liftMaxOfLeft(cur)
	} else {
		child := cur.l
		if cur.l == nil {
			child = cur.r
		}
		if left {
			parent.l = child
		} else {
			parent.r = child
		}
	}
	if u.size--; u.size == 0 {
		u.root = nil
	} else {
		u.root = preRoot.l
	}
	return removed, nil
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *LinkedBST[T]) Minimum() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return minOf(u.root).v, true
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *LinkedBST[T]) Maximum() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return maxOf(u.root).v, true
}

// Predecessor [Tree.Predecessor]
// Time: O(D); Space: O(1)
func (u *LinkedBST[T]) Predecessor(v T) (T, bool) {
	var p *node[T]
	for cur := u.root; cur != nil; {
		if v <= cur.v {
			cur = cur.l
		} else {
			p = cur
			cur = cur.r
		}
	}
	if p == nil {
		return *new(T), false
	}
	return p.v, true
}

// Successor [Tree.Successor]
// Time: O(D); Space: O(1)
func (u *LinkedBST[T]) Successor(v T) (T, bool) {
	var p *node[T]
	for cur := u.root; cur != nil; {
		if v < cur.v {
			p = cur
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	if p == nil {
		return *new(T), false
	}
	return p.v, true
}

func appendRange[T constraints.Ordered](s []T, n *node[T], lo, hi T) []T {
	if n == nil {
		return s
	}
	if lo <= n.v {
		s = appendRange(s, n.l, lo, hi)
		if n.v <= hi {
			s = append(s, n.v)
		}
	}
	if n.v <= hi {
		s = appendRange(s, n.r, lo, hi)
	}
	return s
}

// RangeFind [Tree.RangeFind]. Recursive. Subtrees entirely outside [lo, hi] aren't visited.
// lo>hi is an empty range rather than an error.
// Time: O(D+k) for k results
func (u *LinkedBST[T]) RangeFind(lo, hi T) []T {
	if hi < lo {
		return []T{}
	}
	return appendRange([]T{}, u.root, lo, hi)
}

func height[T constraints.Ordered](n *node[T]) int {
	if n == nil {
		return -1
	}
	return 1 + max(height(n.l), height(n.r))
}

// Height [Tree.Height]. Recursive.
// Time: O(n)
func (u *LinkedBST[T]) Height() int {
	return height(u.root)
}

// count the nodes by walking the whole tree.
func (u *LinkedBST[T]) count() (n int) {
	for next := u.PreOrder(); ; n++ {
		if _, ok := next(); !ok {
			return
		}
	}
}

// IsBalanced [Tree.IsBalanced]
// The tree counts as balanced when Height() < 2*log2(n+1)-1 for n nodes. This is a
// rough check that the tree isn't far from complete, it doesn't bound the height
// the way AVL or red-black trees do. An empty tree is balanced.
// Time: O(n)
func (u *LinkedBST[T]) IsBalanced() bool {
	n := u.count()
	if n == 0 {
		return true
	}
	return float64(u.Height()) < 2*math.Log2(float64(n+1))-1
}

// Rebalance [Tree.Rebalance]. Recursive.
// The tree is flattened with Items and rebuilt by taking middle elements as roots,
// giving height ceil(log2(n+1))-1. The result only depends on the elements, so
// calling it again doesn't change the shape.
// Time: O(n); Space: O(n)
func (u *LinkedBST[T]) Rebalance() {
	u.root = build(u.Items())
}

func appendInOrder[T constraints.Ordered](s []T, n *node[T]) []T {
	if n == nil {
		return s
	}
	s = appendInOrder(s, n.l)
	s = append(s, n.v)
	return appendInOrder(s, n.r)
}

// Items returns all elements in ascending order. Recursive.
// Time: O(n)
func (u *LinkedBST[T]) Items() []T {
	return appendInOrder(make([]T, 0, u.size), u.root)
}

// Values returns Items as a []interface{}, for containers.Container.
func (u *LinkedBST[T]) Values() []interface{} {
	vs := make([]interface{}, 0, u.size)
	for next := u.InOrder(); ; {
		v, ok := next()
		if !ok {
			return vs
		}
		vs = append(vs, v)
	}
}

func writeRotated[T constraints.Ordered](sb *strings.Builder, n *node[T], level int) {
	if n == nil {
		return
	}
	writeRotated(sb, n.r, level+1)
	sb.WriteString(strings.Repeat("| ", level))
	fmt.Fprintln(sb, n.v)
	writeRotated(sb, n.l, level+1)
}

// String draws the tree rotated 90 degrees counterclockwise: one element per line,
// right subtree above, each level indented by "| ".
func (u *LinkedBST[T]) String() string {
	var sb strings.Builder
	writeRotated(&sb, u.root, 0)
	return sb.String()
}

// PreOrder [Tree.PreOrder]. The default traversal of the tree.
// Time: f(): O(1) at each call to the returned function. Space: O(D)
func (u *LinkedBST[T]) PreOrder() func() (T, bool) {
	var st []*node[T]
	if u.root != nil {
		st = append(st, u.root)
	}
	return func() (r T, has bool) {
		if len(st) == 0 {
			return
		}
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		// right goes first so left is popped first.
		if cur.r != nil {
			st = append(st, cur.r)
		}
		if cur.l != nil {
			st = append(st, cur.l)
		}
		return cur.v, true
	}
}

func pushLeft[T constraints.Ordered](st []*node[T], n *node[T]) []*node[T] {
	for ; n != nil; n = n.l {
		st = append(st, n)
	}
	return st
}

// InOrder [Tree.InOrder]
// Time: f(): amortized O(1) at each call to the returned function. Space: O(D)
func (u *LinkedBST[T]) InOrder() func() (T, bool) {
	st := pushLeft(nil, u.root)
	return func() (r T, has bool) {
		if len(st) == 0 {
			return
		}
		cur := st[len(st)-1]
		st = pushLeft(st[:len(st)-1], cur.r)
		return cur.v, true
	}
}

// PostOrder [Tree.PostOrder]
// Time: f(): amortized O(1) at each call to the returned function. Space: O(D)
func (u *LinkedBST[T]) PostOrder() func() (T, bool) {
	var st []*node[T]
	cur := u.root
	var last *node[T] //last node given out, to know whether the top's right subtree is done.
	return func() (r T, has bool) {
		for cur != nil || len(st) > 0 {
			if cur != nil {
				st = append(st, cur)
				cur = cur.l
				continue
			}
			top := st[len(st)-1]
			if top.r != nil && top.r != last {
				cur = top.r
				continue
			}
			st = st[:len(st)-1]
			last = top
			return top.v, true
		}
		return
	}
}

// LevelOrder [Tree.LevelOrder]. Levels are given from the root down, each level from left to right.
// Time: f(): amortized O(1) at each call to the returned function. Space: O(widest level)
func (u *LinkedBST[T]) LevelOrder() func() (T, bool) {
	q := Queues.MakeArrayQueue[*node[T]](16)
	if u.root != nil {
		q.Push(u.root)
	}
	return func() (r T, has bool) {
		cur, e := q.Pop()
		if e != nil {
			return
		}
		if cur.l != nil {
			q.Push(cur.l)
		}
		if cur.r != nil {
			q.Push(cur.r)
		}
		return cur.v, true
	}
}

// checkOrder of the subtree rooting at n against the bounds lo and hi, nil meaning
// unbounded. Returns the number of nodes and whether the ordering holds.
func checkOrder[T constraints.Ordered](n *node[T], lo, hi *T) (int, bool) {
	if n == nil {
		return 0, true
	}
	if (lo != nil && n.v < *lo) || (hi != nil && *hi < n.v) {
		return 0, false
	}
	lc, ok := checkOrder(n.l, lo, &n.v)
	if !ok {
		return 0, false
	}
	rc, ok := checkOrder(n.r, &n.v, hi)
	if !ok {
		return 0, false
	}
	return lc + rc + 1, true
}

// Corrupt [Tree.Corrupt]
// Checks left<=node<=right at every node, and that the size matches the nodes reachable from root.
// Time: O(n)
func (u *LinkedBST[T]) Corrupt() bool {
	n, ok := checkOrder(u.root, nil, nil)
	return !ok || n != u.size
}
