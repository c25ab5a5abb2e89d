package measure

import (
	"slices"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/g-m-twostay/linkedbst/Trees"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
	"github.com/puzpuzpuz/xsync/v3"
)

// Searcher is a structure holding a word list that can be searched.
type Searcher interface {
	Find(w string) bool
}

// SliceSearcher scans the list from the start, like a plain list lookup.
type SliceSearcher []string

func (s SliceSearcher) Find(w string) bool {
	return slices.Index(s, w) >= 0
}

// TreeSearcher looks words up in a LinkedBST.
type TreeSearcher struct {
	Tree *Trees.LinkedBST[string]
}

// NewTreeSearcher inserts words in the given order, without rebalancing.
func NewTreeSearcher(words []string) TreeSearcher {
	return TreeSearcher{Trees.New(words...)}
}

func (s TreeSearcher) Find(w string) bool {
	_, ok := s.Tree.Find(w)
	return ok
}

func (s TreeSearcher) Height() int {
	return s.Tree.Height()
}

// BTreeSearcher uses github.com/google/btree.
type BTreeSearcher struct {
	t *btree.BTreeG[string]
}

func NewBTreeSearcher(words []string) BTreeSearcher {
	t := btree.NewOrderedG[string](32)
	for _, w := range words {
		t.ReplaceOrInsert(w)
	}
	return BTreeSearcher{t}
}

func (s BTreeSearcher) Find(w string) bool {
	return s.t.Has(w)
}

type llrbString string

func (a llrbString) Less(than llrb.Item) bool {
	return a < than.(llrbString)
}

// LLRBSearcher uses github.com/petar/GoLLRB.
type LLRBSearcher struct {
	t *llrb.LLRB
}

func NewLLRBSearcher(words []string) LLRBSearcher {
	t := llrb.New()
	for _, w := range words {
		t.ReplaceOrInsert(llrbString(w))
	}
	return LLRBSearcher{t}
}

func (s LLRBSearcher) Find(w string) bool {
	return s.t.Has(llrbString(w))
}

// RBTreeSearcher uses the red-black tree from github.com/emirpasic/gods.
type RBTreeSearcher struct {
	t *redblacktree.Tree
}

func NewRBTreeSearcher(words []string) RBTreeSearcher {
	t := redblacktree.NewWithStringComparator()
	for _, w := range words {
		t.Put(w, struct{}{})
	}
	return RBTreeSearcher{t}
}

func (s RBTreeSearcher) Find(w string) bool {
	_, found := s.t.Get(w)
	return found
}

// the hash maps aren't ordered, they show what an ordered structure costs over a plain lookup.

// HaxMapSearcher uses github.com/alphadose/haxmap.
type HaxMapSearcher struct {
	m *haxmap.Map[string, struct{}]
}

func NewHaxMapSearcher(words []string) HaxMapSearcher {
	m := haxmap.New[string, struct{}](uintptr(len(words)))
	for _, w := range words {
		m.Set(w, struct{}{})
	}
	return HaxMapSearcher{m}
}

func (s HaxMapSearcher) Find(w string) bool {
	_, ok := s.m.Get(w)
	return ok
}

// HashMapSearcher uses github.com/cornelk/hashmap.
type HashMapSearcher struct {
	m *hashmap.Map[string, struct{}]
}

func NewHashMapSearcher(words []string) HashMapSearcher {
	m := hashmap.New[string, struct{}]()
	for _, w := range words {
		m.Set(w, struct{}{})
	}
	return HashMapSearcher{m}
}

func (s HashMapSearcher) Find(w string) bool {
	_, ok := s.m.Get(w)
	return ok
}

// XSyncSearcher uses MapOf from github.com/puzpuzpuz/xsync/v3.
type XSyncSearcher struct {
	m *xsync.MapOf[string, struct{}]
}

func NewXSyncSearcher(words []string) XSyncSearcher {
	m := xsync.NewMapOf[string, struct{}]()
	for _, w := range words {
		m.Store(w, struct{}{})
	}
	return XSyncSearcher{m}
}

func (s XSyncSearcher) Find(w string) bool {
	_, ok := s.m.Load(w)
	return ok
}
