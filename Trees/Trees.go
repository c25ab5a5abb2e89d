package Trees

// Tree represents a tree like structure implemented using nodes.
// Receivers that has a bool as a second return value indicates whether
// the first return value is defined. For example, if calling Minimum on
// an empty tree, the return value will be (x T, false bool). In this
// case x is the zero value of T and shouldn't be used.
// If an implementation didn't specify anything special, then the implemented
// receivers follows the behaviors defined here. Methods implemented recursively
// should be noted, otherwise functions are implemented iteratively.
type Tree[T any] interface {
	//Insert v to the Tree. Equal values are kept, the tree is a multiset.
	Insert(v T)
	//Remove one occurrence of v from the Tree and return it. Removing a value that
	//isn't in the Tree returns a *MissingKeyError and leaves the Tree unchanged.
	Remove(v T) (T, error)
	//Find returns the stored value equal to v.
	Find(v T) (T, bool)
	//Has element v.
	Has(v T) bool
	//Replace the stored value equal to v with nv, returning the old value. It's
	//up to the caller to make sure nv sorts at the same place as v.
	Replace(v, nv T) (T, bool)
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//Predecessor returns the greatest element less than v.
	Predecessor(v T) (T, bool)
	//Successor returns the smallest element greater than v.
	Successor(v T) (T, bool)
	//RangeFind returns all elements x with lo<=x<=hi in ascending order.
	RangeFind(lo, hi T) []T
	//Size of the tree.
	Size() int
	//Empty reports whether Size()==0.
	Empty() bool
	//Clear the tree.
	Clear()
	//Height of the tree in edges. A single node has height 0, an empty tree -1.
	Height() int
	//IsBalanced reports whether the height is within the bound the implementation
	//considers balanced.
	IsBalanced() bool
	//Rebalance rebuilds the tree into its minimal height, keeping the same elements.
	Rebalance()
	//PreOrder, InOrder, PostOrder and LevelOrder return a closure function f acting
	//like an iterator over the corresponding traversal.
	//Calling f is like calling "Next()" of iterators: val, valid=f()
	//val is meaningful only if valid is true. When valid==false,
	//then f is exhausted. valid can't turn true after it first became false.
	//The tree must not be modified during the iteration of f, what f yields
	//afterward is unspecified.
	PreOrder() func() (T, bool)
	InOrder() func() (T, bool)
	PostOrder() func() (T, bool)
	LevelOrder() func() (T, bool)
	//Corrupt returns whether the tree has corrupt structures, when the value
	//at some node violates the properties of that specific implementation.
	//This is to be distinguished from whether the tree is balanced or not.
	Corrupt() bool
}
