package frontier

import "github.com/nspcc-dev/frontier/pkg/util"

// Tree is the top-level accumulator over the active-node core. It owns the
// root of the rightmost path and grows one level taller whenever a carry
// escapes the current root. A Tree must not be shared between goroutines
// without external synchronization.
type Tree struct {
	root  Active
	count uint64
}

// New returns an empty accumulator.
func New() *Tree {
	return &Tree{}
}

// Len returns the number of items inserted so far.
func (t *Tree) Len() uint64 {
	return t.count
}

// Root returns the accumulator root hash. The empty tree hashes to the
// zero value.
func (t *Tree) Root() util.Uint256 {
	if t.root == nil {
		return util.Uint256{}
	}
	return t.root.Hash()
}

// Insert appends item to the accumulator. Work per insertion is bounded by
// the number of full levels along the rightmost path.
func (t *Tree) Insert(item Item) {
	t.count++
	if t.root == nil {
		t.root = NewActiveLeaf(item)
		return
	}
	next, carry := t.root.Insert(item)
	if carry == nil {
		t.root = next
		return
	}
	// The whole tree is full: the old root folds into the leftmost child
	// of a new, one-taller root and the unplaced item starts its focus.
	siblings, _, _ := NewThree().Push(carry)
	t.root = fromParts(siblings, NewSingleton(carry.Height(), item))
}

// Alter applies f to the most recently inserted item, the only mutable
// one: items committed to sibling buffers are permanently frozen. It
// reports whether the tree had an item to alter.
func (t *Tree) Alter(f func(*Item)) bool {
	if t.root == nil {
		return false
	}
	return t.root.Alter(f)
}
