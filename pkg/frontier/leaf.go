package frontier

import (
	"github.com/nspcc-dev/frontier/pkg/crypto/hash"
	"github.com/nspcc-dev/frontier/pkg/util"
)

// ActiveLeaf holds the most recently inserted item at height 0. It is the
// base case of the active-node recursion: a leaf is full by construction,
// so any insertion into it overflows straight into a carry.
type ActiveLeaf struct {
	item Item
}

var _ Active = (*ActiveLeaf)(nil)

// NewActiveLeaf returns an active leaf holding item.
func NewActiveLeaf(item Item) *ActiveLeaf {
	return &ActiveLeaf{item: item}
}

// Hash implements Active.
func (l *ActiveLeaf) Hash() util.Uint256 {
	return hash.Leaf(l.item)
}

// Height implements Active.
func (l *ActiveLeaf) Height() byte {
	return 0
}

// Insert implements Active. The leaf already holds its one item, so the
// new item comes straight back to the caller with the frozen leaf as the
// carry.
func (l *ActiveLeaf) Insert(item Item) (Active, Frozen) {
	return nil, l.Complete()
}

// Alter implements Active.
func (l *ActiveLeaf) Alter(f func(*Item)) bool {
	f(&l.item)
	return true
}

// Complete implements Active.
func (l *ActiveLeaf) Complete() Frozen {
	return NewFrozenLeaf(l.item)
}
