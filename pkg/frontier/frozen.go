package frontier

import (
	"fmt"

	"github.com/nspcc-dev/frontier/pkg/crypto/hash"
	"github.com/nspcc-dev/frontier/pkg/util"
)

// FrozenLeaf is a finished item at height 0.
type FrozenLeaf struct {
	item Item
	hash util.Uint256
}

var _ Frozen = (*FrozenLeaf)(nil)

// NewFrozenLeaf returns a frozen leaf over item.
func NewFrozenLeaf(item Item) *FrozenLeaf {
	return &FrozenLeaf{item: item, hash: hash.Leaf(item)}
}

// Item returns the finished payload.
func (l *FrozenLeaf) Item() Item {
	return l.item
}

// Hash implements Frozen.
func (l *FrozenLeaf) Hash() util.Uint256 {
	return l.hash
}

// Height implements Frozen.
func (l *FrozenLeaf) Height() byte {
	return 0
}

// FrozenNode is an immutable node whose four children are all finalized.
// Children may individually be pruned to HashNodes, chosen purely for
// storage economy by whoever folded them; either variant hashes
// identically. The node hash is derived on first use and cached.
type FrozenNode struct {
	children [4]Frozen
	height   byte

	hash      util.Uint256
	hashValid bool
}

var _ Frozen = (*FrozenNode)(nil)

// Hash implements Frozen.
func (n *FrozenNode) Hash() util.Uint256 {
	if !n.hashValid {
		n.hash = hash.Node(n.height,
			n.children[0].Hash(), n.children[1].Hash(),
			n.children[2].Hash(), n.children[3].Hash())
		n.hashValid = true
	}
	return n.hash
}

// Height implements Frozen.
func (n *FrozenNode) Height() byte {
	return n.height
}

// Children returns the four finalized children in left-to-right order.
func (n *FrozenNode) Children() [4]Frozen {
	return n.children
}

// setHashUnchecked force-assigns a known-correct hash, skipping
// recomputation. The caller must guarantee that h is the combination of
// the node's four children.
func (n *FrozenNode) setHashUnchecked(h util.Uint256) {
	n.hash = h
	n.hashValid = true
}

// frozenFromSiblingsAndFocus folds a sibling buffer and a completed focus
// into a frozen node one level above the focus. Only a genuinely full
// structure (three siblings plus a focus that completed into more than a
// bare hash) is retained; anything less folds down to a HashNode with the
// combined hash, which is all the level above needs to keep going.
func frozenFromSiblingsAndFocus(siblings Three, focus Frozen) Frozen {
	height := focus.Height() + 1
	if siblings.Len() == 3 {
		if _, pruned := focus.(*HashNode); !pruned {
			s := siblings.Elems()
			return newFrozenNode([4]Frozen{s[0], s[1], s[2], focus})
		}
	}
	return NewHashNode(height, hashFrontier(siblings, focus.Height(), focus.Hash()))
}

// frozenFromChildren folds exactly four finalized children into a frozen
// node. When every child is already pruned to a bare hash there is nothing
// left worth retaining and the result collapses to a HashNode right away;
// otherwise hashing is deferred until first use.
func frozenFromChildren(children [4]Frozen) Frozen {
	retained := false
	for _, c := range children {
		if _, pruned := c.(*HashNode); !pruned {
			retained = true
			break
		}
	}
	n := newFrozenNode(children)
	if retained {
		return n
	}
	return NewHashNode(n.height, n.Hash())
}

// newFrozenNode wires four children into a FrozenNode with an empty hash
// cache. Child heights must agree; a mismatch is a bug in the composition
// of the tree, never a data condition, and aborts immediately.
func newFrozenNode(children [4]Frozen) *FrozenNode {
	height := children[0].Height() + 1
	for _, c := range children[1:] {
		if c.Height()+1 != height {
			panic(fmt.Sprintf("frontier: child height %d does not match %d", c.Height(), height-1))
		}
	}
	return &FrozenNode{children: children, height: height}
}
