package frontier

import (
	"fmt"

	"github.com/nspcc-dev/frontier/pkg/crypto/hash"
	"github.com/nspcc-dev/frontier/pkg/util"
)

// ActiveNode is a growing node one level above its focus: the still
// growing child it exclusively owns, preceded by up to three already
// finished siblings in left-to-right order. The node hash is computed
// lazily and cached until something reachable through the focus changes.
type ActiveNode struct {
	focus    Active
	siblings Three

	hash      util.Uint256
	hashValid bool
}

var _ Active = (*ActiveNode)(nil)

// NewSingleton builds the minimal active node of the given height holding
// exactly one item at its deepest position. No hashes are computed
// eagerly.
func NewSingleton(height byte, item Item) Active {
	if height == 0 {
		return NewActiveLeaf(item)
	}
	return fromParts(NewThree(), NewSingleton(height-1, item))
}

// fromParts wires siblings and focus into a node with an empty hash
// cache. The caller must supply a structurally valid, consistently
// ordered set of children; only the height composition is checked here. A
// height mismatch is a bug in the wiring of the tree, never a data
// condition, and aborts immediately rather than producing a silently
// mis-hashed tree.
func fromParts(siblings Three, focus Active) *ActiveNode {
	for _, s := range siblings.Elems() {
		if s.Height() != focus.Height() {
			panic(fmt.Sprintf("frontier: sibling height %d does not match focus height %d", s.Height(), focus.Height()))
		}
	}
	return &ActiveNode{siblings: siblings, focus: focus}
}

// Height implements Active.
func (n *ActiveNode) Height() byte {
	return n.focus.Height() + 1
}

// Hash implements Active. The hash is derived on first access and cached,
// repeated calls return the cached value.
func (n *ActiveNode) Hash() util.Uint256 {
	if !n.hashValid {
		n.hash = hashFrontier(n.siblings, n.focus.Height(), n.focus.Hash())
		n.hashValid = true
	}
	return n.hash
}

// hashFrontier combines up to three sibling hashes, the focus hash right
// after them and padding for the remaining slots into the parent hash one
// level above the focus. Siblings resolve through Frozen.Hash, so a
// pruned sibling and a fully retained one contribute identically.
func hashFrontier(siblings Three, focusHeight byte, focusHash util.Uint256) util.Uint256 {
	pad := hash.Padding()

	var a, b, c, d util.Uint256
	switch s := siblings.Elems(); len(s) {
	case 0:
		a, b, c, d = focusHash, pad, pad, pad
	case 1:
		a, b, c, d = s[0].Hash(), focusHash, pad, pad
	case 2:
		a, b, c, d = s[0].Hash(), s[1].Hash(), focusHash, pad
	case 3:
		a, b, c, d = s[0].Hash(), s[1].Hash(), s[2].Hash(), focusHash
	}
	return hash.Node(focusHeight+1, a, b, c, d)
}

// Alter implements Active.
func (n *ActiveNode) Alter(f func(*Item)) bool {
	ok := n.focus.Alter(f)
	// The item may have changed even if f was only probing, so the cache
	// is dropped unconditionally.
	n.hashValid = false
	return ok
}

// Complete implements Active.
func (n *ActiveNode) Complete() Frozen {
	return frozenFromSiblingsAndFocus(n.siblings, n.focus.Complete())
}

// Insert implements Active.
func (n *ActiveNode) Insert(item Item) (Active, Frozen) {
	next, carry := n.focus.Insert(item)
	if carry == nil {
		// The focus absorbed the item, the siblings are untouched.
		return fromParts(n.siblings, next), nil
	}

	// The focus was full and came back folded, so the rightmost path
	// moves one position right.
	siblings, full, ok := n.siblings.Push(carry)
	if ok {
		// There was room for one more sibling and the item starts a
		// fresh focus of its own.
		return fromParts(siblings, NewSingleton(n.focus.Height(), item)), nil
	}

	// All four children of this level are now finished. The whole level
	// folds into a carry for the caller to place and the item remains
	// unplaced.
	folded := frozenFromChildren(full)
	if fn, isNode := folded.(*FrozenNode); isNode && n.hashValid {
		// The folded node has exactly this node's children in the same
		// order, so the cached hash is transplanted instead of being
		// recomputed.
		fn.setHashUnchecked(n.hash)
	}
	return nil, folded
}
