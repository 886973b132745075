package frontier

import "github.com/nspcc-dev/frontier/pkg/util"

// HashNode stands in for a subtree pruned down to its hash. It is
// hash-equivalent to the subtree it replaces, so pruning can never be
// observed through the root.
type HashNode struct {
	hash   util.Uint256
	height byte
}

var _ Frozen = (*HashNode)(nil)

// NewHashNode returns a HashNode of the given height carrying h.
func NewHashNode(height byte, h util.Uint256) *HashNode {
	return &HashNode{hash: h, height: height}
}

// Hash implements Frozen.
func (h *HashNode) Hash() util.Uint256 {
	return h.hash
}

// Height implements Frozen.
func (h *HashNode) Height() byte {
	return h.height
}
