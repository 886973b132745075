/*
Package frontier implements the growth frontier of an append-only, arity-4
authenticated tree: a cryptographic accumulator that takes items one at a
time, always hashes to a single deterministic root and keeps only the
still-growing rightmost path materialized in active form.

Insertion advances the rightmost path exactly like incrementing a base-4
counter: when a level fills up it folds into a finished subtree (a carry)
which the level above absorbs into its sibling buffer. Finished subtrees
may be pruned down to a bare hash at any point without affecting any hash
above them.
*/
package frontier

import "github.com/nspcc-dev/frontier/pkg/util"

// Item is an opaque leaf payload. The accumulator never interprets it, it
// is only hashed and handed to the callback in Alter.
type Item []byte

// Frozen is the common interface of finished (complete) subtrees. A frozen
// subtree either retains its children or is collapsed down to a bare hash;
// both variants hash identically and the choice never affects the root.
type Frozen interface {
	Hash() util.Uint256
	Height() byte
}

// Active is the common interface of still-growing nodes on the rightmost
// path. Insert and Complete consume the receiver: once either has been
// called, the receiver must not be used again.
type Active interface {
	Frozen

	// Insert places item at depth 0 beneath this node. On success carry
	// is nil and next replaces the receiver. When the whole subtree is
	// full, next is nil and carry holds its folded representation to be
	// placed one level up; the item stays with the caller, unplaced.
	Insert(item Item) (next Active, carry Frozen)

	// Alter applies f to the single mutable item reachable through the
	// focus chain (the most recently inserted one) and reports whether
	// such an item was found. Any cached hashes along the way are
	// invalidated unconditionally, whether or not f changed anything.
	Alter(f func(*Item)) bool

	// Complete folds the node into its frozen counterpart. A structure
	// with all four children present yields a fully-retained node, any
	// other yields a HashNode carrying the combined hash.
	Complete() Frozen
}
