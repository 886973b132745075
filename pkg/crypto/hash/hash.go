// Package hash implements the domain-separated hash primitive the
// accumulator is built on. Every hash lives in one of three separate
// domains: leaf payloads, interior nodes (additionally tagged with their
// height, so identical child tuples at different depths never collide) and
// the fixed padding value standing in for absent children.
package hash

import (
	"golang.org/x/crypto/sha3"

	"github.com/nspcc-dev/frontier/pkg/util"
)

// Domain separation prefixes.
const (
	leafPrefix    = 0x00
	nodePrefix    = 0x01
	paddingPrefix = 0x02
)

var padding = Sum([]byte{paddingPrefix})

// Leaf hashes an opaque item payload into the leaf domain.
func Leaf(payload []byte) util.Uint256 {
	buf := make([]byte, 0, 1+len(payload))
	buf = append(buf, leafPrefix)
	buf = append(buf, payload...)
	return Sum(buf)
}

// Node combines four ordered child hashes into their parent hash. height
// is the height of the parent.
func Node(height byte, a, b, c, d util.Uint256) util.Uint256 {
	buf := make([]byte, 0, 2+4*util.Uint256Size)
	buf = append(buf, nodePrefix, height)
	buf = append(buf, a[:]...)
	buf = append(buf, b[:]...)
	buf = append(buf, c[:]...)
	buf = append(buf, d[:]...)
	return Sum(buf)
}

// Padding returns the fixed hash used for missing children.
func Padding() util.Uint256 {
	return padding
}

// Sum hashes the incoming byte slice using the sha3-256 algorithm.
func Sum(data []byte) util.Uint256 {
	return util.Uint256(sha3.Sum256(data))
}
