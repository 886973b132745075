package hash

import (
	"testing"

	"github.com/nspcc-dev/frontier/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDecode(t *testing.T, s string) util.Uint256 {
	u, err := util.Uint256DecodeStringBE(s)
	require.NoError(t, err)
	return u
}

func TestPadding(t *testing.T) {
	expected := "0a1e2736777f80a62beb2df72b649878481c0ca10194b832b5136befbae54017"
	assert.Equal(t, mustDecode(t, expected), Padding())
	// the padding value is fixed
	assert.Equal(t, Padding(), Padding())
}

func TestLeaf(t *testing.T) {
	expected := "5d53469f20fef4f8eab52b88044ede69c77a6a68a60728609fc4a65ff531e7d0"
	assert.Equal(t, mustDecode(t, expected), Leaf(nil))

	expected = "fc5c274884fde983d181ae4cdf7cdaeab9535812df91abcbf5d9ee92ab9eef51"
	assert.Equal(t, mustDecode(t, expected), Leaf([]byte{0x0a}))
}

func TestNode(t *testing.T) {
	pad := Padding()
	expected := "70c90fba0f79a0ccbd08e2e81244298d708746dbd44b3901961822a5a7be46de"
	assert.Equal(t, mustDecode(t, expected), Node(1, Leaf([]byte{0x0a}), pad, pad, pad))
}

func TestNodeDomainSeparation(t *testing.T) {
	a, b := Leaf([]byte{0x01}), Leaf([]byte{0x02})
	pad := Padding()

	t.Run("Height", func(t *testing.T) {
		require.NotEqual(t, Node(1, a, b, pad, pad), Node(2, a, b, pad, pad))
	})
	t.Run("Order", func(t *testing.T) {
		require.NotEqual(t, Node(1, a, b, pad, pad), Node(1, b, a, pad, pad))
	})
	t.Run("LeafVsPayload", func(t *testing.T) {
		// hashing a payload in the leaf domain differs from hashing the
		// same bytes raw
		require.NotEqual(t, Leaf([]byte{0x01}), Sum([]byte{0x01}))
	})
}
