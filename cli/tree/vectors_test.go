package tree

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadVectorFile(t *testing.T) {
	t.Run("Missing", func(t *testing.T) {
		_, err := LoadVectorFile(filepath.Join("testdata", "nonexistent.yml"))
		require.Error(t, err)
	})
	t.Run("Good", func(t *testing.T) {
		vf, err := LoadVectorFile(filepath.Join("testdata", "accumulator.yml"))
		require.NoError(t, err)
		require.NotEmpty(t, vf.Vectors)
	})
}

func TestVectorsCheck(t *testing.T) {
	vf, err := LoadVectorFile(filepath.Join("testdata", "accumulator.yml"))
	require.NoError(t, err)

	for _, v := range vf.Vectors {
		v := v
		t.Run(v.Name, func(t *testing.T) {
			require.NoError(t, v.Check())
		})
	}
}

func TestVectorCheckFailures(t *testing.T) {
	t.Run("BadRoot", func(t *testing.T) {
		v := Vector{Items: []string{"00"}, Root: "zz"}
		assert.Error(t, v.Check())
	})
	t.Run("BadItem", func(t *testing.T) {
		v := Vector{
			Items: []string{"not hex"},
			Root:  "762ba6a3d9312bf3e6dc71e74f34208e889fc44e6ff400724deecfeda7d5b3ce",
		}
		assert.Error(t, v.Check())
	})
	t.Run("Mismatch", func(t *testing.T) {
		v := Vector{
			Items: []string{"00", "01"},
			Root:  "762ba6a3d9312bf3e6dc71e74f34208e889fc44e6ff400724deecfeda7d5b3ce",
		}
		assert.Error(t, v.Check())
	})
}
