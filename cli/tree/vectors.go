package tree

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/nspcc-dev/frontier/pkg/frontier"
	"github.com/nspcc-dev/frontier/pkg/util"
	"gopkg.in/yaml.v3"
)

// VectorFile is a YAML collection of accumulator known-answer vectors.
type VectorFile struct {
	Vectors []Vector `yaml:"vectors"`
}

// Vector is a single known-answer case: hex-encoded items inserted in
// order and the expected root.
type Vector struct {
	Name  string   `yaml:"name"`
	Items []string `yaml:"items"`
	Root  string   `yaml:"root"`
}

// LoadVectorFile reads and parses the vector file at the given path.
func LoadVectorFile(path string) (*VectorFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read vectors: %w", err)
	}
	vf := new(VectorFile)
	if err := yaml.Unmarshal(data, vf); err != nil {
		return nil, fmt.Errorf("unable to parse vectors: %w", err)
	}
	return vf, nil
}

// Check rebuilds the accumulator for v and compares the result with the
// expected root.
func (v *Vector) Check() error {
	expected, err := util.Uint256DecodeStringBE(v.Root)
	if err != nil {
		return fmt.Errorf("bad root: %w", err)
	}

	t := frontier.New()
	for i, s := range v.Items {
		b, err := hex.DecodeString(s)
		if err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
		t.Insert(b)
	}
	if actual := t.Root(); !actual.Equals(expected) {
		return fmt.Errorf("root mismatch: expected %s, got %s", expected, actual)
	}
	return nil
}
