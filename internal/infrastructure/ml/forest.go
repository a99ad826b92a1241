package ml

import (
	"errors"
	"fmt"
)

const leafIndex = -1

type forest struct {
	trees [][]NodeSpec
}

func newForest(specs []TreeSpec, numFeatures int) (*forest, error) {
	if len(specs) == 0 {
		return nil, errors.New("random forest has no trees")
	}
	f := &forest{trees: make([][]NodeSpec, 0, len(specs))}
	for t, spec := range specs {
		if err := validateTree(spec.Nodes, numFeatures); err != nil {
			return nil, fmt.Errorf("tree %d: %w", t, err)
		}
		f.trees = append(f.trees, spec.Nodes)
	}
	return f, nil
}

// validateTree requires children to sit after their parent, which rules out
// cycles and guarantees every descent ends at a leaf.
func validateTree(nodes []NodeSpec, numFeatures int) error {
	if len(nodes) == 0 {
		return errors.New("tree has no nodes")
	}
	for i, n := range nodes {
		if n.IsLeaf() {
			if n.Right != leafIndex {
				return fmt.Errorf("node %d: leaf has a right child", i)
			}
			if len(n.Value) < 2 {
				return fmt.Errorf("node %d: leaf needs counts for both classes", i)
			}
			var total float64
			for _, v := range n.Value {
				if v < 0 {
					return fmt.Errorf("node %d: negative class count", i)
				}
				total += v
			}
			if total <= 0 {
				return fmt.Errorf("node %d: leaf has no samples", i)
			}
			continue
		}
		if n.Feature < 0 || n.Feature >= numFeatures {
			return fmt.Errorf("node %d: feature index %d out of range", i, n.Feature)
		}
		for _, child := range []int{n.Left, n.Right} {
			if child <= i || child >= len(nodes) {
				return fmt.Errorf("node %d: child %d out of range", i, child)
			}
		}
	}
	return nil
}

// predict averages each tree's positive-class leaf fraction.
func (f *forest) predict(x []float64) float64 {
	var sum float64
	for _, nodes := range f.trees {
		sum += leafProbability(nodes, x)
	}
	return sum / float64(len(f.trees))
}

func leafProbability(nodes []NodeSpec, x []float64) float64 {
	n := nodes[0]
	for !n.IsLeaf() {
		if x[n.Feature] <= n.Threshold {
			n = nodes[n.Left]
		} else {
			n = nodes[n.Right]
		}
	}
	var total float64
	for _, v := range n.Value {
		total += v
	}
	return n.Value[1] / total
}
