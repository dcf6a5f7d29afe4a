// Package gen builds random trees for use as initial fixtures. Shape is
// controlled by a spread factor: at every level the remaining size is
// partitioned into randomly sized chunks averaging spread leaves each, one
// child subtree per chunk.
package gen

import (
	"github.com/agentic-research/canopy/api"
	"github.com/agentic-research/canopy/entropy"
	"github.com/agentic-research/canopy/tree"
)

// DefaultSpread is the fan-out variance knob used by Generate.
const DefaultSpread = 3

// Generate builds a random tree with exactly size leaves using the default
// spread. See GenerateSpread.
func Generate(src entropy.Source, desc *api.Descriptor, size int) *tree.Node {
	return GenerateSpread(src, desc, size, DefaultSpread)
}

// GenerateSpread builds a random tree with exactly size leaves, every node
// carrying a fresh family and default props. A size of one or less yields
// a single leaf. The total node count, leaves plus the internal nodes that
// group them, is at least size and is not independently controlled.
func GenerateSpread(src entropy.Source, desc *api.Descriptor, size, spread int) *tree.Node {
	if size <= 1 {
		return desc.CreateNode(tree.Fragment{}, desc.CreateFamily())
	}

	weights := make([]int, size)
	for i := range weights {
		weights[i] = 1
	}

	chunks := src.Distribute(weights, spread)
	children := make([]*tree.Node, 0, len(chunks))
	for _, chunk := range chunks {
		children = append(children, GenerateSpread(src, desc, len(chunk), spread))
	}

	return desc.CreateNode(tree.Fragment{Children: children}, desc.CreateFamily())
}
