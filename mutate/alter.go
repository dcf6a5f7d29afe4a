package mutate

import (
	"github.com/agentic-research/canopy/entropy"
	"github.com/agentic-research/canopy/tree"
)

// Alter picks one random node and returns a new root in which that node
// has been replaced by m(node), with every ancestor on the path freshly
// cloned and every other subtree reused by reference. Exactly one node in
// the result differs in content or children from its counterpart in the
// input; ancestors differ only in which child object they point at.
//
// A tree with fewer than two nodes below the root has no selectable edge;
// Alter then returns the root unchanged.
func Alter(src entropy.Source, root *tree.Node, m Mutation) *tree.Node {
	if tree.Count(root) < 2 {
		return root
	}
	edge := tree.RandomEdge(src, root)
	return root.CloneTree(edge.Node.Family(), func(n *tree.Node) *tree.Node {
		return m(src, n)
	})
}

// AlterAny picks one operator uniformly from the list, then delegates to
// Alter. Panics on an empty list.
func AlterAny(src entropy.Source, root *tree.Node, ms []Mutation) *tree.Node {
	if len(ms) == 0 {
		panic("canopy: AlterAny called with no mutations")
	}
	return Alter(src, root, ms[src.Int(0, len(ms)-1)])
}
