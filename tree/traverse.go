package tree

import (
	"fmt"

	"github.com/agentic-research/canopy/entropy"
)

// Edge identifies one node's position within its parent's children.
type Edge struct {
	Node   *Node
	Parent *Node
	Index  int
}

// Walk visits every node below root in pre-order: parents before children,
// children in listed order. The root itself is never passed to visit. If
// visit returns false the whole walk stops immediately, including siblings
// and unexplored subtrees. Walk reports whether it was stopped early.
func Walk(root *Node, visit func(Edge) bool) bool {
	for i, child := range root.children {
		if !visit(Edge{Node: child, Parent: root, Index: i}) {
			return true
		}
		if Walk(child, visit) {
			return true
		}
	}
	return false
}

// Count returns the number of nodes below root (the root is not counted).
func Count(root *Node) int {
	count := 0
	Walk(root, func(Edge) bool {
		count++
		return true
	})
	return count
}

// EdgeAt returns the edge at the given 0-based pre-order index into the
// non-root node sequence. It panics when the index is out of range: a bad
// index means the caller asked for an invalid fixture, and a silently
// defaulted edge would corrupt the input fed to the system under test.
func EdgeAt(root *Node, index int) Edge {
	if index < 0 {
		panic(fmt.Sprintf("canopy: node index %d is negative", index))
	}

	var (
		result Edge
		found  bool
	)
	counter := 0
	Walk(root, func(e Edge) bool {
		if counter == index {
			result = e
			found = true
			return false
		}
		counter++
		return true
	})

	if !found {
		panic(fmt.Sprintf("canopy: node index %d out of range, tree has %d nodes below root", index, counter))
	}
	return result
}

// RandomEdge selects a uniformly random edge in the tree. The index is
// drawn from [1, Count(root)-1]: pre-order index 0 is never selected, a
// convention kept stable so seeded fixtures stay reproducible. Requires at
// least two nodes below the root; panics otherwise.
func RandomEdge(src entropy.Source, root *Node) Edge {
	count := Count(root)
	if count < 2 {
		panic(fmt.Sprintf("canopy: random edge needs at least 2 nodes below root, tree has %d", count))
	}
	return EdgeAt(root, src.Int(1, count-1))
}
