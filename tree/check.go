package tree

import (
	"fmt"

	"github.com/RoaringBitmap/roaring"
)

// CheckIntegrity verifies that every family tag in the tree occurs exactly
// once. A duplicate tag means the tree aliases one node in two positions or
// contains a cycle, either of which breaks the strict-hierarchy contract
// the rebuild algorithm depends on.
func CheckIntegrity(root *Node) error {
	seen := roaring.New()
	seen.Add(uint32(root.family.tag))

	var dup Tag
	stopped := Walk(root, func(e Edge) bool {
		tag := uint32(e.Node.family.tag)
		if seen.Contains(tag) {
			dup = e.Node.family.tag
			return false
		}
		seen.Add(tag)
		return true
	})

	if stopped {
		return fmt.Errorf("tree integrity: family tag %d appears more than once", dup)
	}
	return nil
}

// SharedNodes returns how many nodes below b are reference-identical to a
// node below a. Path-copying keeps this high: after one mutation only the
// mutated node, its ancestors, and any re-cloned direct children differ.
func SharedNodes(a, b *Node) int {
	inA := make(map[*Node]struct{})
	Walk(a, func(e Edge) bool {
		inA[e.Node] = struct{}{}
		return true
	})

	shared := 0
	Walk(b, func(e Edge) bool {
		if _, ok := inA[e.Node]; ok {
			shared++
		}
		return true
	})
	return shared
}
