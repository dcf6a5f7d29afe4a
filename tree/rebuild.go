package tree

import (
	"fmt"
)

// CloneTree returns a new root in which the unique node carrying the target
// family has been replaced by transform(node). Every ancestor on the path
// from root to the target is freshly cloned with a new children list; every
// node off that path, including all sibling subtrees, is reused by
// reference. Allocation cost is O(depth), not O(tree size).
//
// The target family must be present in the tree. Callers normally obtain it
// from an Edge selected against the same root; CloneTree panics when the
// family is absent.
func (n *Node) CloneTree(target *Family, transform func(*Node) *Node) *Node {
	root, ok := n.cloneTree(target, transform)
	if !ok {
		panic(fmt.Sprintf("canopy: family %d not present in tree rooted at %d", target.Tag(), n.family.Tag()))
	}
	return root
}

func (n *Node) cloneTree(target *Family, transform func(*Node) *Node) (*Node, bool) {
	if n.family == target {
		return transform(n), true
	}

	for i, child := range n.children {
		replaced, ok := child.cloneTree(target, transform)
		if !ok {
			continue
		}
		children := make([]*Node, len(n.children))
		copy(children, n.children)
		children[i] = replaced
		return n.Clone(Fragment{Children: children}), true
	}
	return nil, false
}
