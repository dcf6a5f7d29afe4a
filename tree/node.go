// Package tree implements a persistent, structurally shared UI node tree.
// Nodes are immutable once constructed: every change produces a new Node
// value, and unchanged subtrees are reused by reference across versions.
package tree

import (
	"sync/atomic"
)

// Tag is the numeric identity minted for a family.
type Tag int

// Family is the stable identity token shared by every clone that represents
// the same logical node across successive tree versions. Two Node values
// with the same *Family are "the same element, possibly evolved"; a fresh
// Family means a structurally new node.
type Family struct {
	tag Tag
}

// Tag returns the family's numeric identity.
func (f *Family) Tag() Tag {
	return f.tag
}

// TagAllocator mints unique tags. It is safe for concurrent use: two nodes
// must never receive the same identity even when generation runs across
// goroutines.
type TagAllocator struct {
	next int64
}

// Tags start at 1000 so fixture dumps are visually distinct from indices.
const firstTag = 1000

// NewTagAllocator returns an allocator whose first tag is 1000.
func NewTagAllocator() *TagAllocator {
	return &TagAllocator{next: firstTag}
}

// Next returns a tag that has not been handed out before.
func (a *TagAllocator) Next() Tag {
	return Tag(atomic.AddInt64(&a.next, 1) - 1)
}

// NewFamily mints a fresh family with a unique tag.
func (a *TagAllocator) NewFamily() *Family {
	return &Family{tag: a.Next()}
}

// Props is the opaque attribute bundle attached to a node. The tree package
// never looks inside it; it only carries the reference across clones.
type Props any

// Node is one immutable element of a UI tree. Children are shared, not
// exclusively owned: the same child subtree may be referenced by multiple
// tree versions produced by different clones.
type Node struct {
	family   *Family
	props    Props
	children []*Node
}

// New constructs a node. The children slice is owned by the node after the
// call; callers must not mutate it.
func New(family *Family, props Props, children []*Node) *Node {
	if family == nil {
		panic("canopy: node constructed without a family")
	}
	return &Node{family: family, props: props, children: children}
}

// Family returns the node's identity token.
func (n *Node) Family() *Family {
	return n.family
}

// Props returns the node's attribute bundle.
func (n *Node) Props() Props {
	return n.props
}

// Children returns the node's ordered child list. The slice is shared with
// the node and must not be mutated.
func (n *Node) Children() []*Node {
	return n.children
}

// Fragment is a partial node value used by Clone. A nil field means "reuse
// the receiver's field by reference".
type Fragment struct {
	Props    Props
	Children []*Node
}

// Clone returns a new node with the fragment's non-nil fields replaced and
// everything else, including the family, reused from the receiver. The
// receiver is never modified.
func (n *Node) Clone(f Fragment) *Node {
	props := n.props
	if f.Props != nil {
		props = f.Props
	}
	children := n.children
	if f.Children != nil {
		children = f.Children
	}
	return &Node{family: n.family, props: props, children: children}
}
