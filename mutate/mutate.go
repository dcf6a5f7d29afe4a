// Package mutate implements the closed set of randomized mutation
// operators and the driver that applies one operator to one random node
// per step. Every operator is pure: it never touches its input node and
// always preserves the node's family, so a differ consuming successive
// roots sees "same logical node, different content".
package mutate

import (
	"github.com/agentic-research/canopy/api"
	"github.com/agentic-research/canopy/entropy"
	"github.com/agentic-research/canopy/tree"
)

// Mutation transforms one node into a freshly cloned replacement.
type Mutation func(src entropy.Source, node *tree.Node) *tree.Node

// Default is the full operator set.
var Default = []Mutation{ShuffleChildren, ToggleFlags, PerturbLayout}

// flipProbability is the chance that any single cosmetic flag changes in
// one ToggleFlags application. Low on purpose: most applications change
// zero or one field, which keeps generated diffs small.
const flipProbability = 0.1

// layoutProbability is the per-prop chance in PerturbLayout.
const layoutProbability = 0.1

// layoutMax bounds every perturbed numeric layout value to [0, layoutMax].
const layoutMax = 1024

// ShuffleChildren clones the node's entire direct children list (families
// preserved, grandchildren untouched) and randomly permutes its order.
// Attributes are unchanged. Models "children reordered" diffs.
func ShuffleChildren(src entropy.Source, node *tree.Node) *tree.Node {
	children := node.Children()
	cloned := make([]*tree.Node, len(children))
	for i, child := range children {
		cloned[i] = child.Clone(tree.Fragment{})
	}
	src.Shuffle(len(cloned), func(i, j int) {
		cloned[i], cloned[j] = cloned[j], cloned[i]
	})
	return node.Clone(tree.Fragment{Children: cloned})
}

// ToggleFlags flips each cosmetic flag independently with low probability
// to one of exactly two alternative values. Children and layout props are
// unchanged. Models "leaf attribute changed" diffs that never affect
// layout.
func ToggleFlags(src entropy.Source, node *tree.Node) *tree.Node {
	next := api.CloneProps(node.Props().(*api.Props), nil)

	if src.Bool(flipProbability) {
		if src.Bool(0.5) {
			next.NativeID = "42"
		} else {
			next.NativeID = ""
		}
	}

	if src.Bool(flipProbability) {
		if src.Bool(0.5) {
			next.BackgroundColor = nil
		} else {
			next.BackgroundColor = api.White()
		}
	}

	if src.Bool(flipProbability) {
		if src.Bool(0.5) {
			next.ForegroundColor = nil
		} else {
			next.ForegroundColor = api.Black()
		}
	}

	if src.Bool(flipProbability) {
		if src.Bool(0.5) {
			next.ShadowColor = nil
		} else {
			next.ShadowColor = api.Black()
		}
	}

	if src.Bool(flipProbability) {
		next.Accessible = src.Bool(0.5)
	}

	if src.Bool(flipProbability) {
		if src.Bool(0.5) {
			next.ZIndex = 1
		} else {
			next.ZIndex = 0
		}
	}

	if src.Bool(flipProbability) {
		if src.Bool(0.5) {
			next.PointerEvents = api.PointerEventsAuto
		} else {
			next.PointerEvents = api.PointerEventsNone
		}
	}

	if src.Bool(flipProbability) {
		if src.Bool(0.5) {
			next.Transform = api.TransformIdentity
		} else {
			next.Transform = api.TransformPerspective
		}
	}

	return node.Clone(tree.Fragment{Props: next})
}

// PerturbLayout rewrites layout-relevant props: the flex direction with
// probability 0.5, and each numeric layout prop independently with low
// probability to a uniform value in [0, layoutMax]. Children are
// unchanged. Models "layout-affecting prop changed" diffs, which a differ
// must treat differently from cosmetic ones.
func PerturbLayout(src entropy.Source, node *tree.Node) *tree.Node {
	raw := api.RawProps{}

	if src.Bool(0.5) {
		if src.Bool(0.5) {
			raw["flexDirection"] = string(api.DirectionRow)
		} else {
			raw["flexDirection"] = string(api.DirectionColumn)
		}
	}

	for _, name := range api.LayoutPropNames {
		if src.Bool(layoutProbability) {
			raw[name] = src.Int(0, layoutMax)
		}
	}

	next := api.CloneProps(node.Props().(*api.Props), raw)
	return node.Clone(tree.Fragment{Props: next})
}
