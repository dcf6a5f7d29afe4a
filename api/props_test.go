package api

import (
	"testing"

	"github.com/agentic-research/canopy/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultProps(t *testing.T) {
	p := DefaultProps()

	assert.Equal(t, PointerEventsAuto, p.PointerEvents)
	assert.Equal(t, TransformIdentity, p.Transform)
	assert.Equal(t, DirectionColumn, p.FlexDirection)
	assert.Nil(t, p.BackgroundColor)
	assert.Zero(t, p.Width)
}

func TestCloneProps_NoOverrides(t *testing.T) {
	old := DefaultProps()
	old.Width = 100

	next := CloneProps(old, nil)

	assert.NotSame(t, old, next)
	assert.Equal(t, *old, *next)
}

func TestCloneProps_AppliesLayoutOverrides(t *testing.T) {
	old := DefaultProps()
	next := CloneProps(old, RawProps{
		"width":      320,
		"marginLeft": 8,
	})

	assert.Equal(t, 320, next.Width)
	assert.Equal(t, 8, next.MarginLeft)
	assert.Zero(t, old.Width, "old props must never change")
}

func TestCloneProps_AppliesFlexDirection(t *testing.T) {
	next := CloneProps(DefaultProps(), RawProps{"flexDirection": "row"})
	assert.Equal(t, DirectionRow, next.FlexDirection)
}

func TestCloneProps_PanicsOnUnknownKey(t *testing.T) {
	assert.Panics(t, func() {
		CloneProps(DefaultProps(), RawProps{"borderRadius": 4})
	})
}

func TestCloneProps_PanicsOnMistypedValue(t *testing.T) {
	assert.Panics(t, func() {
		CloneProps(DefaultProps(), RawProps{"width": "wide"})
	})
	assert.Panics(t, func() {
		CloneProps(DefaultProps(), RawProps{"flexDirection": 1})
	})
}

func TestLayoutValue_CoversEveryListedProp(t *testing.T) {
	p := DefaultProps()
	for i, name := range LayoutPropNames {
		p = CloneProps(p, RawProps{name: i + 1})
	}
	for i, name := range LayoutPropNames {
		assert.Equal(t, i+1, LayoutValue(p, name), name)
	}
}

func TestDescriptor_CreateNode(t *testing.T) {
	desc := NewDescriptor()

	leaf := desc.CreateNode(tree.Fragment{}, desc.CreateFamily())
	require.NotNil(t, leaf.Props())
	assert.Equal(t, *DefaultProps(), *leaf.Props().(*Props))
	assert.Empty(t, leaf.Children())

	custom := &Props{Width: 10}
	parent := desc.CreateNode(tree.Fragment{
		Props:    custom,
		Children: []*tree.Node{leaf},
	}, desc.CreateFamily())
	assert.Same(t, custom, parent.Props())
	require.Len(t, parent.Children(), 1)
}

func TestDescriptor_MintsUniqueFamilies(t *testing.T) {
	desc := NewDescriptor()
	a := desc.CreateFamily()
	b := desc.CreateFamily()

	assert.NotSame(t, a, b)
	assert.NotEqual(t, a.Tag(), b.Tag())
}

func TestDescriptor_PredictableTagsWithInjectedAllocator(t *testing.T) {
	desc := NewDescriptorWithTags(tree.NewTagAllocator())
	assert.Equal(t, tree.Tag(1000), desc.CreateFamily().Tag())
	assert.Equal(t, tree.Tag(1001), desc.CreateFamily().Tag())
}
