// Package api defines the component schema for canopy trees: the typed
// attribute bundle attached to every node and the descriptor that mints
// nodes and families. The rest of the engine treats props as opaque; only
// the mutation operators know the concrete fields listed here.
package api

import (
	"fmt"

	"github.com/agentic-research/canopy/tree"
)

// Color is a packed ARGB value. Props hold *Color so that "no color set"
// (nil) is distinct from an explicit color.
type Color uint32

// White returns a pointer to opaque white.
func White() *Color {
	c := Color(0xffffffff)
	return &c
}

// Black returns a pointer to opaque black.
func Black() *Color {
	c := Color(0xff000000)
	return &c
}

// PointerEvents selects how a node participates in pointer interaction.
type PointerEvents string

const (
	PointerEventsAuto PointerEvents = "auto"
	PointerEventsNone PointerEvents = "none"
)

// Transform is a rendered transform expression.
type Transform string

const (
	TransformIdentity    Transform = "identity"
	TransformPerspective Transform = "perspective(42)"
)

// Direction is the flex layout axis.
type Direction string

const (
	DirectionRow    Direction = "row"
	DirectionColumn Direction = "column"
)

// Props is the attribute bundle for one node. The first group holds the
// cosmetic flags the flag-toggling operator flips; the second group holds
// the layout-relevant values the layout operator perturbs. A zero numeric
// value means "unset".
type Props struct {
	NativeID        string        `json:"nativeId,omitempty"`
	BackgroundColor *Color        `json:"backgroundColor,omitempty"`
	ForegroundColor *Color        `json:"foregroundColor,omitempty"`
	ShadowColor     *Color        `json:"shadowColor,omitempty"`
	Accessible      bool          `json:"accessible,omitempty"`
	ZIndex          int           `json:"zIndex,omitempty"`
	PointerEvents   PointerEvents `json:"pointerEvents,omitempty"`
	Transform       Transform     `json:"transform,omitempty"`

	FlexDirection Direction `json:"flexDirection,omitempty"`
	Flex          int       `json:"flex,omitempty"`
	FlexGrow      int       `json:"flexGrow,omitempty"`
	FlexShrink    int       `json:"flexShrink,omitempty"`
	FlexBasis     int       `json:"flexBasis,omitempty"`
	Left          int       `json:"left,omitempty"`
	Top           int       `json:"top,omitempty"`
	MarginLeft    int       `json:"marginLeft,omitempty"`
	MarginTop     int       `json:"marginTop,omitempty"`
	MarginRight   int       `json:"marginRight,omitempty"`
	MarginBottom  int       `json:"marginBottom,omitempty"`
	PaddingLeft   int       `json:"paddingLeft,omitempty"`
	PaddingTop    int       `json:"paddingTop,omitempty"`
	PaddingRight  int       `json:"paddingRight,omitempty"`
	PaddingBottom int       `json:"paddingBottom,omitempty"`
	Width         int       `json:"width,omitempty"`
	Height        int       `json:"height,omitempty"`
	MaxWidth      int       `json:"maxWidth,omitempty"`
	MaxHeight     int       `json:"maxHeight,omitempty"`
	MinWidth      int       `json:"minWidth,omitempty"`
	MinHeight     int       `json:"minHeight,omitempty"`
}

// LayoutPropNames is the closed list of numeric layout props that the
// layout-perturbing operator may override through RawProps.
var LayoutPropNames = []string{
	"flex", "flexGrow", "flexShrink", "flexBasis",
	"left", "top", "marginLeft", "marginTop",
	"marginRight", "marginBottom", "paddingLeft", "paddingTop",
	"paddingRight", "paddingBottom", "width", "height",
	"maxWidth", "maxHeight", "minWidth", "minHeight",
}

// RawProps is an untyped override bundle applied on top of an existing
// Props value by CloneProps. Keys are the JSON names above plus
// "flexDirection".
type RawProps map[string]any

// DefaultProps returns the props every freshly generated node starts with.
func DefaultProps() *Props {
	return &Props{
		PointerEvents: PointerEventsAuto,
		Transform:     TransformIdentity,
		FlexDirection: DirectionColumn,
	}
}

// CloneProps returns a copy of old with the raw overrides applied. The old
// value is never modified. Unknown keys and mistyped values panic: an
// override that silently vanished would hide a broken fixture.
func CloneProps(old *Props, raw RawProps) *Props {
	next := *old

	for name, value := range raw {
		if name == "flexDirection" {
			next.FlexDirection = Direction(mustString(name, value))
			continue
		}
		field := layoutField(&next, name)
		if field == nil {
			panic(fmt.Sprintf("canopy: unknown raw prop %q", name))
		}
		*field = mustInt(name, value)
	}
	return &next
}

// LayoutValue returns the named numeric layout prop's current value.
// Panics on a name outside LayoutPropNames.
func LayoutValue(p *Props, name string) int {
	field := layoutField(p, name)
	if field == nil {
		panic(fmt.Sprintf("canopy: unknown layout prop %q", name))
	}
	return *field
}

func layoutField(p *Props, name string) *int {
	switch name {
	case "flex":
		return &p.Flex
	case "flexGrow":
		return &p.FlexGrow
	case "flexShrink":
		return &p.FlexShrink
	case "flexBasis":
		return &p.FlexBasis
	case "left":
		return &p.Left
	case "top":
		return &p.Top
	case "marginLeft":
		return &p.MarginLeft
	case "marginTop":
		return &p.MarginTop
	case "marginRight":
		return &p.MarginRight
	case "marginBottom":
		return &p.MarginBottom
	case "paddingLeft":
		return &p.PaddingLeft
	case "paddingTop":
		return &p.PaddingTop
	case "paddingRight":
		return &p.PaddingRight
	case "paddingBottom":
		return &p.PaddingBottom
	case "width":
		return &p.Width
	case "height":
		return &p.Height
	case "maxWidth":
		return &p.MaxWidth
	case "maxHeight":
		return &p.MaxHeight
	case "minWidth":
		return &p.MinWidth
	case "minHeight":
		return &p.MinHeight
	}
	return nil
}

func mustInt(name string, value any) int {
	v, ok := value.(int)
	if !ok {
		panic(fmt.Sprintf("canopy: raw prop %q wants an int, got %T", name, value))
	}
	return v
}

func mustString(name string, value any) string {
	v, ok := value.(string)
	if !ok {
		panic(fmt.Sprintf("canopy: raw prop %q wants a string, got %T", name, value))
	}
	return v
}

// Descriptor mints nodes and families for one component kind. It owns the
// tag allocator so that identities stay unique across everything it
// creates, including concurrent generation.
type Descriptor struct {
	tags *tree.TagAllocator
}

// NewDescriptor returns a descriptor with a fresh tag allocator.
func NewDescriptor() *Descriptor {
	return &Descriptor{tags: tree.NewTagAllocator()}
}

// NewDescriptorWithTags returns a descriptor using the supplied allocator,
// letting tests predict the identities it will mint.
func NewDescriptorWithTags(tags *tree.TagAllocator) *Descriptor {
	return &Descriptor{tags: tags}
}

// CreateFamily mints a fresh family identity.
func (d *Descriptor) CreateFamily() *tree.Family {
	return d.tags.NewFamily()
}

// CreateNode builds a node from a fragment and a family. A nil fragment
// Props gets the schema defaults.
func (d *Descriptor) CreateNode(f tree.Fragment, family *tree.Family) *tree.Node {
	props := f.Props
	if props == nil {
		props = DefaultProps()
	}
	return tree.New(family, props, f.Children)
}

// CloneProps applies raw overrides on top of old; see the package function.
func (d *Descriptor) CloneProps(old *Props, raw RawProps) *Props {
	return CloneProps(old, raw)
}
