package cmd

import (
	"fmt"

	"github.com/agentic-research/canopy/api"
	"github.com/agentic-research/canopy/tree"
)

// exportNode converts a tree into plain maps for JSON output. Only props
// that differ from the schema defaults are included, which keeps dumps of
// large fixtures readable.
func exportNode(n *tree.Node) map[string]any {
	out := map[string]any{
		"tag": int(n.Family().Tag()),
	}

	if props, ok := n.Props().(*api.Props); ok {
		if diff := exportProps(props); len(diff) > 0 {
			out["props"] = diff
		}
	}

	if children := n.Children(); len(children) > 0 {
		exported := make([]any, len(children))
		for i, child := range children {
			exported[i] = exportNode(child)
		}
		out["children"] = exported
	}
	return out
}

func exportProps(p *api.Props) map[string]any {
	defaults := api.DefaultProps()
	diff := map[string]any{}

	if p.NativeID != defaults.NativeID {
		diff["nativeId"] = p.NativeID
	}
	if p.BackgroundColor != nil {
		diff["backgroundColor"] = colorString(p.BackgroundColor)
	}
	if p.ForegroundColor != nil {
		diff["foregroundColor"] = colorString(p.ForegroundColor)
	}
	if p.ShadowColor != nil {
		diff["shadowColor"] = colorString(p.ShadowColor)
	}
	if p.Accessible != defaults.Accessible {
		diff["accessible"] = p.Accessible
	}
	if p.ZIndex != defaults.ZIndex {
		diff["zIndex"] = p.ZIndex
	}
	if p.PointerEvents != defaults.PointerEvents {
		diff["pointerEvents"] = string(p.PointerEvents)
	}
	if p.Transform != defaults.Transform {
		diff["transform"] = string(p.Transform)
	}
	if p.FlexDirection != defaults.FlexDirection {
		diff["flexDirection"] = string(p.FlexDirection)
	}

	for _, name := range api.LayoutPropNames {
		if v := api.LayoutValue(p, name); v != 0 {
			diff[name] = v
		}
	}
	return diff
}

func colorString(c *api.Color) string {
	return fmt.Sprintf("#%08x", uint32(*c))
}
