package output

import (
	"fmt"
	"strings"

	"github.com/marcus/popup/internal/popup"
)

// TreeNode represents a node in a tree structure for rendering
type TreeNode struct {
	Label    string
	Detail   string
	Children []TreeNode
}

// TreeRenderOptions configures tree rendering behavior
type TreeRenderOptions struct {
	MaxDepth   int  // 0 = unlimited
	ShowDetail bool // Whether to append node details
}

// RenderTree renders a tree starting from a single root node, root included
func RenderTree(root TreeNode, opts TreeRenderOptions) string {
	lines := []string{nodeText(root, opts)}
	lines = append(lines, renderTreeNodes(root.Children, opts, 1, "")...)
	return strings.Join(lines, "\n")
}

// RenderTreeLines renders multiple root nodes and returns individual lines
// Useful for embedding trees in other output
func RenderTreeLines(roots []TreeNode, opts TreeRenderOptions) []string {
	return renderTreeNodes(roots, opts, 0, "")
}

func nodeText(node TreeNode, opts TreeRenderOptions) string {
	if opts.ShowDetail && node.Detail != "" {
		return node.Label + " " + node.Detail
	}
	return node.Label
}

// renderTreeNodes recursively renders tree nodes
func renderTreeNodes(nodes []TreeNode, opts TreeRenderOptions, depth int, prefix string) []string {
	if opts.MaxDepth > 0 && depth >= opts.MaxDepth {
		return nil
	}

	var lines []string

	for i, node := range nodes {
		isLast := i == len(nodes)-1

		connector := "\u251c\u2500\u2500 " // ├──
		if isLast {
			connector = "\u2514\u2500\u2500 " // └──
		}

		lines = append(lines, prefix+connector+nodeText(node, opts))

		childPrefix := prefix
		if isLast {
			childPrefix += "    "
		} else {
			childPrefix += "\u2502   " // │
		}

		lines = append(lines, renderTreeNodes(node.Children, opts, depth+1, childPrefix)...)
	}

	return lines
}

// PopupTree converts a popup visual tree into printable nodes
func PopupTree(t popup.Tree) TreeNode {
	if t.Empty() {
		return TreeNode{Label: "placeholder", Detail: "(empty)"}
	}

	o := t.Overlay
	wrapper := TreeNode{
		Label:  "overlay",
		Detail: fmt.Sprintf("z=%d animation=%s", o.ZIndex, animationText(o.Animation)),
	}

	backdrop := TreeNode{
		Label: "backdrop",
		Detail: fmt.Sprintf("z=%d color=%s opacity=%.2f fixed=%v blocks-input=%v",
			o.Backdrop.ZIndex, o.Backdrop.Color, o.Backdrop.Opacity, o.Backdrop.Fixed, o.Backdrop.BlocksInput),
	}

	panel := TreeNode{
		Label:  "panel",
		Detail: fmt.Sprintf("z=%d centered=%v nodes=%d", o.Panel.ZIndex, o.Panel.Centered, len(o.Panel.Content)),
	}
	for i, n := range o.Panel.Content {
		panel.Children = append(panel.Children, TreeNode{
			Label:  fmt.Sprintf("node[%d]", i),
			Detail: nodeSummary(n),
		})
	}

	wrapper.Children = []TreeNode{backdrop, panel}
	return wrapper
}

func animationText(a *popup.Animation) string {
	if a == nil {
		return "none"
	}
	fill := ""
	if a.HoldEnd {
		fill = " forwards"
	}
	return fmt.Sprintf("%s %.1fs x%d%s", a.Name, a.Duration.Seconds(), a.Iterations, fill)
}

func nodeSummary(n popup.Node) string {
	return truncate(fmt.Sprint(n), 40)
}

func truncate(s string, max int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
