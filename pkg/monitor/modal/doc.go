// Package modal draws a popup visual tree onto a terminal screen.
//
// The popup core decides what should be on screen; this package decides how
// it looks in a terminal. Frame dims the page underneath with the backdrop
// color, boxes the content in a bordered panel, centers the panel and splices
// it over the dimmed page. Opening and closing animations fade both layers by
// blending colors toward the terminal background.
//
// # Quick Start
//
//	tree := popup.Render(state)
//	out := modal.Frame(tree, pageView, width, height, elapsed, modal.WithPanelWidth(60))
//	// out.View is the screen; out.Panel and out.Backdrop are hit rectangles.
//
// # Content Sections
//
// Content nodes may be any value. Values implementing Section render
// themselves; strings and fmt.Stringer values are wrapped as Text.
//
//   - Text(s string) - static text, auto-wrapped
//   - Spacer() - blank line
//   - List(items ...string) - bulleted list
//   - Markdown(src string) - markdown rendered with glamour
package modal
