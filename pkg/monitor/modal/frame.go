package modal

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/marcus/popup/internal/popup"
	"github.com/marcus/popup/pkg/monitor/mouse"
)

const (
	defaultPanelWidth = 50
	minPanelWidth     = 12
)

// Rendered is one composed screen.
type Rendered struct {
	View     string
	Visible  bool    // an overlay is on screen
	Opacity  float64 // current overlay opacity
	Backdrop mouse.Rect
	Panel    mouse.Rect
}

// Option configures Frame.
type Option func(*frameOptions)

type frameOptions struct {
	panelWidth int
}

// WithPanelWidth sets the outer panel width in cells, border included.
func WithPanelWidth(w int) Option {
	return func(o *frameOptions) {
		if w > 0 {
			o.panelWidth = w
		}
	}
}

// Frame composes tree over page on a width × height screen, elapsed time
// into the current animation.
func Frame(tree popup.Tree, page string, width, height int, elapsed time.Duration, opts ...Option) Rendered {
	o := frameOptions{panelWidth: defaultPanelWidth}
	for _, opt := range opts {
		opt(&o)
	}

	lines := fitLines(page, width, height)
	if tree.Empty() {
		return Rendered{View: strings.Join(lines, "\n"), Opacity: 1}
	}

	overlay := tree.Overlay
	opacity := Opacity(overlay.Animation, elapsed)
	out := Rendered{
		Visible:  true,
		Opacity:  opacity,
		Backdrop: mouse.Rect{X: 0, Y: 0, W: width, H: height},
	}

	if amount := overlay.Backdrop.Opacity * opacity; amount > 0 {
		for i, line := range lines {
			lines[i] = dim(ansi.Strip(line), overlay.Backdrop.Color, amount)
		}
	}

	if opacity > 0 {
		panelW := clampInt(o.panelWidth, minPanelWidth, max(minPanelWidth, width))
		panel := renderPanel(overlay.Panel, panelW, opacity)
		pw, ph := lipgloss.Width(panel), lipgloss.Height(panel)

		x, y := 0, 0
		if overlay.Panel.Centered {
			x = max(0, (width-pw)/2)
			y = max(0, (height-ph)/2)
		}
		splice(lines, strings.Split(panel, "\n"), x, y, width)
		out.Panel = mouse.Rect{X: x, Y: y, W: min(pw, width-x), H: min(ph, height-y)}
	}

	out.View = strings.Join(lines, "\n")
	return out
}

// renderPanel boxes the content nodes. outerWidth includes the border.
func renderPanel(p popup.Panel, outerWidth int, opacity float64) string {
	// Border takes one cell per side, padding another.
	contentWidth := max(1, outerWidth-4)

	parts := make([]string, 0, len(p.Content))
	for _, n := range p.Content {
		parts = append(parts, renderNode(n, contentWidth))
	}
	return panelStyle(outerWidth-2, opacity).Render(strings.Join(parts, "\n"))
}

// fitLines pads or cuts page to exactly height lines of width cells.
func fitLines(page string, width, height int) []string {
	src := strings.Split(page, "\n")
	lines := make([]string, height)
	for i := range lines {
		line := ""
		if i < len(src) {
			line = src[i]
		}
		w := ansi.StringWidth(line)
		switch {
		case w > width:
			line = ansi.Truncate(line, width, "")
		case w < width:
			line += strings.Repeat(" ", width-w)
		}
		lines[i] = line
	}
	return lines
}

// splice overwrites lines with block starting at column x, row y.
func splice(lines, block []string, x, y, width int) {
	for i, b := range block {
		row := y + i
		if row < 0 || row >= len(lines) {
			continue
		}
		if x+ansi.StringWidth(b) > width {
			b = ansi.Truncate(b, width-x, "")
		}
		base := lines[row]
		left := ansi.Truncate(base, x, "")
		right := ansi.TruncateLeft(base, x+ansi.StringWidth(b), "")
		lines[row] = left + b + right
	}
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(hi, v))
}
