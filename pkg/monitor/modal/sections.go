package modal

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/marcus/popup/internal/popup"
)

// Section is a content node that knows how to draw itself inside a panel.
type Section interface {
	Render(contentWidth int) string
}

type textSection struct {
	text string
}

// Text creates a static text section, wrapped to the panel width.
func Text(s string) Section {
	return textSection{text: s}
}

func (s textSection) Render(contentWidth int) string {
	return Body.Width(contentWidth).Render(s.text)
}

func (s textSection) String() string {
	return s.text
}

type titleSection struct {
	text string
}

// Title creates a bold heading, truncated to one line.
func Title(s string) Section {
	return titleSection{text: s}
}

func (s titleSection) Render(contentWidth int) string {
	return ModalTitle.Render(ansi.Truncate(s.text, contentWidth, "…"))
}

func (s titleSection) String() string {
	return s.text
}

type spacerSection struct{}

// Spacer creates a blank line.
func Spacer() Section {
	return spacerSection{}
}

func (spacerSection) Render(int) string { return "" }

func (spacerSection) String() string { return "" }

type listSection struct {
	items []string
}

// List creates a bulleted list section.
func List(items ...string) Section {
	return listSection{items: items}
}

func (s listSection) Render(contentWidth int) string {
	if len(s.items) == 0 {
		return MutedText.Render("(no items)")
	}

	bullet := ListBullet.Render("• ")
	itemWidth := max(1, contentWidth-lipgloss.Width(bullet))

	lines := make([]string, 0, len(s.items))
	for _, item := range s.items {
		body := ListItemNormal.Width(itemWidth).Render(item)
		// Indent continuation lines under the bullet
		body = strings.ReplaceAll(body, "\n", "\n"+strings.Repeat(" ", lipgloss.Width(bullet)))
		lines = append(lines, bullet+body)
	}
	return strings.Join(lines, "\n")
}

func (s listSection) String() string {
	return strings.Join(s.items, ", ")
}

type markdownSection struct {
	src   string
	width int
	out   string
}

// Markdown creates a section rendered with glamour. Rendering failures fall
// back to the raw source as plain text.
func Markdown(src string) Section {
	return &markdownSection{src: src}
}

func (s *markdownSection) Render(contentWidth int) string {
	if s.out != "" && s.width == contentWidth {
		return s.out
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(contentWidth),
	)
	if err != nil {
		return Text(s.src).Render(contentWidth)
	}
	out, err := r.Render(s.src)
	if err != nil {
		return Text(s.src).Render(contentWidth)
	}

	s.width = contentWidth
	s.out = strings.Trim(out, "\n")
	return s.out
}

func (s *markdownSection) String() string {
	return s.src
}

// renderNode draws one content node.
func renderNode(n popup.Node, contentWidth int) string {
	switch v := n.(type) {
	case Section:
		return v.Render(contentWidth)
	case string:
		return Text(v).Render(contentWidth)
	case fmt.Stringer:
		return Text(v.String()).Render(contentWidth)
	default:
		return Text(fmt.Sprint(v)).Render(contentWidth)
	}
}
