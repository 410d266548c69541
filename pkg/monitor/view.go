package monitor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/marcus/popup/pkg/monitor/modal"
	"github.com/marcus/popup/pkg/monitor/mouse"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))

	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("238")).
			Padding(0, 2)

	buttonHoverStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("255")).
				Background(lipgloss.Color("245")).
				Padding(0, 2)

	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Page layout: the toggle button sits on this row, indented by one cell.
const (
	buttonRow = 2
	buttonCol = 1
)

// View implements tea.Model. It also refreshes the mouse hit regions to
// match what was drawn.
func (m Model) View() string {
	if m.Width <= 0 || m.Height <= 0 {
		return ""
	}

	button := m.buttonView()
	out := modal.Frame(
		m.appearance.Render(m.State),
		m.pageView(button),
		m.Width, m.Height,
		m.elapsed,
		modal.WithPanelWidth(m.panelWidth),
	)

	m.mouse.HitMap.Clear()
	m.mouse.HitMap.Add(regionToggle, mouse.Rect{
		X: buttonCol, Y: buttonRow,
		W: lipgloss.Width(button), H: lipgloss.Height(button),
	}, nil)
	if out.Visible {
		m.mouse.HitMap.Add(regionBackdrop, out.Backdrop, nil)
		m.mouse.HitMap.Add(regionPanel, out.Panel, nil)
	}

	return out.View
}

func (m Model) buttonView() string {
	label := " Open popup "
	if m.Requested {
		label = " Close popup "
	}
	style := buttonStyle
	if m.mouse.Hovered() == regionToggle {
		style = buttonHoverStyle
	}
	return style.Render(label)
}

func (m Model) pageView(button string) string {
	indent := strings.Repeat(" ", buttonCol)

	lines := []string{
		indent + titleStyle.Render("popup demo"),
		"",
		indent + button,
		"",
		indent + statusStyle.Render(m.statusLine()),
	}

	// Pad so the help line lands on the bottom row.
	for len(lines) < m.Height-1 {
		lines = append(lines, "")
	}
	lines = append(lines, indent+m.help.View(m.keys))

	return strings.Join(lines, "\n")
}

func (m Model) statusLine() string {
	content := "none"
	if m.State.HasContent() {
		content = fmt.Sprintf("%d nodes", len(m.State.Content()))
	}
	page := "-"
	if len(m.Pages) > 0 {
		page = fmt.Sprintf("%d/%d", m.PageIdx+1, len(m.Pages))
	}
	return fmt.Sprintf("state: %s  requested: %v  page: %s  content: %s",
		m.State.Visibility(), m.Requested, page, content)
}
