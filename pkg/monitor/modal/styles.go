package modal

import "github.com/charmbracelet/lipgloss"

// Colors used when fading. Blending needs hex values, so these mirror the
// 256-color palette entries used elsewhere in the monitor.
const (
	TerminalBackground = "#000000"
	PageText           = "#d0d0d0" // 252
	PanelText          = "#eeeeee" // 255
	PanelBorder        = "#ff87d7" // 212, primary
	Muted              = "#626262" // 241
)

// Text styles
var (
	ModalTitle = lipgloss.NewStyle().Bold(true)
	MutedText  = lipgloss.NewStyle().Foreground(lipgloss.Color(Muted))
	Body       = lipgloss.NewStyle() // Plain body text
)

// List styles for list sections
var (
	ListItemNormal = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	ListBullet = lipgloss.NewStyle().
			Foreground(lipgloss.Color(PanelBorder)).
			Bold(true)
)

// panelStyle returns the panel box style faded to opacity.
func panelStyle(width int, opacity float64) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(blend(TerminalBackground, PanelBorder, opacity))).
		Foreground(lipgloss.Color(blend(TerminalBackground, PanelText, opacity))).
		Padding(0, 1).
		Width(width)
}
