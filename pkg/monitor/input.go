package monitor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/popup/pkg/monitor/mouse"
)

const (
	regionToggle   = "toggle"
	regionBackdrop = "backdrop"
	regionPanel    = "panel"
)

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Toggle):
		return m.setRequested(!m.Requested)

	case key.Matches(msg, m.keys.Close):
		return m.setRequested(false)

	case key.Matches(msg, m.keys.Next):
		return m.turnPage(1)
	}

	return m, nil
}

// turnPage moves delta pages, wrapping, and re-observes so the popup picks
// up the new content.
func (m Model) turnPage(delta int) (tea.Model, tea.Cmd) {
	n := len(m.Pages)
	if n == 0 {
		return m, nil
	}
	m.PageIdx = ((m.PageIdx+delta)%n + n) % n
	return m.observe()
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	action := m.mouse.HandleMouse(msg)
	if action.Region == nil {
		return m, nil
	}

	switch action.Type {
	case mouse.ActionScrollDown:
		if action.Region.ID == regionPanel {
			return m.turnPage(1)
		}
		return m, nil
	case mouse.ActionScrollUp:
		if action.Region.ID == regionPanel {
			return m.turnPage(-1)
		}
		return m, nil
	case mouse.ActionClick, mouse.ActionDoubleClick:
	default:
		return m, nil
	}

	switch action.Region.ID {
	case regionPanel:
		if action.Type == mouse.ActionDoubleClick {
			return m.setRequested(false)
		}
	case regionToggle:
		return m.setRequested(!m.Requested)
	case regionBackdrop:
		if m.closeOnBackdrop {
			return m.setRequested(false)
		}
	}

	// Single clicks on the panel, and clicks on the backdrop when it does
	// not dismiss, are absorbed.
	return m, nil
}
