package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/popup/internal/popup"
	"github.com/marcus/popup/pkg/monitor"
	"github.com/marcus/popup/pkg/monitor/modal"
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the interactive popup demo",
	Long: `Opens a full-screen terminal page with a popup you can toggle.

Press o or space (or click the button) to request open/close, n to swap the popup
content, esc to request close and q to quit. Requests made while a fade is playing
take effect when it finishes.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m := monitor.New(monitor.Options{
			Config: cfg,
			Pages:  demoPages(),
			Logger: logger,
		})

		logger.Info("demo started", "animation", cfg.Appearance().AnimationDuration.String())
		if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run(); err != nil {
			return fmt.Errorf("run demo: %w", err)
		}
		logger.Info("demo finished")
		return nil
	},
}

func demoPages() [][]popup.Node {
	return [][]popup.Node{
		{
			modal.Title("Welcome"),
			modal.Text("Hello from the popup."),
			modal.Spacer(),
			modal.List(
				"opens with a fade-in",
				"closes with a fade-out",
				"ignores requests while fading",
			),
		},
		{
			modal.Markdown("## Content swaps\n\nContent is captured on **every** observation, even while the popup is closed."),
		},
		{
			modal.Text("Swap content while the popup is closing and the new content shows at once, fading out with the panel."),
		},
	}
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
