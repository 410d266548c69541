package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/marcus/popup/internal/output"
	"github.com/marcus/popup/internal/popup"
	"github.com/spf13/cobra"
)

var (
	traceEventStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("45"))
	traceTransitionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	traceIgnoredStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

var traceCmd = &cobra.Command{
	Use:   "trace EVENT...",
	Short: "Replay a sequence of events through the popup state machine",
	Long: `Replay events and print the popup state after each one.

Events:
  open            observation with the open request set
  close           observation with the open request cleared
  finish          animation-finished signal
  content=A,B,..  observation carrying new content (request unchanged)

Example:
  popup trace content=A,B open finish close finish`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		showTree, _ := cmd.Flags().GetBool("tree")
		return runTrace(cmd.OutOrStdout(), args, showTree)
	},
}

// traceHost mirrors the host element: the declared open flag and its children.
type traceHost struct {
	requested bool
	children  []popup.Node
}

func (h *traceHost) OpenRequested() bool { return h.requested }
func (h *traceHost) Children() []popup.Node { return h.children }

func runTrace(w io.Writer, events []string, showTree bool) error {
	host := &traceHost{}
	state := popup.Initial()

	for _, ev := range events {
		next, err := applyTraceEvent(host, state, ev)
		if err != nil {
			return err
		}

		step := popup.Step{Prev: state, Next: next}
		state = next
		logger.Debug("trace event", "event", ev, "transition", step.Name(), "visibility", state.Visibility().String())

		if _, err := fmt.Fprintln(w, traceLine(ev, step)); err != nil {
			return err
		}
		if showTree {
			tree := output.RenderTree(output.PopupTree(popup.Render(state)), output.TreeRenderOptions{ShowDetail: true})
			if _, err := fmt.Fprintln(w, indent(tree, "    ")); err != nil {
				return err
			}
		}
	}
	return nil
}

func applyTraceEvent(host *traceHost, s popup.State, ev string) (popup.State, error) {
	switch {
	case ev == "open":
		host.requested = true
	case ev == "close":
		host.requested = false
	case ev == "finish":
		return popup.OnAnimationFinished(s, popup.AnimationFinished{}), nil
	case strings.HasPrefix(ev, "content="):
		host.children = nil
		for _, part := range strings.Split(strings.TrimPrefix(ev, "content="), ",") {
			if part != "" {
				host.children = append(host.children, part)
			}
		}
	default:
		return s, fmt.Errorf("unknown event %q (want open, close, finish or content=...)", ev)
	}
	return popup.OnExternalObservation(s, popup.Observe(host)), nil
}

func traceLine(ev string, step popup.Step) string {
	content := "-"
	if step.Next.HasContent() {
		parts := make([]string, 0, len(step.Next.Content()))
		for _, n := range step.Next.Content() {
			parts = append(parts, fmt.Sprint(n))
		}
		content = "[" + strings.Join(parts, " ") + "]"
	}

	change := traceIgnoredStyle.Render("(unchanged)")
	if step.Transitioned() {
		change = traceTransitionStyle.Render(step.Name())
	}

	return fmt.Sprintf("%s %-8s %s content=%s",
		traceEventStyle.Render(fmt.Sprintf("%-12s", ev)),
		step.Next.Visibility(),
		change,
		content)
}

func indent(s, prefix string) string {
	return prefix + strings.ReplaceAll(s, "\n", "\n"+prefix)
}

func init() {
	rootCmd.AddCommand(traceCmd)

	traceCmd.Flags().Bool("tree", false, "print the visual tree after each event")
}
