package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/marcus/popup/internal/output"
	"github.com/marcus/popup/internal/popup"
	"github.com/marcus/popup/pkg/monitor/modal"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const (
	fallbackWidth  = 80
	fallbackHeight = 24
)

type renderOptions struct {
	visibility popup.Visibility
	progress   float64
	content    []popup.Node
	width      int
	height     int
	tree       bool
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Print one popup frame",
	Long: `Render the popup in a given visibility phase and print the resulting screen.

--progress picks a point in the opening/closing fade (0 = start, 1 = end).
--tree prints the abstract visual tree instead of the screen.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		visStr, _ := cmd.Flags().GetString("visibility")
		vis, err := popup.ParseVisibility(visStr)
		if err != nil {
			return err
		}

		progress, _ := cmd.Flags().GetFloat64("progress")
		if progress < 0 || progress > 1 {
			return fmt.Errorf("--progress must be within [0, 1], got %v", progress)
		}

		texts, _ := cmd.Flags().GetStringArray("text")
		markdown, _ := cmd.Flags().GetString("markdown")
		showTree, _ := cmd.Flags().GetBool("tree")

		opts := renderOptions{
			visibility: vis,
			progress:   progress,
			content:    renderContent(texts, markdown),
			tree:       showTree,
		}
		opts.width, opts.height = terminalSize()
		if w, _ := cmd.Flags().GetInt("width"); w > 0 {
			opts.width = w
		}
		if h, _ := cmd.Flags().GetInt("height"); h > 0 {
			opts.height = h
		}

		return renderFrame(cmd.OutOrStdout(), opts)
	},
}

func renderContent(texts []string, markdown string) []popup.Node {
	nodes := make([]popup.Node, 0, len(texts)+1)
	for _, t := range texts {
		nodes = append(nodes, modal.Text(t))
	}
	if markdown != "" {
		nodes = append(nodes, modal.Markdown(markdown))
	}
	if len(nodes) == 0 {
		nodes = append(nodes, modal.Text("popup content"))
	}
	return nodes
}

// stateFor walks the lifecycle from the initial state to v, so only legal
// transitions are used.
func stateFor(v popup.Visibility, content []popup.Node) popup.State {
	s := popup.ChangeContent(popup.Initial(), content)
	for s.Visibility() != v {
		switch s.Visibility() {
		case popup.VisibilityClosed:
			s = popup.Open(s)
		case popup.VisibilityOpened:
			s = popup.Close(s)
		default:
			s = popup.OnAnimationFinished(s, popup.AnimationFinished{})
		}
	}
	return s
}

func renderFrame(w io.Writer, opts renderOptions) error {
	appearance := cfg.Appearance()
	tree := appearance.Render(stateFor(opts.visibility, opts.content))

	if opts.tree {
		_, err := fmt.Fprintln(w, output.RenderTree(output.PopupTree(tree), output.TreeRenderOptions{ShowDetail: true}))
		return err
	}

	elapsed := time.Duration(opts.progress * float64(appearance.AnimationDuration))
	page := lipgloss.NewStyle().Padding(1, 2).Render(
		fmt.Sprintf("page content (popup %s, %.0f%%)", opts.visibility, opts.progress*100))

	out := modal.Frame(tree, page, opts.width, opts.height, elapsed, modal.WithPanelWidth(cfg.Width()))
	_, err := fmt.Fprintln(w, out.View)
	return err
}

// terminalSize returns the stdout size, or 80x24 when stdout is not a terminal.
func terminalSize() (int, int) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return fallbackWidth, fallbackHeight
	}
	w, h, err := term.GetSize(fd)
	if err != nil || w <= 0 || h <= 0 {
		return fallbackWidth, fallbackHeight
	}
	return w, h
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().String("visibility", "opened", "visibility phase: closed, opening, opened, closing")
	renderCmd.Flags().Float64P("progress", "p", 1, "animation progress in [0, 1]")
	renderCmd.Flags().StringArrayP("text", "t", nil, "text content node (repeatable)")
	renderCmd.Flags().String("markdown", "", "markdown content node")
	renderCmd.Flags().Bool("tree", false, "print the visual tree instead of the screen")
	renderCmd.Flags().Int("width", 0, "screen width (default: terminal width)")
	renderCmd.Flags().Int("height", 0, "screen height (default: terminal height)")
}
