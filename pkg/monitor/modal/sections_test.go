package modal

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

type label string

func (l label) String() string { return "label:" + string(l) }

func TestRenderNode(t *testing.T) {
	tests := []struct {
		name string
		node any
		want string
	}{
		{"string", "plain", "plain"},
		{"section", Text("section text"), "section text"},
		{"stringer", label("x"), "label:x"},
		{"other", 42, "42"},
		{"list", List("one", "two"), "two"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ansi.Strip(renderNode(tt.node, 30))
			if !strings.Contains(got, tt.want) {
				t.Errorf("renderNode(%v) = %q, want it to contain %q", tt.node, got, tt.want)
			}
		})
	}
}

func TestText_Wraps(t *testing.T) {
	out := Text("one two three four five six").Render(10)
	if lipgloss.Height(out) < 2 {
		t.Errorf("expected wrapped output, got %q", out)
	}
	if lipgloss.Width(out) > 10 {
		t.Errorf("wrapped width = %d, want <= 10", lipgloss.Width(out))
	}
}

func TestTitle_Truncates(t *testing.T) {
	got := Title("A rather long popup heading").Render(10)
	if strings.Contains(got, "\n") {
		t.Errorf("title should stay on one line, got %q", got)
	}
	if w := lipgloss.Width(got); w > 10 {
		t.Errorf("title width = %d, want <= 10", w)
	}
	if plain := ansi.Strip(got); !strings.HasPrefix(plain, "A rather") {
		t.Errorf("title = %q, want prefix %q", plain, "A rather")
	}
	if s, ok := Title("Hi").(fmt.Stringer); !ok || s.String() != "Hi" {
		t.Error("title should stringify to its text")
	}
}

func TestSpacer(t *testing.T) {
	if got := Spacer().Render(20); got != "" {
		t.Errorf("Spacer().Render = %q, want empty", got)
	}
}

func TestList_Empty(t *testing.T) {
	if got := ansi.Strip(List().Render(20)); got != "(no items)" {
		t.Errorf("got %q", got)
	}
}

func TestMarkdown(t *testing.T) {
	md := Markdown("# Title\n\nSome **bold** text.")
	out := ansi.Strip(md.Render(40))

	if !strings.Contains(out, "Title") || !strings.Contains(out, "bold") {
		t.Errorf("markdown output missing text:\n%s", out)
	}
	if again := ansi.Strip(md.Render(40)); again != out {
		t.Error("re-render at same width should be stable")
	}
}
