package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunTrace_HappyPath(t *testing.T) {
	var buf bytes.Buffer
	events := []string{"content=A,B", "open", "finish", "close", "finish"}
	if err := runTrace(&buf, events, false); err != nil {
		t.Fatalf("runTrace: %v", err)
	}

	want := [][]string{
		{"content=A,B", "closed", "(unchanged)", "content=[A", "B]"},
		{"open", "opening", "open", "content=[A", "B]"},
		{"finish", "opened", "opened", "content=[A", "B]"},
		{"close", "closing", "close", "content=[A", "B]"},
		{"finish", "closed", "closed", "content=[A", "B]"},
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d:\n%s", len(want), len(lines), buf.String())
	}
	for i, line := range lines {
		got := strings.Fields(line)
		if strings.Join(got, " ") != strings.Join(want[i], " ") {
			t.Errorf("line %d = %q, want fields %q", i, line, want[i])
		}
	}
}

func TestRunTrace_Debounce(t *testing.T) {
	var buf bytes.Buffer
	if err := runTrace(&buf, []string{"open", "close", "open"}, false); err != nil {
		t.Fatalf("runTrace: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	for i, line := range lines[1:] {
		if !strings.Contains(line, "opening") || !strings.Contains(line, "(unchanged)") {
			t.Errorf("line %d should stay opening unchanged: %q", i+1, line)
		}
	}
}

func TestRunTrace_Tree(t *testing.T) {
	var buf bytes.Buffer
	if err := runTrace(&buf, []string{"content=X", "open"}, true); err != nil {
		t.Fatalf("runTrace: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "    placeholder (empty)") {
		t.Errorf("closed state should print an empty tree:\n%s", out)
	}
	if !strings.Contains(out, "animation=popup-open") {
		t.Errorf("opening state should print the open animation:\n%s", out)
	}
}

func TestRunTrace_UnknownEvent(t *testing.T) {
	var buf bytes.Buffer
	err := runTrace(&buf, []string{"open", "slam"}, false)
	if err == nil || !strings.Contains(err.Error(), `"slam"`) {
		t.Errorf("expected unknown event error, got %v", err)
	}
}
