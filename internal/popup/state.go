package popup

import "slices"

// Node is an opaque handle to one piece of popup content. The core never
// inspects nodes; hosts decide how to draw them.
type Node any

// State is the full popup state. It is an immutable value: every operation
// returns a new State and leaves its argument untouched.
type State struct {
	visibility Visibility
	content    []Node
	hasContent bool
}

// Initial returns the state a popup starts in: closed, with no content.
func Initial() State {
	return State{visibility: VisibilityClosed}
}

// Visibility returns the lifecycle tag.
func (s State) Visibility() Visibility {
	return s.visibility
}

// HasContent reports whether content has been captured. An empty sequence
// counts as captured content.
func (s State) HasContent() bool {
	return s.hasContent
}

// Content returns a copy of the captured content, or nil when absent.
func (s State) Content() []Node {
	if !s.hasContent {
		return nil
	}
	return cloneNodes(s.content)
}

// SetContent replaces the content wholesale. Visibility is untouched.
func SetContent(s State, nodes []Node) State {
	s.content = cloneNodes(nodes)
	s.hasContent = true
	return s
}

// ChangeContent captures observed content regardless of visibility, so that
// content prepared while closed is ready by the time the popup opens.
func ChangeContent(s State, observed []Node) State {
	return SetContent(s, observed)
}

func cloneNodes(nodes []Node) []Node {
	if nodes == nil {
		return []Node{}
	}
	return slices.Clone(nodes)
}
