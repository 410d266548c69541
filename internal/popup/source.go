package popup

// Source is the host-side element a popup mirrors: its declared open state and
// its current children.
type Source interface {
	OpenRequested() bool
	Children() []Node
}

// Observation is a snapshot of a Source taken when the host notices a change.
type Observation struct {
	OpenRequested bool
	ContentNodes  []Node
}

// Observe snapshots src. Nil children are skipped and the returned slice never
// shares backing memory with src.
func Observe(src Source) Observation {
	children := src.Children()
	nodes := make([]Node, 0, len(children))
	for _, child := range children {
		if child == nil {
			continue
		}
		nodes = append(nodes, child)
	}
	return Observation{
		OpenRequested: src.OpenRequested(),
		ContentNodes:  nodes,
	}
}
