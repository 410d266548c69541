package popup

import "fmt"

// VisibilityError is returned when a string does not name a visibility tag
type VisibilityError struct {
	Value string
}

func (e *VisibilityError) Error() string {
	return fmt.Sprintf("unknown visibility %q (want closed, opening, opened or closing)", e.Value)
}
