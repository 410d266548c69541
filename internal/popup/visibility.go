package popup

import "fmt"

// Visibility is the lifecycle phase of a popup.
type Visibility int

const (
	VisibilityClosed Visibility = iota
	VisibilityOpening
	VisibilityOpened
	VisibilityClosing
)

// String returns the lowercase name of the visibility tag.
func (v Visibility) String() string {
	switch v {
	case VisibilityClosed:
		return "closed"
	case VisibilityOpening:
		return "opening"
	case VisibilityOpened:
		return "opened"
	case VisibilityClosing:
		return "closing"
	default:
		return fmt.Sprintf("Visibility(%d)", int(v))
	}
}

// Valid reports whether v is one of the four lifecycle tags.
func (v Visibility) Valid() bool {
	return v >= VisibilityClosed && v <= VisibilityClosing
}

// ParseVisibility parses the string form produced by String.
func ParseVisibility(s string) (Visibility, error) {
	for _, v := range AllVisibilities() {
		if v.String() == s {
			return v, nil
		}
	}
	return VisibilityClosed, &VisibilityError{Value: s}
}

// AllVisibilities returns every visibility tag in lifecycle order
func AllVisibilities() []Visibility {
	return []Visibility{VisibilityClosed, VisibilityOpening, VisibilityOpened, VisibilityClosing}
}

// Transition is one edge of the lifecycle cycle.
type Transition struct {
	From Visibility
	To   Visibility
	Name string
}

// AllTransitions returns the only legal edges, indexed by source tag. Every
// lap around the cycle plays exactly one opening and one closing animation.
func AllTransitions() []Transition {
	return []Transition{
		{From: VisibilityClosed, To: VisibilityOpening, Name: "open"},
		{From: VisibilityOpening, To: VisibilityOpened, Name: "opened"},
		{From: VisibilityOpened, To: VisibilityClosing, Name: "close"},
		{From: VisibilityClosing, To: VisibilityClosed, Name: "closed"},
	}
}

// Next returns the successor of v on the cycle.
func Next(v Visibility) Visibility {
	if !v.Valid() {
		panic(fmt.Sprintf("popup: invalid visibility %d", int(v)))
	}
	return AllTransitions()[v].To
}

// TransitionName returns the operation name for an edge, or "from → to" when
// the pair is not an edge of the cycle.
func TransitionName(from, to Visibility) string {
	for _, t := range AllTransitions() {
		if t.From == from && t.To == to {
			return t.Name
		}
	}
	return from.String() + " → " + to.String()
}

// advanceFrom moves s one step along the cycle when it sits at from.
func advanceFrom(s State, from Visibility) State {
	if s.visibility != from {
		return s
	}
	s.visibility = Next(from)
	return s
}

// Open starts the opening animation. No-op unless s is Closed.
func Open(s State) State { return advanceFrom(s, VisibilityClosed) }

// Opened commits a finished opening animation. No-op unless s is Opening.
func Opened(s State) State { return advanceFrom(s, VisibilityOpening) }

// Close starts the closing animation. No-op unless s is Opened.
func Close(s State) State { return advanceFrom(s, VisibilityOpened) }

// Closed commits a finished closing animation. No-op unless s is Closing.
func Closed(s State) State { return advanceFrom(s, VisibilityClosing) }

// MaybeChangeVisibility applies an open/close request. Requests that arrive
// mid-animation, or that repeat the current target, leave s unchanged.
func MaybeChangeVisibility(s State, requestedOpen bool) State {
	switch {
	case requestedOpen && s.visibility == VisibilityClosed:
		return Open(s)
	case !requestedOpen && s.visibility == VisibilityOpened:
		return Close(s)
	default:
		return s
	}
}
