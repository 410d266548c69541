package popup

// AnimationFinished signals that a playing open or close animation ended.
type AnimationFinished struct {
	Name string // animation name if the host knows it; unused by the core
}

// OnExternalObservation folds an observation into s. Visibility is decided
// first, then content is refreshed, so a close that coincides with new
// content still plays the close animation.
func OnExternalObservation(s State, obs Observation) State {
	return ChangeContent(MaybeChangeVisibility(s, obs.OpenRequested), obs.ContentNodes)
}

// OnAnimationFinished commits the in-flight animation. Signals that arrive
// while Opened or Closed are stray and leave s unchanged.
func OnAnimationFinished(s State, _ AnimationFinished) State {
	switch s.visibility {
	case VisibilityOpening:
		return Opened(s)
	case VisibilityClosing:
		return Closed(s)
	default:
		return s
	}
}

// Step records one applied event.
type Step struct {
	Prev State
	Next State
}

// Transitioned reports whether the step moved along the lifecycle cycle.
func (st Step) Transitioned() bool {
	return st.Prev.visibility != st.Next.visibility
}

// Name returns the operation name of the transition, or "" when visibility
// did not change.
func (st Step) Name() string {
	if !st.Transitioned() {
		return ""
	}
	return TransitionName(st.Prev.visibility, st.Next.visibility)
}

// Animating reports whether the next state has an animation in flight.
func (st Step) Animating() bool {
	v := st.Next.visibility
	return v == VisibilityOpening || v == VisibilityClosing
}
