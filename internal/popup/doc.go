// Package popup implements the visibility state machine of an animated modal
// popup.
//
// A popup cycles through four phases:
//
//	closed ──open──► opening ──opened──► opened ──close──► closing ──closed──► closed
//
// Two kinds of events drive it. An Observation carries the host's declared
// open/closed intent plus the current content; AnimationFinished commits the
// animation that is playing. Requests that arrive mid-animation are ignored,
// so at most one animation is ever in flight and no phase is skipped.
//
// Render turns a State into an abstract Tree. Hosts materialize the tree
// however they like; see pkg/monitor/modal for the terminal renderer.
package popup
