package popup

import (
	"fmt"
	"time"
)

// Tree is the abstract visual tree for one popup state. A nil Overlay is the
// empty placeholder.
type Tree struct {
	Overlay *Overlay
}

// Empty reports whether the tree renders nothing.
func (t Tree) Empty() bool {
	return t.Overlay == nil
}

// Overlay is the animated wrapper holding the backdrop and the panel. Both
// layers stack above ordinary page content, backdrop below the panel.
type Overlay struct {
	ZIndex    int
	Animation *Animation // nil when the popup is static
	Backdrop  Backdrop
	Panel     Panel
}

// Backdrop dims the page behind the panel and absorbs clicks.
type Backdrop struct {
	Color       string
	Opacity     float64
	ZIndex      int
	Fixed       bool
	BlocksInput bool
}

// Panel is the centered box that shows the popup content.
type Panel struct {
	ZIndex   int
	Centered bool
	Content  []Node
}

// Animation is a single non-looping opacity animation applied to the overlay.
type Animation struct {
	Name        string
	Duration    time.Duration
	FromOpacity float64
	ToOpacity   float64
	Iterations  int
	HoldEnd     bool // keep the final keyframe after playback
}

// Progress returns the linear progress in [0, 1] after elapsed time.
func (a Animation) Progress(elapsed time.Duration) float64 {
	if a.Duration <= 0 || elapsed >= a.Duration {
		return 1
	}
	if elapsed <= 0 {
		return 0
	}
	return float64(elapsed) / float64(a.Duration)
}

const (
	OpenAnimation  = "popup-open"
	CloseAnimation = "popup-close"

	DefaultAnimationDuration = 600 * time.Millisecond
	DefaultBackdropColor     = "#000000"
	DefaultBackdropOpacity   = 0.3

	overlayZ  = 9999
	backdropZ = 1
	panelZ    = 3
)

// Appearance holds the tunable parts of a rendered overlay.
type Appearance struct {
	AnimationDuration time.Duration
	BackdropColor     string
	BackdropOpacity   float64
}

// DefaultAppearance returns the stock appearance: a 0.6s fade over a black
// backdrop at 30% opacity.
func DefaultAppearance() Appearance {
	return Appearance{
		AnimationDuration: DefaultAnimationDuration,
		BackdropColor:     DefaultBackdropColor,
		BackdropOpacity:   DefaultBackdropOpacity,
	}
}

// Render maps s to a visual tree using DefaultAppearance.
func Render(s State) Tree {
	return DefaultAppearance().Render(s)
}

// Render maps s to a visual tree. It is pure: equal states give equal trees.
func (a Appearance) Render(s State) Tree {
	if !s.visibility.Valid() {
		panic(fmt.Sprintf("popup: invalid visibility %d", int(s.visibility)))
	}
	if s.visibility == VisibilityClosed || !s.hasContent {
		return Tree{}
	}
	return Tree{Overlay: &Overlay{
		ZIndex:    overlayZ,
		Animation: a.animation(s.visibility),
		Backdrop: Backdrop{
			Color:       a.BackdropColor,
			Opacity:     a.BackdropOpacity,
			ZIndex:      backdropZ,
			Fixed:       true,
			BlocksInput: true,
		},
		Panel: Panel{
			ZIndex:   panelZ,
			Centered: true,
			Content:  cloneNodes(s.content),
		},
	}}
}

func (a Appearance) animation(v Visibility) *Animation {
	switch v {
	case VisibilityOpening:
		return &Animation{
			Name:        OpenAnimation,
			Duration:    a.AnimationDuration,
			FromOpacity: 0,
			ToOpacity:   1,
			Iterations:  1,
			HoldEnd:     true,
		}
	case VisibilityClosing:
		return &Animation{
			Name:        CloseAnimation,
			Duration:    a.AnimationDuration,
			FromOpacity: 1,
			ToOpacity:   0,
			Iterations:  1,
			HoldEnd:     true,
		}
	case VisibilityOpened:
		return nil
	default:
		panic(fmt.Sprintf("popup: invalid visibility %d", int(v)))
	}
}
