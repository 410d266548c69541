package modal

import (
	"math"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/marcus/popup/internal/popup"
)

// Ease matches the CSS "ease" timing function, the default for keyframe
// animations.
var Ease = cubicBezier(0.25, 0.1, 0.25, 1.0)

// cubicBezier returns the easing function for CSS cubic-bezier(x1, y1, x2, y2).
func cubicBezier(x1, y1, x2, y2 float64) func(float64) float64 {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}

		// Solve x(u) = t by bisection, then sample y(u).
		lo, hi := 0.0, 1.0
		u := t
		for range 24 {
			x := sampleCurve(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				break
			}
			if x > 0 {
				hi = u
			} else {
				lo = u
			}
			u = (lo + hi) / 2
		}
		return sampleCurve(y1, y2, u)
	}
}

func sampleCurve(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*t*a + 3*inv*t*t*b + t*t*t
}

// Opacity returns the overlay opacity after elapsed time. A nil animation is
// fully opaque. Without HoldEnd the overlay snaps back to opaque once the
// animation is over.
func Opacity(a *popup.Animation, elapsed time.Duration) float64 {
	if a == nil {
		return 1
	}
	p := a.Progress(elapsed)
	if p >= 1 && !a.HoldEnd {
		return 1
	}
	return a.FromOpacity + (a.ToOpacity-a.FromOpacity)*Ease(p)
}

// blend mixes from toward to by t in [0, 1] and returns a hex color. Colors
// that are not hex fall back to the target unchanged.
func blend(from, to string, t float64) string {
	cf, err := colorful.Hex(from)
	if err != nil {
		return to
	}
	ct, err := colorful.Hex(to)
	if err != nil {
		return to
	}
	return cf.BlendLab(ct, clamp(t, 0, 1)).Clamped().Hex()
}

// dim renders plain text in the page color faded toward color by amount.
func dim(text, color string, amount float64) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(blend(PageText, color, amount))).
		Render(text)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
