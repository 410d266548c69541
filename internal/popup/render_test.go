package popup

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestRender_ClosedIsEmpty(t *testing.T) {
	for _, s := range []State{
		Initial(),
		SetContent(Initial(), []Node{"a"}),
		SetContent(Initial(), nil),
	} {
		if tree := Render(s); !tree.Empty() {
			t.Errorf("Render(closed, hasContent=%v) = %+v, want empty", s.HasContent(), tree)
		}
	}
}

func TestRender_NoContentIsEmpty(t *testing.T) {
	for _, v := range AllVisibilities() {
		if tree := Render(stateAt(v)); !tree.Empty() {
			t.Errorf("Render(%s without content) should be empty", v)
		}
	}
}

func TestRender_Animations(t *testing.T) {
	tests := []struct {
		vis  Visibility
		want *Animation
	}{
		{VisibilityOpening, &Animation{
			Name: OpenAnimation, Duration: 600 * time.Millisecond,
			FromOpacity: 0, ToOpacity: 1, Iterations: 1, HoldEnd: true,
		}},
		{VisibilityOpened, nil},
		{VisibilityClosing, &Animation{
			Name: CloseAnimation, Duration: 600 * time.Millisecond,
			FromOpacity: 1, ToOpacity: 0, Iterations: 1, HoldEnd: true,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.vis.String(), func(t *testing.T) {
			tree := Render(SetContent(stateAt(tt.vis), []Node{"a"}))
			if tree.Empty() {
				t.Fatal("expected overlay")
			}
			if diff := cmp.Diff(tt.want, tree.Overlay.Animation); diff != "" {
				t.Errorf("animation mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRender_Layers(t *testing.T) {
	tree := Render(SetContent(stateAt(VisibilityOpened), []Node{"a", "b"}))
	o := tree.Overlay

	if o.Backdrop.ZIndex >= o.Panel.ZIndex {
		t.Errorf("backdrop z=%d must be below panel z=%d", o.Backdrop.ZIndex, o.Panel.ZIndex)
	}
	if o.ZIndex <= 0 {
		t.Errorf("overlay z=%d must be above page content", o.ZIndex)
	}
	if !o.Backdrop.Fixed || !o.Backdrop.BlocksInput {
		t.Errorf("backdrop should be fixed and block input: %+v", o.Backdrop)
	}
	if o.Backdrop.Color != DefaultBackdropColor || o.Backdrop.Opacity != DefaultBackdropOpacity {
		t.Errorf("backdrop = %+v", o.Backdrop)
	}
	if !o.Panel.Centered {
		t.Error("panel should be centered")
	}
	if diff := cmp.Diff([]Node{"a", "b"}, o.Panel.Content); diff != "" {
		t.Errorf("panel content mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_Idempotent(t *testing.T) {
	s := SetContent(stateAt(VisibilityClosing), []Node{"a"})
	if diff := cmp.Diff(Render(s), Render(s)); diff != "" {
		t.Errorf("Render not idempotent (-first +second):\n%s", diff)
	}
}

func TestRender_EmptyContentStillRendersOverlay(t *testing.T) {
	tree := Render(SetContent(stateAt(VisibilityOpened), nil))
	if tree.Empty() {
		t.Fatal("present-but-empty content should render an overlay")
	}
	if len(tree.Overlay.Panel.Content) != 0 {
		t.Errorf("panel content = %v, want empty", tree.Overlay.Panel.Content)
	}
}

func TestAppearance_Render(t *testing.T) {
	a := Appearance{AnimationDuration: time.Second, BackdropColor: "#101010", BackdropOpacity: 0.5}
	tree := a.Render(SetContent(stateAt(VisibilityOpening), []Node{"a"}))

	if tree.Overlay.Animation.Duration != time.Second {
		t.Errorf("duration = %v, want 1s", tree.Overlay.Animation.Duration)
	}
	if tree.Overlay.Backdrop.Color != "#101010" || tree.Overlay.Backdrop.Opacity != 0.5 {
		t.Errorf("backdrop = %+v", tree.Overlay.Backdrop)
	}
}

func TestRender_InvalidVisibilityPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for invalid visibility")
		}
	}()
	s := SetContent(Initial(), []Node{"a"})
	s.visibility = Visibility(9)
	Render(s)
}

func TestRender_InvalidVisibilityWithoutContentPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for invalid visibility")
		}
	}()
	s := Initial()
	s.visibility = Visibility(-1)
	Render(s)
}

func TestAnimation_Progress(t *testing.T) {
	a := Animation{Duration: 600 * time.Millisecond}
	tests := []struct {
		elapsed time.Duration
		want    float64
	}{
		{-time.Second, 0},
		{0, 0},
		{300 * time.Millisecond, 0.5},
		{600 * time.Millisecond, 1},
		{time.Hour, 1},
	}
	for _, tt := range tests {
		if got := a.Progress(tt.elapsed); got != tt.want {
			t.Errorf("Progress(%v) = %v, want %v", tt.elapsed, got, tt.want)
		}
	}

	if got := (Animation{}).Progress(0); got != 1 {
		t.Errorf("zero-duration Progress = %v, want 1", got)
	}
}
