package popup

import (
	"errors"
	"testing"
)

func stateAt(v Visibility) State {
	s := Initial()
	for s.Visibility() != v {
		s.visibility = Next(s.visibility)
	}
	return s
}

func TestTransitions_OnlyLegalSource(t *testing.T) {
	ops := []struct {
		name string
		fn   func(State) State
		from Visibility
		to   Visibility
	}{
		{"open", Open, VisibilityClosed, VisibilityOpening},
		{"opened", Opened, VisibilityOpening, VisibilityOpened},
		{"close", Close, VisibilityOpened, VisibilityClosing},
		{"closed", Closed, VisibilityClosing, VisibilityClosed},
	}

	for _, op := range ops {
		for _, v := range AllVisibilities() {
			t.Run(op.name+"/"+v.String(), func(t *testing.T) {
				got := op.fn(stateAt(v)).Visibility()
				want := v
				if v == op.from {
					want = op.to
				}
				if got != want {
					t.Errorf("%s(%s) = %s, want %s", op.name, v, got, want)
				}
			})
		}
	}
}

func TestTransitions_DoNotMutateInput(t *testing.T) {
	s := SetContent(Initial(), []Node{"a"})
	_ = Open(s)
	if s.Visibility() != VisibilityClosed {
		t.Errorf("Open mutated its argument: visibility = %s", s.Visibility())
	}
}

func TestMaybeChangeVisibility(t *testing.T) {
	tests := []struct {
		from      Visibility
		requested bool
		want      Visibility
	}{
		{VisibilityClosed, true, VisibilityOpening},
		{VisibilityClosed, false, VisibilityClosed},
		{VisibilityOpening, true, VisibilityOpening},
		{VisibilityOpening, false, VisibilityOpening},
		{VisibilityOpened, true, VisibilityOpened},
		{VisibilityOpened, false, VisibilityClosing},
		{VisibilityClosing, true, VisibilityClosing},
		{VisibilityClosing, false, VisibilityClosing},
	}

	for _, tt := range tests {
		got := MaybeChangeVisibility(stateAt(tt.from), tt.requested).Visibility()
		if got != tt.want {
			t.Errorf("MaybeChangeVisibility(%s, %v) = %s, want %s", tt.from, tt.requested, got, tt.want)
		}
	}
}

func TestMaybeChangeVisibility_Idempotent(t *testing.T) {
	for _, v := range AllVisibilities() {
		for _, requested := range []bool{true, false} {
			once := MaybeChangeVisibility(stateAt(v), requested)
			twice := MaybeChangeVisibility(once, requested)
			if once.Visibility() != twice.Visibility() {
				t.Errorf("from %s requested=%v: once=%s twice=%s", v, requested, once.Visibility(), twice.Visibility())
			}
		}
	}
}

func TestNext_FollowsCycle(t *testing.T) {
	v := VisibilityClosed
	want := []Visibility{VisibilityOpening, VisibilityOpened, VisibilityClosing, VisibilityClosed}
	for i, w := range want {
		v = Next(v)
		if v != w {
			t.Fatalf("step %d: Next = %s, want %s", i, v, w)
		}
	}
}

func TestAllTransitions_IndexedBySource(t *testing.T) {
	edges := AllTransitions()
	if len(edges) != len(AllVisibilities()) {
		t.Fatalf("got %d edges, want one per visibility", len(edges))
	}
	for i, e := range edges {
		if e.From != Visibility(i) {
			t.Errorf("edge %d starts at %s", i, e.From)
		}
		if Next(e.From) != e.To {
			t.Errorf("Next(%s) = %s, want %s", e.From, Next(e.From), e.To)
		}
		if got := TransitionName(e.From, e.To); got != e.Name {
			t.Errorf("TransitionName(%s, %s) = %q, want %q", e.From, e.To, got, e.Name)
		}
	}
}

func TestNext_InvalidPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for invalid visibility")
		}
	}()
	Next(Visibility(7))
}

func TestTransitionName(t *testing.T) {
	tests := []struct {
		from, to Visibility
		want     string
	}{
		{VisibilityClosed, VisibilityOpening, "open"},
		{VisibilityOpening, VisibilityOpened, "opened"},
		{VisibilityOpened, VisibilityClosing, "close"},
		{VisibilityClosing, VisibilityClosed, "closed"},
		{VisibilityClosed, VisibilityOpened, "closed → opened"},
	}
	for _, tt := range tests {
		if got := TransitionName(tt.from, tt.to); got != tt.want {
			t.Errorf("TransitionName(%s, %s) = %q, want %q", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestParseVisibility(t *testing.T) {
	for _, v := range AllVisibilities() {
		got, err := ParseVisibility(v.String())
		if err != nil {
			t.Fatalf("ParseVisibility(%q): %v", v.String(), err)
		}
		if got != v {
			t.Errorf("ParseVisibility(%q) = %s, want %s", v.String(), got, v)
		}
	}

	_, err := ParseVisibility("ajar")
	var verr *VisibilityError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *VisibilityError, got %v", err)
	}
	if verr.Value != "ajar" {
		t.Errorf("VisibilityError.Value = %q, want %q", verr.Value, "ajar")
	}
}

func TestVisibility_String(t *testing.T) {
	if got := Visibility(42).String(); got != "Visibility(42)" {
		t.Errorf("String() = %q", got)
	}
	if Visibility(42).Valid() {
		t.Error("Visibility(42) should not be valid")
	}
}
