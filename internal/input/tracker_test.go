package input

import (
	"testing"

	"github.com/playmatatu/cuesim/internal/game"
)

func TestButtonEdgesReportedOnce(t *testing.T) {
	tr := NewTracker()
	tr.Pointer(10, 20)
	tr.Button(true)

	in := tr.Next()
	if !in.ButtonDown || !in.ButtonPressed || in.ButtonReleased {
		t.Fatalf("first frame = %+v", in)
	}
	if in.Pointer != game.NewVec2(10, 20) {
		t.Errorf("pointer = %v", in.Pointer)
	}

	in = tr.Next()
	if !in.ButtonDown || in.ButtonPressed {
		t.Errorf("held frame = %+v", in)
	}

	tr.Button(false)
	in = tr.Next()
	if in.ButtonDown || !in.ButtonReleased {
		t.Errorf("release frame = %+v", in)
	}
}

func TestClickWithinOneFrame(t *testing.T) {
	tr := NewTracker()
	tr.Button(true)
	tr.Button(false)

	in := tr.Next()
	if in.ButtonDown || !in.ButtonPressed || !in.ButtonReleased {
		t.Errorf("click frame = %+v", in)
	}
}

func TestRepeatedButtonStateIsNotAnEdge(t *testing.T) {
	tr := NewTracker()
	tr.Button(false)
	if in := tr.Next(); in.ButtonReleased {
		t.Error("release reported while the button was already up")
	}
}

func TestNudgeTapAndHold(t *testing.T) {
	tr := NewTracker()
	tr.Nudge(Left, true)
	tr.Nudge(Left, false)
	if in := tr.Next(); !in.NudgeLeft {
		t.Error("tap shorter than a frame was lost")
	}
	if in := tr.Next(); in.NudgeLeft {
		t.Error("tap repeated on the next frame")
	}

	tr.Nudge(Up, true)
	tr.Next()
	if in := tr.Next(); !in.NudgeUp {
		t.Error("held nudge not repeated")
	}
}

func TestToggleAndTouched(t *testing.T) {
	tr := NewTracker()
	if tr.Touched() {
		t.Fatal("new tracker reports activity")
	}
	tr.ToggleHitLine()
	if !tr.Touched() || tr.Touched() {
		t.Error("Touched did not report then reset")
	}
	if in := tr.Next(); !in.ToggleHitLinePressed {
		t.Error("toggle edge lost")
	}
	if in := tr.Next(); in.ToggleHitLinePressed {
		t.Error("toggle edge repeated")
	}
}

func TestParseDir(t *testing.T) {
	for s, want := range map[string]Dir{"up": Up, "down": Down, "left": Left, "right": Right} {
		if got, err := ParseDir(s); err != nil || got != want {
			t.Errorf("ParseDir(%q) = %v, %v", s, got, err)
		}
	}
	if _, err := ParseDir("sideways"); err == nil {
		t.Error("bad direction accepted")
	}
}
