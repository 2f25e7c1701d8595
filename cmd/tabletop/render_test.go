package main

import (
	"math"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/playmatatu/cuesim/internal/game"
	"github.com/playmatatu/cuesim/internal/input"
)

func newTestTable(t *testing.T) *game.Table {
	t.Helper()
	table, err := game.NewTable(game.DefaultSettings(), nil, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	return table
}

func TestViewMapping(t *testing.T) {
	v := newView(150, 41, game.NewVec2(1500, 825))

	x, y := v.toScreen(game.NewVec2(375, 412.5))
	if x != 37 || y != 20 {
		t.Errorf("toScreen = (%d, %d), want (37, 20)", x, y)
	}
	for _, c := range [][2]int{{0, 0}, {37, 20}, {149, 39}} {
		gx, gy := v.toScreen(v.toTable(c[0], c[1]))
		if gx != c[0] || gy != c[1] {
			t.Errorf("cell %v maps back to (%d, %d)", c, gx, gy)
		}
	}
	if v.inside(0, 40) {
		t.Error("status row counted as table")
	}
}

func TestBallGlyph(t *testing.T) {
	table := newTestTable(t)
	balls := table.Balls()

	if g := ballGlyph(balls[0], game.SpriteFor(balls[0])); g != '○' {
		t.Errorf("cue glyph = %q", g)
	}
	if g := ballGlyph(balls[12], game.SpriteFrame{SpotVisible: true}); g != 'c' {
		t.Errorf("12 with spot = %q", g)
	}
	if g := ballGlyph(balls[3], game.SpriteFrame{}); g != '●' {
		t.Errorf("solid glyph = %q", g)
	}

	tests := []struct {
		rotation float64
		want     rune
	}{
		{0, '─'},
		{math.Pi / 4, '╲'},
		{-math.Pi / 2, '│'},
		{3 * math.Pi / 4, '╱'},
		{math.Pi, '─'},
	}
	for _, tt := range tests {
		if g := ballGlyph(balls[9], game.SpriteFrame{Rotation: tt.rotation}); g != tt.want {
			t.Errorf("stripe at %v = %q, want %q", tt.rotation, g, tt.want)
		}
	}
}

func TestRenderDrawsRack(t *testing.T) {
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}
	defer s.Fini()
	s.SetSize(150, 41)

	table := newTestTable(t)
	v := newView(150, 41, table.Settings().TableSize)
	render(s, v, table)

	if r, _, _, _ := s.GetContent(37, 20); r != '○' {
		t.Errorf("cue ball cell = %q", r)
	}
	// stick rests behind the cue ball, aiming along +x
	if r, _, _, _ := s.GetContent(34, 20); r != '=' {
		t.Errorf("stick cell = %q", r)
	}
	if r, _, _, _ := s.GetContent(1, 40); r != 'a' {
		t.Errorf("status line starts with %q", r)
	}
}

func TestHandleKey(t *testing.T) {
	table := newTestTable(t)
	tracker := input.NewTracker()

	if handleKey(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), tracker, table, game.Vec2{}) != true {
		t.Error("q did not quit")
	}

	handleKey(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), tracker, table, game.Vec2{})
	if in := tracker.Next(); !in.NudgeUp {
		t.Error("arrow press lost")
	}
	if in := tracker.Next(); in.NudgeUp {
		t.Error("arrow held after one frame")
	}

	handleKey(tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone), tracker, table, game.Vec2{})
	if in := tracker.Next(); !in.ToggleHitLinePressed {
		t.Error("h did not toggle the hit line")
	}

	handleKey(tcell.NewEventKey(tcell.KeyRune, 'c', tcell.ModNone), tracker, table, game.NewVec2(300, 300))
	if p := table.Cue().Position(); p != game.NewVec2(300, 300) {
		t.Errorf("cue ball at %v after c", p)
	}
	if handleKey(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), tracker, table, game.Vec2{}) {
		t.Error("unbound key quit")
	}
}
