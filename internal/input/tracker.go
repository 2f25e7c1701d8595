package input

import (
	"fmt"
	"sync"

	"github.com/playmatatu/cuesim/internal/game"
)

// Dir is a hit-offset nudge direction.
type Dir int

const (
	Up Dir = iota
	Down
	Left
	Right
)

func ParseDir(s string) (Dir, error) {
	switch s {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	}
	return 0, fmt.Errorf("unknown nudge direction %q", s)
}

// Tracker folds asynchronous pointer and key events into one
// game.InputState per frame. Edges seen since the previous Next are
// reported once, so a click shorter than a frame is not lost.
type Tracker struct {
	mu sync.Mutex

	pointer  game.Vec2
	down     bool
	pressed  bool
	released bool
	toggle   bool

	held  [4]bool
	taps  [4]bool
	touch bool
}

func NewTracker() *Tracker {
	return &Tracker{}
}

func (t *Tracker) Pointer(x, y float64) {
	t.mu.Lock()
	t.pointer = game.NewVec2(x, y)
	t.touch = true
	t.mu.Unlock()
}

func (t *Tracker) Button(down bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.touch = true
	if down == t.down {
		return
	}
	t.down = down
	if down {
		t.pressed = true
	} else {
		t.released = true
	}
}

func (t *Tracker) Nudge(d Dir, down bool) {
	if d < Up || d > Right {
		return
	}
	t.mu.Lock()
	t.held[d] = down
	if down {
		t.taps[d] = true
	}
	t.touch = true
	t.mu.Unlock()
}

func (t *Tracker) ToggleHitLine() {
	t.mu.Lock()
	t.toggle = true
	t.touch = true
	t.mu.Unlock()
}

// Next returns the state for the coming frame and clears the edges.
func (t *Tracker) Next() game.InputState {
	t.mu.Lock()
	defer t.mu.Unlock()

	in := game.InputState{
		Pointer:              t.pointer,
		ButtonDown:           t.down,
		ButtonPressed:        t.pressed,
		ButtonReleased:       t.released,
		ToggleHitLinePressed: t.toggle,
		NudgeUp:              t.held[Up] || t.taps[Up],
		NudgeDown:            t.held[Down] || t.taps[Down],
		NudgeLeft:            t.held[Left] || t.taps[Left],
		NudgeRight:           t.held[Right] || t.taps[Right],
	}
	t.pressed, t.released, t.toggle = false, false, false
	t.taps = [4]bool{}
	return in
}

// Touched reports whether any event arrived since the last call, and resets it.
func (t *Tracker) Touched() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	touched := t.touch
	t.touch = false
	return touched
}
