package game

import (
	"errors"
	"fmt"
	"math/rand"
)

var (
	ErrBallsMoving = errors.New("balls are still moving")
	ErrOutOfBounds = errors.New("position is off the table")
)

// Phase of a table between shots.
type Phase string

const (
	PhaseAiming  Phase = "aiming"
	PhaseRolling Phase = "rolling"
)

//go:generate go tool mockgen -destination=./mocks/table_mock.go -package=mocks . Resolver

// Resolver handles ball/ball and ball/cushion contacts and pocketing. It runs
// once per frame, after every ball has integrated.
type Resolver interface {
	Resolve(balls []*Ball)
}

// Shot describes the strike released during a frame.
type Shot struct {
	Power     float64 `json:"power"`
	Angle     float64 `json:"angle"`
	HitOffset Vec2    `json:"hit_offset"`
	Volume    float64 `json:"volume"`
}

// FrameResult reports what happened during one Frame.
type FrameResult struct {
	Frame   uint64
	Shot    *Shot
	Settled bool
}

// Table drives one rack of balls and the stick. It is not safe for
// concurrent use.
type Table struct {
	settings Settings
	balls    []*Ball
	stick    *Stick
	resolver Resolver

	phase Phase
	frame uint64
}

// NewTable racks the balls and points the stick at the cue ball. rng may be
// nil for identical attitudes on every ball.
func NewTable(settings Settings, clock Clock, sounder StrikeSounder, rng *rand.Rand) (*Table, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	t := &Table{
		settings: settings,
		phase:    PhaseAiming,
	}
	rack := Standard8BallRack(&t.settings)
	t.balls = make([]*Ball, NumBalls)
	for i := range t.balls {
		t.balls[i] = NewBall(i, BallTypeFor(i), rack[i], &t.settings, rng)
	}
	t.stick = NewStick(t.balls[0].Position(), &t.settings, clock, sounder)
	return t, nil
}

// SetResolver installs the collision collaborator. nil disables it.
func (t *Table) SetResolver(r Resolver) {
	t.resolver = r
}

func (t *Table) Settings() Settings { return t.settings }
func (t *Table) Balls() []*Ball { return t.balls }
func (t *Table) Cue() *Ball { return t.balls[0] }
func (t *Table) Stick() *Stick { return t.stick }
func (t *Table) Phase() Phase { return t.phase }
func (t *Table) FrameCount() uint64 { return t.frame }

// Frame advances the table by one tick.
func (t *Table) Frame(in InputState) FrameResult {
	t.frame++
	res := FrameResult{Frame: t.frame}

	if t.phase == PhaseAiming {
		// a pocketed cue ball parks the stick until PlaceCueBall
		if t.Cue().Visible() {
			t.stick.Update(in)
			if t.stick.ShotTriggered() {
				res.Shot = t.shoot()
			}
		} else if t.stick.Visible() {
			t.stick.Hide()
		}
	}

	for _, b := range t.balls {
		if b.Visible() && b.Moving() {
			b.Update()
		}
	}
	if t.resolver != nil {
		t.resolver.Resolve(t.balls)
	}

	if t.phase == PhaseRolling && !t.anyMoving() {
		t.phase = PhaseAiming
		if t.Cue().Visible() {
			t.stick.Show(t.Cue().Position())
		}
		res.Settled = true
	}
	return res
}

func (t *Table) shoot() *Shot {
	shot := &Shot{
		Power:     t.stick.Power(),
		Angle:     t.stick.Rotation(),
		HitOffset: t.stick.HitOffset(),
	}
	shot.Volume = t.stick.Shoot()
	t.Cue().Strike(shot.Power, shot.Angle, shot.HitOffset)
	t.stick.ClearShot()
	t.stick.Hide()
	t.phase = PhaseRolling
	return shot
}

func (t *Table) anyMoving() bool {
	for _, b := range t.balls {
		if b.Visible() && b.Moving() {
			return true
		}
	}
	return false
}

// PlaceCueBall respawns the cue ball at p and re-homes the stick.
func (t *Table) PlaceCueBall(p Vec2) error {
	if t.phase != PhaseAiming {
		return ErrBallsMoving
	}
	r := t.settings.BallDiameter / 2
	if p.X < r || p.Y < r || p.X > t.settings.TableSize.X-r || p.Y > t.settings.TableSize.Y-r {
		return fmt.Errorf("%w: (%.1f, %.1f)", ErrOutOfBounds, p.X, p.Y)
	}
	t.Cue().Show(p)
	t.stick.Show(p)
	return nil
}

// TableSnapshot is the serialized view of a table after a frame.
type TableSnapshot struct {
	Frame uint64      `json:"frame"`
	Phase Phase       `json:"phase"`
	Balls []BallState `json:"balls"`
	Stick StickState  `json:"stick"`
}

func (t *Table) Snapshot() TableSnapshot {
	s := TableSnapshot{
		Frame: t.frame,
		Phase: t.phase,
		Balls: make([]BallState, len(t.balls)),
		Stick: t.stick.State(),
	}
	for i, b := range t.balls {
		s.Balls[i] = b.State()
	}
	return s
}

// Standard8BallRack returns the opening positions of all 16 balls: cue ball
// on the head spot, apex ball on the foot spot, 8 in the centre of row 3.
// Spacing is fixed, with a small gap so no two balls touch at rest.
func Standard8BallRack(s *Settings) [NumBalls]Vec2 {
	var pos [NumBalls]Vec2

	r := s.BallDiameter / 2
	cy := s.TableSize.Y / 2
	head := s.TableSize.X / 4
	foot := s.TableSize.X * 3 / 4
	e := 1.782 * r // row pitch, sqrt(3) plus gap
	w := 1.05 * r  // half column pitch

	pos[0] = NewVec2(head, cy)

	pos[1] = NewVec2(foot, cy)

	pos[2] = NewVec2(foot+e, cy+w)
	pos[15] = NewVec2(foot+e, cy-w)

	pos[8] = NewVec2(foot+2*e, cy)
	pos[5] = NewVec2(foot+2*e, cy+2*w)
	pos[10] = NewVec2(foot+2*e, cy-2*w)

	pos[7] = NewVec2(foot+3*e, cy+w)
	pos[4] = NewVec2(foot+3*e, cy+3*w)
	pos[9] = NewVec2(foot+3*e, cy-w)
	pos[6] = NewVec2(foot+3*e, cy-3*w)

	pos[11] = NewVec2(foot+4*e, cy)
	pos[12] = NewVec2(foot+4*e, cy+2*w)
	pos[13] = NewVec2(foot+4*e, cy-2*w)
	pos[14] = NewVec2(foot+4*e, cy+4*w)
	pos[3] = NewVec2(foot+4*e, cy-4*w)

	return pos
}
