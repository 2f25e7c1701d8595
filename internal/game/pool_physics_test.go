package game

import (
	"math"
	"testing"
)

func newResolverBalls(s *Settings, positions ...Vec2) []*Ball {
	balls := make([]*Ball, len(positions))
	for i, p := range positions {
		balls[i] = NewBall(i, BallTypeFor(i), p, s, nil)
	}
	return balls
}

func TestHeadOnCollisionTransfersMomentum(t *testing.T) {
	s := DefaultSettings()
	r := NewRailResolver(&s)
	balls := newResolverBalls(&s, NewVec2(400, 400), NewVec2(436, 400))
	balls[0].SetVelocity(NewVec2(10, 0))

	r.Resolve(balls)

	if v := balls[0].Velocity(); math.Abs(v.X-10*(1-BallRestitution)) > 1e-9 {
		t.Errorf("striker velocity = %v, want %v", v.X, 10*(1-BallRestitution))
	}
	if v := balls[1].Velocity(); math.Abs(v.X-10*BallRestitution) > 1e-9 {
		t.Errorf("target velocity = %v, want %v", v.X, 10*BallRestitution)
	}
	if !balls[1].Moving() {
		t.Error("target not set moving")
	}
	if d := balls[1].Position().Minus(balls[0].Position()).Magnitude(); math.Abs(d-s.BallDiameter) > 1e-9 {
		t.Errorf("overlap not corrected: distance %v", d)
	}

	ev := r.Events()
	if len(ev) != 2 || ev[0].Type != "ball" || ev[0].TargetID != 1 {
		t.Errorf("events = %+v", ev)
	}
	if len(r.Events()) != 0 {
		t.Error("events not cleared")
	}
}

func TestSeparatingBallsKeepVelocity(t *testing.T) {
	s := DefaultSettings()
	r := NewRailResolver(&s)
	balls := newResolverBalls(&s, NewVec2(400, 400), NewVec2(430, 400))
	balls[0].SetVelocity(NewVec2(-3, 0))

	r.Resolve(balls)

	if v := balls[0].Velocity(); v != NewVec2(-3, 0) {
		t.Errorf("separating ball velocity changed to %v", v)
	}
}

func TestCushionBounce(t *testing.T) {
	s := DefaultSettings()
	r := NewRailResolver(&s)
	balls := newResolverBalls(&s, NewVec2(10, 400))
	balls[0].SetVelocity(NewVec2(-5, 1))

	r.Resolve(balls)

	v := balls[0].Velocity()
	if math.Abs(v.X-5*CushionRestitution) > 1e-9 || v.Y != 1 {
		t.Errorf("velocity after cushion = %v", v)
	}
	if p := balls[0].Position(); p.X != s.BallDiameter/2 {
		t.Errorf("ball not pushed off the cushion: %v", p)
	}
}

func TestPocketHidesBall(t *testing.T) {
	s := DefaultSettings()
	r := NewRailResolver(&s)
	balls := newResolverBalls(&s, NewVec2(400, 400), NewVec2(s.TableSize.X/2, s.TableSize.Y-5))
	balls[1].SetVelocity(NewVec2(0, 4))

	r.Resolve(balls)

	if balls[1].Visible() || balls[1].Moving() {
		t.Error("pocketed ball still in play")
	}
	ev := r.Events()
	if len(ev) != 1 || ev[0].Type != "pocket" || ev[0].TargetID != 4 || ev[0].Speed != 4 {
		t.Errorf("events = %+v", ev)
	}
}

func TestResolveKeepsOnlyLatestContacts(t *testing.T) {
	s := DefaultSettings()
	r := NewRailResolver(&s)
	balls := newResolverBalls(&s, NewVec2(10, 400))

	for i := 0; i < 5; i++ {
		balls[0].SetPosition(NewVec2(10, 400))
		balls[0].SetVelocity(NewVec2(-5, 0))
		r.Resolve(balls)
	}
	if ev := r.Events(); len(ev) != 1 || ev[0].Type != "cushion" {
		t.Errorf("events after five undrained frames = %+v, want one cushion", ev)
	}

	balls[0].SetPosition(NewVec2(400, 400))
	balls[0].SetVelocity(NewVec2(1, 0))
	r.Resolve(balls)
	if ev := r.Events(); len(ev) != 0 {
		t.Errorf("contact-free frame reported %+v", ev)
	}
}
