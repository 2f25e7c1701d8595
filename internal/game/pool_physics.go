package game

// CollisionEvent records a contact for rule checking and sound playback.
type CollisionEvent struct {
	Type     string  `json:"type"`      // "ball", "cushion", "pocket"
	BallID   int     `json:"ball_id"`
	TargetID int     `json:"target_id"` // ball number or pocket index, -1 for cushions
	Speed    float64 `json:"speed"`     // impact speed, for sound volume
}

// RailResolver is a simple contact model for a rectangular table with six
// pockets. It corrects overlaps after the fact rather than predicting
// contacts, which is enough at the per-frame speeds the stick can produce.
type RailResolver struct {
	settings *Settings
	pockets  []Vec2
	events   []CollisionEvent
}

func NewRailResolver(s *Settings) *RailResolver {
	w, h := s.TableSize.X, s.TableSize.Y
	return &RailResolver{
		settings: s,
		pockets: []Vec2{
			NewVec2(0, 0), NewVec2(w/2, 0), NewVec2(w, 0),
			NewVec2(0, h), NewVec2(w/2, h), NewVec2(w, h),
		},
	}
}

// Events returns the contacts recorded by the latest Resolve and clears them.
// Every Resolve starts a fresh list, so callers that never drain it do not
// accumulate history.
func (r *RailResolver) Events() []CollisionEvent {
	ev := r.events
	r.events = nil
	return ev
}

func (r *RailResolver) Resolve(balls []*Ball) {
	r.events = nil
	r.resolvePockets(balls)
	for i := 0; i < len(balls); i++ {
		if !balls[i].Visible() {
			continue
		}
		for j := i + 1; j < len(balls); j++ {
			if balls[j].Visible() {
				r.resolveBallBall(balls[i], balls[j])
			}
		}
	}
	for _, b := range balls {
		if b.Visible() {
			r.resolveCushions(b)
		}
	}
}

func (r *RailResolver) resolvePockets(balls []*Ball) {
	radius := r.settings.BallDiameter
	for _, b := range balls {
		if !b.Visible() {
			continue
		}
		for id, p := range r.pockets {
			if b.Position().Minus(p).Magnitude() < radius {
				speed := b.Velocity().Magnitude()
				b.Hide()
				r.events = append(r.events, CollisionEvent{Type: "pocket", BallID: b.Number(), TargetID: id, Speed: speed})
				break
			}
		}
	}
}

func (r *RailResolver) resolveBallBall(ball, target *Ball) {
	d := target.Position().Minus(ball.Position())
	dist := d.Magnitude()
	if dist == 0 || dist >= r.settings.BallDiameter {
		return
	}

	n := d.Times(1 / dist)
	push := n.Times((r.settings.BallDiameter - dist) / 2)
	ball.SetPosition(ball.Position().Minus(push))
	target.SetPosition(target.Position().Plus(push))

	// only exchange momentum when closing
	if ball.Velocity().Minus(target.Velocity()).Dot(n) <= 0 {
		return
	}

	t := NewVec2(-n.Y, n.X)
	ballNormal := n.Times(ball.Velocity().Dot(n))
	ballTangent := t.Times(ball.Velocity().Dot(t))
	targetNormal := n.Times(target.Velocity().Dot(n))
	targetTangent := t.Times(target.Velocity().Dot(t))

	newBallNormal := targetNormal.Times(BallRestitution).Plus(ballNormal.Times(1 - BallRestitution))
	newTargetNormal := ballNormal.Times(BallRestitution).Plus(targetNormal.Times(1 - BallRestitution))

	ball.SetVelocity(ballTangent.Plus(newBallNormal))
	target.SetVelocity(targetTangent.Plus(newTargetNormal))

	r.events = append(r.events,
		CollisionEvent{Type: "ball", BallID: ball.Number(), TargetID: target.Number(), Speed: ball.Velocity().Magnitude()},
		CollisionEvent{Type: "ball", BallID: target.Number(), TargetID: ball.Number(), Speed: target.Velocity().Magnitude()},
	)
}

func (r *RailResolver) resolveCushions(b *Ball) {
	rad := r.settings.BallDiameter / 2
	p, v := b.Position(), b.Velocity()
	hit := false
	var impact float64

	if p.X < rad && v.X < 0 || p.X > r.settings.TableSize.X-rad && v.X > 0 {
		impact = v.X
		v.X = -v.X * CushionRestitution
		hit = true
	}
	if p.Y < rad && v.Y < 0 || p.Y > r.settings.TableSize.Y-rad && v.Y > 0 {
		if v.Y*v.Y > impact*impact {
			impact = v.Y
		}
		v.Y = -v.Y * CushionRestitution
		hit = true
	}
	if !hit {
		return
	}
	p.X = clamp(p.X, rad, r.settings.TableSize.X-rad)
	p.Y = clamp(p.Y, rad, r.settings.TableSize.Y-rad)
	b.SetPosition(p)
	b.SetVelocity(v)
	if impact < 0 {
		impact = -impact
	}
	r.events = append(r.events, CollisionEvent{Type: "cushion", BallID: b.Number(), TargetID: -1, Speed: impact})
}
