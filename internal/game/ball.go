package game

import (
	"math"
	"math/rand"
)

// BallType tags a ball for sprite selection and rules.
type BallType int

const (
	BallUnknown BallType = iota
	BallCue
	BallStripe
	BallSolid
	BallEight
)

func (t BallType) String() string {
	switch t {
	case BallCue:
		return "cue"
	case BallStripe:
		return "stripe"
	case BallSolid:
		return "solid"
	case BallEight:
		return "eight"
	default:
		return "unknown"
	}
}

// BallTypeFor maps a standard 8-ball number to its type.
func BallTypeFor(number int) BallType {
	switch {
	case number == 0:
		return BallCue
	case number >= 1 && number <= 7:
		return BallSolid
	case number == 8:
		return BallEight
	case number >= 9 && number <= 15:
		return BallStripe
	}
	return BallUnknown
}

// Ball is a rolling body. Velocity is only written through setVelocity so
// that moving always reflects it.
type Ball struct {
	number   int
	kind     BallType
	settings *Settings

	position Vec2
	velocity Vec2
	spin     Rotation
	moving   bool
	visible  bool
	attitude Attitude
}

// NewBall places a resting, visible ball. A non-nil rng gives it a random
// starting attitude so racks don't all show the same face.
func NewBall(number int, kind BallType, position Vec2, settings *Settings, rng *rand.Rand) *Ball {
	b := &Ball{
		number:   number,
		kind:     kind,
		settings: settings,
		position: position,
		visible:  true,
		attitude: NewAttitude(),
	}
	if rng != nil {
		b.attitude.RotateX(rng.Float64()*2*math.Pi - math.Pi)
		b.attitude.RotateY(rng.Float64()*2*math.Pi - math.Pi)
	}
	return b
}

// Number is the rack number, 0 for the cue ball.
func (b *Ball) Number() int { return b.number }

// Type is solid, striped or cue, derived from the number.
func (b *Ball) Type() BallType { return b.kind }

// Position is the centre of the ball in table coordinates.
func (b *Ball) Position() Vec2 { return b.position }

// Velocity is the displacement applied per update.
func (b *Ball) Velocity() Vec2 { return b.velocity }

// Spin is the residual rotation rate around each axis.
func (b *Ball) Spin() Rotation { return b.spin }

// Moving reports whether the ball has a non-zero velocity.
func (b *Ball) Moving() bool { return b.moving }

// Visible is false once the ball has been pocketed.
func (b *Ball) Visible() bool { return b.visible }

// Body is the ball's pole; the stripe band of a striped ball lies around it.
func (b *Ball) Body() Orientation { return b.attitude.Body() }

// Label is where the number spot faces.
func (b *Ball) Label() Orientation { return b.attitude.Label() }

// NextPosition is where the ball will be after the next friction step.
func (b *Ball) NextPosition() Vec2 {
	return b.position.Plus(b.velocity.Times(1 - b.settings.Friction))
}

// SetPosition moves the ball without touching its motion, for collision
// resolvers that correct overlap.
func (b *Ball) SetPosition(p Vec2) {
	b.position = p
}

// SetVelocity lets an external collision resolver redirect the ball.
func (b *Ball) SetVelocity(v Vec2) {
	b.setVelocity(v)
}

func (b *Ball) setVelocity(v Vec2) {
	b.velocity = v
	b.moving = v.Magnitude() > 0
}

// Strike sets the ball in motion. hitOffset is the contact point on the unit
// disc of the ball face: y gives draw/follow, x gives side spin. A hidden
// ball cannot be struck.
func (b *Ball) Strike(power, angle float64, hitOffset Vec2) {
	if !b.visible {
		return
	}
	sin, cos := math.Sincos(angle)
	b.setVelocity(NewVec2(power*cos, power*sin))

	k := power * hitOffset.Y * b.settings.PowerToSpinRatio
	b.spin = Rotation{
		X: k * sin,
		Y: k * cos,
		Z: power * hitOffset.X * b.settings.PowerToSpinRatio,
	}
	if !b.moving {
		b.spin = Rotation{}
	}
}

// Show respawns the ball at rest.
func (b *Ball) Show(position Vec2) {
	b.position = position
	b.setVelocity(Vec2{})
	b.spin = Rotation{}
	b.visible = true
}

// Hide retires the ball, e.g. when it is pocketed.
func (b *Ball) Hide() {
	b.setVelocity(Vec2{})
	b.spin = Rotation{}
	b.visible = false
}

// Update advances one frame. Resting or hidden balls are left untouched.
func (b *Ball) Update() {
	if !b.moving || !b.visible {
		return
	}
	s := b.settings

	b.setVelocity(b.velocity.Times(1 - s.Friction))
	b.position = b.position.Plus(b.velocity)

	// spin that opposes the roll decays faster
	b.spin.X *= spinDecay(b.velocity.Y, b.spin.X, s)
	b.spin.Y *= spinDecay(b.velocity.X, b.spin.Y, s)
	b.spin.Z *= 1 - s.RollingFriction

	b.attitude.Rotate(Rotation{
		X: b.velocity.Y*2/s.BallDiameter + b.spin.X,
		Y: b.velocity.X*2/s.BallDiameter + b.spin.Y,
		Z: b.spin.Z,
	})

	b.spin.X = snapSpin(b.spin.X)
	b.spin.Y = snapSpin(b.spin.Y)
	b.spin.Z = snapSpin(b.spin.Z)

	if b.velocity.Magnitude() >= s.MinVelocity {
		return
	}
	// a stalled ball still spinning in the table plane kicks off once; the
	// kick uses up that spin, so the next stall is a full stop
	if b.spin.X != 0 || b.spin.Y != 0 {
		b.setVelocity(NewVec2(
			b.spin.Y*s.BallDiameter/2*SpinKickFactor,
			b.spin.X*s.BallDiameter/2*SpinKickFactor,
		))
		b.spin.X, b.spin.Y = 0, 0
		return
	}
	b.stop()
}

func (b *Ball) stop() {
	b.setVelocity(Vec2{})
	b.spin = Rotation{}
}

func spinDecay(velocity, spin float64, s *Settings) float64 {
	if sign(velocity) == sign(spin) {
		return 1 - s.RollingFriction
	}
	return 1 - s.CounterRollingFriction
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func snapSpin(v float64) float64 {
	if math.Abs(v) < SpinEpsilon {
		return 0
	}
	return v
}

// BallState is the serialized view of a ball for renderers and snapshots.
type BallState struct {
	Number   int              `json:"number"`
	Type     string           `json:"type"`
	Position Vec2             `json:"position"`
	Velocity Vec2             `json:"velocity"`
	Spin     Rotation         `json:"spin"`
	Body     OrientationState `json:"body"`
	Label    OrientationState `json:"label"`
	Moving   bool             `json:"moving"`
	Visible  bool             `json:"visible"`
	Sprite   SpriteFrame      `json:"sprite"`
}

// State is the serialisable snapshot of the ball.
func (b *Ball) State() BallState {
	return BallState{
		Number:   b.number,
		Type:     b.kind.String(),
		Position: b.position,
		Velocity: b.velocity,
		Spin:     b.spin,
		Body:     b.Body().State(),
		Label:    b.Label().State(),
		Moving:   b.moving,
		Visible:  b.visible,
		Sprite:   SpriteFor(b),
	}
}
