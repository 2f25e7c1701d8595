package game

import (
	"math"
	"time"
)

//go:generate go tool mockgen -destination=./mocks/stick_mock.go -package=mocks . StrikeSounder,Clock

// StrikeSounder plays the cue strike. volume is in [0,1].
type StrikeSounder interface {
	PlayStrike(volume float64)
}

// Clock is a monotonic millisecond source.
type Clock interface {
	NowMillis() int64
}

// SystemClock reads the process monotonic clock.
type SystemClock struct{}

var processStart = time.Now()

func (SystemClock) NowMillis() int64 {
	// offset by one so the first reading is never the "unset" zero
	return time.Since(processStart).Milliseconds() + 1
}

// InputState is one frame of pointer and key state. Pressed/Released are
// edges for this frame only; ButtonDown is the held level.
type InputState struct {
	Pointer Vec2 `json:"pointer"`

	ButtonDown     bool `json:"button_down"`
	ButtonPressed  bool `json:"button_pressed"`
	ButtonReleased bool `json:"button_released"`

	ToggleHitLinePressed bool `json:"toggle_hit_line_pressed"`

	NudgeUp    bool `json:"nudge_up"`
	NudgeDown  bool `json:"nudge_down"`
	NudgeLeft  bool `json:"nudge_left"`
	NudgeRight bool `json:"nudge_right"`
}

// Stick is the aiming controller. It turns pointer drags into a draw-back,
// a shot power and a contact point, and latches ShotTriggered once a drawn
// back cue is pushed through the ball.
type Stick struct {
	settings *Settings
	clock    Clock
	sounder  StrikeSounder

	position    Vec2 // cue ball centre the stick pivots around
	rotation    float64
	origin      Vec2
	drawBack    float64
	power       float64
	hitOffset   Vec2
	hitOrigin   float64
	movable     bool
	visible     bool
	showHitLine bool

	shotTriggered bool
	wasDrawnBack  bool

	pressOrigin  Vec2
	prevOffset   Vec2
	prevTime     int64
	prevPointer  Vec2
	pointerKnown bool
}

// NewStick creates a visible, movable stick aiming at position. sounder may be nil.
func NewStick(position Vec2, settings *Settings, clock Clock, sounder StrikeSounder) *Stick {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Stick{
		settings:    settings,
		clock:       clock,
		sounder:     sounder,
		position:    position,
		origin:      settings.StickOrigin,
		movable:     true,
		visible:     true,
		showHitLine: true,
	}
}

func (s *Stick) Position() Vec2 { return s.position }
func (s *Stick) Rotation() float64 { return s.rotation }
func (s *Stick) Origin() Vec2 { return s.origin }
func (s *Stick) DrawBack() float64 { return s.drawBack }
func (s *Stick) Power() float64 { return s.power }
func (s *Stick) HitOffset() Vec2 { return s.hitOffset }
func (s *Stick) HitOrigin() float64 { return s.hitOrigin }
func (s *Stick) Visible() bool { return s.visible }
func (s *Stick) Movable() bool { return s.movable }
func (s *Stick) ShowHitLine() bool { return s.showHitLine }
func (s *Stick) ShotTriggered() bool { return s.shotTriggered }

// ClearShot acknowledges a triggered shot.
func (s *Stick) ClearShot() {
	s.shotTriggered = false
}

// SetRotation overrides the aim, e.g. for scripted shots.
func (s *Stick) SetRotation(angle float64) {
	s.rotation = angle
}

// Gauge reports the power of the last stroke while the stick is parked.
func (s *Stick) Gauge() (float64, bool) {
	if s.movable {
		return 0, false
	}
	return s.power, true
}

// Update consumes one frame of input. It does nothing while the stick is parked.
func (s *Stick) Update(in InputState) {
	if !s.movable {
		return
	}
	s.updateRotation(in)
	s.updateHitOffset(in)
	s.updatePower(in)
}

// Shoot moves the stick to its struck pose and plays the strike.
func (s *Stick) Shoot() float64 {
	s.origin = s.settings.ShotOrigin
	volume := clamp(s.power/s.settings.MaxPower, 0, 1)
	if s.sounder != nil {
		s.sounder.PlayStrike(volume)
	}
	return volume
}

// Show starts a new aiming session at the cue ball.
func (s *Stick) Show(position Vec2) {
	s.power = 0
	s.position = position
	s.origin = s.settings.StickOrigin
	s.movable = true
	s.visible = true
}

// Hide parks the stick and clears the aiming session.
func (s *Stick) Hide() {
	s.visible = false
	s.movable = false
	s.resetCue()
}

func (s *Stick) updateRotation(in InputState) {
	if in.ButtonDown {
		s.setHitMarker(in.Pointer)
		s.prevPointer = in.Pointer
		s.pointerKnown = true
		return
	}
	if !s.pointerKnown || s.prevPointer.Minus(in.Pointer).Magnitude() > AimDeadZone {
		d := in.Pointer.Minus(s.position)
		if !d.IsZero() {
			s.rotation = math.Atan2(d.Y, d.X)
		}
		s.prevPointer = in.Pointer
		s.pointerKnown = true
	}
	if s.visible && in.ToggleHitLinePressed {
		s.showHitLine = !s.showHitLine
	}
}

// setHitMarker picks the contact point directly when the pointer is on the
// hit marker disc.
func (s *Stick) setHitMarker(pointer Vec2) {
	m := s.settings.HitMarker
	if m.Diameter <= 0 {
		return
	}
	r := m.Diameter / 2
	x := (pointer.X - m.Position.X - r) / r
	y := (pointer.Y - m.Position.Y - r) / r
	if x*x+y*y <= 1 {
		s.hitOffset = NewVec2(x, -y)
		s.hitOrigin = -x * s.settings.BallDiameter / 2 * HitOriginScale
	}
}

// updateHitOffset nudges the contact point. Axes are applied one after the
// other, each clamped against the other's current value, so the point stays
// on the unit disc.
func (s *Stick) updateHitOffset(in InputState) {
	if in.ButtonDown {
		return
	}
	x, y := s.hitOffset.X, s.hitOffset.Y
	if in.NudgeUp {
		y = nudge(y, HitNudgeStep, x)
	}
	if in.NudgeDown {
		y = nudge(y, -HitNudgeStep, x)
	}
	if in.NudgeRight {
		x = nudge(x, HitNudgeStep, y)
	}
	if in.NudgeLeft {
		x = nudge(x, -HitNudgeStep, y)
	}
	s.hitOffset = NewVec2(x, y)
	s.hitOrigin = -x * s.settings.BallDiameter / 2 * HitOriginScale
}

func nudge(v, step, other float64) float64 {
	limit := math.Sqrt(math.Max(0, 1-other*other))
	next := v + step
	if math.Abs(next) > limit {
		return math.Copysign(limit, step)
	}
	return next
}

// updatePower handles both edges arriving in one frame. With the button held
// at the end of the frame the release closed the previous drag and the press
// opened a new one, so the release goes first; otherwise it was a click.
func (s *Stick) updatePower(in InputState) {
	repressed := in.ButtonPressed && in.ButtonReleased && in.ButtonDown
	if repressed {
		s.resetSpeed()
	}
	if in.ButtonPressed {
		s.pressOrigin = in.Pointer
	}
	if in.ButtonDown {
		s.updateOffset(in.Pointer)
		s.updateSpeed(in.Pointer)
	}
	if in.ButtonPressed {
		s.initSpeed(in.Pointer)
	}
	if in.ButtonReleased && !repressed {
		s.resetSpeed()
	}
}

// updateOffset projects the drag onto the aim axis. Positive is draw-back.
// Forward travel is only allowed once the cue has been drawn back past the
// latch, and reaching the follow-through limit releases the shot.
func (s *Stick) updateOffset(pointer Vec2) {
	drag := pointer.Minus(s.pressOrigin)
	sin, cos := math.Sincos(s.rotation)
	d := -(drag.X*cos + drag.Y*sin)

	if d > DrawBackLatch {
		s.wasDrawnBack = true
	}
	if d > s.settings.MaxPower {
		d = s.settings.MaxPower
	}
	if d < 0 {
		if !s.wasDrawnBack {
			d = 0
		} else if d <= -FollowThroughLimit {
			d = -FollowThroughLimit
			s.shotTriggered = true
			s.wasDrawnBack = false
		}
	}
	s.drawBack = d
	s.origin = s.settings.StickOrigin.AddX(d * OriginShiftScale)
}

// updateSpeed estimates power from the forward speed of the drag between
// consecutive samples. Backward travel gives no power.
func (s *Stick) updateSpeed(pointer Vec2) {
	drag := pointer.Minus(s.pressOrigin)
	if s.prevTime != 0 && s.prevOffset.Magnitude() > 0 {
		now := s.clock.NowMillis()
		movement := drag.Minus(s.prevOffset)
		sin, cos := math.Sincos(s.rotation)
		forward := movement.X*cos + movement.Y*sin
		if forward <= 0 {
			s.power = 0
		} else if dt := now - s.prevTime; dt > 0 {
			s.power = math.Min(forward/float64(dt)*s.settings.PowerRateScale, s.settings.MaxPower)
		}
		s.prevTime = now
	}
	s.prevOffset = drag
}

func (s *Stick) initSpeed(pointer Vec2) {
	s.prevOffset = pointer.Minus(s.pressOrigin)
	s.prevTime = s.clock.NowMillis()
	s.power = 0
}

// resetSpeed ends a drag, shot or not. Nothing carries into the next press.
func (s *Stick) resetSpeed() {
	s.prevOffset = Vec2{}
	s.prevTime = 0
	s.drawBack = 0
	s.origin = s.settings.StickOrigin
	s.wasDrawnBack = false
}

func (s *Stick) resetCue() {
	s.resetSpeed()
	s.hitOffset = Vec2{}
	s.hitOrigin = 0
}

// StickState is the serialized view of the stick.
type StickState struct {
	Position    Vec2    `json:"position"`
	Rotation    float64 `json:"rotation"`
	Origin      Vec2    `json:"origin"`
	HitOrigin   float64 `json:"hit_origin"`
	DrawBack    float64 `json:"draw_back"`
	Power       float64 `json:"power"`
	HitOffset   Vec2    `json:"hit_offset"`
	Visible     bool    `json:"visible"`
	Movable     bool    `json:"movable"`
	ShowHitLine bool    `json:"show_hit_line"`
	Gauge       float64 `json:"gauge"`
	GaugeShown  bool    `json:"gauge_shown"`
}

func (s *Stick) State() StickState {
	g, shown := s.Gauge()
	return StickState{
		Position:    s.position,
		Rotation:    s.rotation,
		Origin:      s.origin,
		HitOrigin:   s.hitOrigin,
		DrawBack:    s.drawBack,
		Power:       s.power,
		HitOffset:   s.hitOffset,
		Visible:     s.visible,
		Movable:     s.movable,
		ShowHitLine: s.showHitLine,
		Gauge:       g,
		GaugeShown:  shown,
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
