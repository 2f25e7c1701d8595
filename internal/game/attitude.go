package game

import "github.com/go-gl/mathgl/mgl64"

var (
	axisX = mgl64.Vec3{1, 0, 0}
	axisY = mgl64.Vec3{0, 1, 0}
	axisZ = mgl64.Vec3{0, 0, 1}

	// Rest-frame markers: the body pole is Orientation(0, 0) and the label
	// sits a quarter turn away at Orientation(0, π/2).
	bodyRest  = axisZ
	labelRest = axisX
)

// Attitude is the rigid rotation of a ball relative to its rest frame.
// Body and label orientations are both derived from it, so the two markers
// can never drift apart.
type Attitude struct {
	q mgl64.Quat
}

func NewAttitude() Attitude {
	return Attitude{q: mgl64.QuatIdent()}
}

// Rotate composes an incremental rotation: X first, then Y, then Z, in world axes.
func (a *Attitude) Rotate(r Rotation) {
	a.RotateX(r.X)
	a.RotateY(r.Y)
	a.RotateZ(r.Z)
}

func (a *Attitude) RotateX(angle float64) { a.apply(angle, axisX) }
func (a *Attitude) RotateY(angle float64) { a.apply(angle, axisY) }
func (a *Attitude) RotateZ(angle float64) { a.apply(angle, axisZ) }

func (a *Attitude) apply(angle float64, axis mgl64.Vec3) {
	if angle == 0 {
		return
	}
	a.q = mgl64.QuatRotate(angle, axis).Mul(a.q).Normalize()
}

// Body is the orientation of the ball's pole marker.
func (a Attitude) Body() Orientation {
	return orientationFromVec3(a.q.Rotate(bodyRest))
}

// Label is the orientation of the number label marker.
func (a Attitude) Label() Orientation {
	return orientationFromVec3(a.q.Rotate(labelRest))
}
