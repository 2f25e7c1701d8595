package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Rotation is a three-axis angle triple. It carries both spin rates and the
// per-frame rotation applied to an orientation.
type Rotation struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

func (r Rotation) IsZero() bool {
	return r.X == 0 && r.Y == 0 && r.Z == 0
}

// Azimuth is the quadrant-corrected arctangent of y/x, in (-π, π].
// It is 0 at the origin where the angle is undefined.
func Azimuth(x, y float64) float64 {
	if x == 0 && y == 0 {
		return 0
	}
	alpha := math.Atan(y / x)
	if x < 0 {
		if y < 0 {
			alpha -= math.Pi
		} else {
			alpha += math.Pi
		}
	}
	return alpha
}

// Orientation is a point on the unit sphere. The Cartesian vector is the only
// stored state; spherical angles are derived on demand.
type Orientation struct {
	v mgl64.Vec3
}

// NewOrientation builds an orientation from azimuth φ and inclination θ.
func NewOrientation(azimuth, inclination float64) Orientation {
	st, ct := math.Sincos(inclination)
	sp, cp := math.Sincos(azimuth)
	return Orientation{v: mgl64.Vec3{st * cp, st * sp, ct}}
}

func orientationFromVec3(v mgl64.Vec3) Orientation {
	return Orientation{v: v}
}

// X, Y and Z are the Cartesian components of the unit vector.
func (o Orientation) X() float64 { return o.v[0] }
func (o Orientation) Y() float64 { return o.v[1] }
func (o Orientation) Z() float64 { return o.v[2] }

// Vec3 returns the Cartesian unit vector.
func (o Orientation) Vec3() mgl64.Vec3 { return o.v }

// Azimuth returns φ in (-π, π].
func (o Orientation) Azimuth() float64 {
	return Azimuth(o.v[0], o.v[1])
}

// Inclination returns θ in [0, π].
func (o Orientation) Inclination() float64 {
	z := o.v[2]
	// rounding can push |z| a hair past 1 after many rotations
	if z > 1 {
		z = 1
	} else if z < -1 {
		z = -1
	}
	return math.Acos(z)
}

func (o Orientation) Copy() Orientation {
	return o
}

func (o *Orientation) RotateX(angle float64) {
	s, c := math.Sincos(angle)
	y, z := o.v[1], o.v[2]
	o.v[1] = y*c - z*s
	o.v[2] = y*s + z*c
}

func (o *Orientation) RotateY(angle float64) {
	s, c := math.Sincos(angle)
	x, z := o.v[0], o.v[2]
	o.v[0] = x*c + z*s
	o.v[2] = -x*s + z*c
}

func (o *Orientation) RotateZ(angle float64) {
	s, c := math.Sincos(angle)
	x, y := o.v[0], o.v[1]
	o.v[0] = x*c - y*s
	o.v[1] = x*s + y*c
}

// Rotate applies X, then Y, then Z. The order is not commutative.
func (o *Orientation) Rotate(r Rotation) {
	o.RotateX(r.X)
	o.RotateY(r.Y)
	o.RotateZ(r.Z)
}

// OrientationState is the serialized form of an orientation.
type OrientationState struct {
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Z           float64 `json:"z"`
	Azimuth     float64 `json:"azimuth"`
	Inclination float64 `json:"inclination"`
}

// State returns both the Cartesian and the spherical form.
func (o Orientation) State() OrientationState {
	return OrientationState{
		X:           o.v[0],
		Y:           o.v[1],
		Z:           o.v[2],
		Azimuth:     o.Azimuth(),
		Inclination: o.Inclination(),
	}
}
