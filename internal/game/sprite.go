package game

import "math"

// SpriteFrame tells a 2D renderer which roll frame to draw and how to place
// the number spot. It carries no drawing state of its own.
type SpriteFrame struct {
	Section  int     `json:"section"`  // 1..SpriteSections for striped balls, 0 otherwise
	Rotation float64 `json:"rotation"` // canvas rotation of the striped sprite

	SpotVisible bool    `json:"spot_visible"`
	SpotX       float64 `json:"spot_x"` // label position on the ball face, unit radius
	SpotY       float64 `json:"spot_y"`
	SpotAngle   float64 `json:"spot_angle"` // azimuth of the spot around the ball centre
	SpotTwist   float64 `json:"spot_twist"` // spin of the spot sprite about its own centre
	SpotScale   float64 `json:"spot_scale"` // vertical squash near the silhouette
}

// SpriteFor derives the render frame of a ball from its attitude.
func SpriteFor(b *Ball) SpriteFrame {
	body := b.Body()
	label := b.Label()

	var f SpriteFrame
	if b.number > 8 {
		f.Rotation = -body.Azimuth() - math.Pi/2
		f.Section = spriteSection(body.Inclination())
	}

	if label.Z() > SpotVisibleZ {
		f.SpotVisible = true
		f.SpotX = label.X()
		f.SpotY = label.Y()
		f.SpotAngle = Azimuth(label.X(), label.Y())

		twist := body.Copy()
		twist.RotateZ(-label.Azimuth())
		twist.RotateY(-label.Inclination())
		f.SpotTwist = twist.Azimuth() + math.Pi

		f.SpotScale = label.Z()*0.8 + 0.2
	}
	return f
}

func spriteSection(inclination float64) int {
	step := math.Pi / SpriteSections
	section := int(math.Round(inclination/step)) + 1
	if section > SpriteSections {
		section = 1
	}
	return section
}
