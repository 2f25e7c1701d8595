package game

import (
	"errors"
	"fmt"
)

// ErrInvalidSettings is wrapped by every Settings.Validate failure.
var ErrInvalidSettings = errors.New("invalid physics settings")

// HitMarker is the on-screen disc used to pick the cue-ball contact point.
// A zero Diameter disables it.
type HitMarker struct {
	Position Vec2    `json:"position"` // top-left corner
	Diameter float64 `json:"diameter"`
}

// Settings is the read-only configuration consumed by balls and the stick.
type Settings struct {
	Friction               float64 `json:"friction"`
	RollingFriction        float64 `json:"rolling_friction"`
	CounterRollingFriction float64 `json:"counter_rolling_friction"`
	PowerToSpinRatio       float64 `json:"power_to_spin_ratio"`
	BallDiameter           float64 `json:"ball_diameter"`
	MinVelocity            float64 `json:"min_velocity"`

	MaxPower       float64 `json:"max_power"`
	PowerRateScale float64 `json:"power_rate_scale"` // drag speed (units/ms) -> power

	TableSize   Vec2      `json:"table_size"`
	StickOrigin Vec2      `json:"stick_origin"`
	ShotOrigin  Vec2      `json:"shot_origin"`
	HitMarker   HitMarker `json:"hit_marker"`
}

// DefaultSettings returns the tuning used by the reference table.
func DefaultSettings() Settings {
	return Settings{
		Friction:               0.018,
		RollingFriction:        0.015,
		CounterRollingFriction: 0.06,
		PowerToSpinRatio:       0.02,
		BallDiameter:           38,
		MinVelocity:            0.05,
		MaxPower:               50,
		PowerRateScale:         200,
		TableSize:              NewVec2(1500, 825),
		StickOrigin:            NewVec2(970, 11),
		ShotOrigin:             NewVec2(950, 11),
		HitMarker:              HitMarker{Position: NewVec2(1520, 40), Diameter: 120},
	}
}

func (s Settings) Validate() error {
	if s.Friction < 0 || s.Friction >= 1 {
		return fmt.Errorf("%w: friction %v not in [0,1)", ErrInvalidSettings, s.Friction)
	}
	if s.RollingFriction < 0 || s.RollingFriction >= 1 {
		return fmt.Errorf("%w: rolling friction %v not in [0,1)", ErrInvalidSettings, s.RollingFriction)
	}
	if s.CounterRollingFriction < s.RollingFriction || s.CounterRollingFriction >= 1 {
		return fmt.Errorf("%w: counter-rolling friction %v not in [rolling friction,1)", ErrInvalidSettings, s.CounterRollingFriction)
	}
	if s.PowerToSpinRatio < 0 {
		return fmt.Errorf("%w: power-to-spin ratio %v is negative", ErrInvalidSettings, s.PowerToSpinRatio)
	}
	if s.BallDiameter <= 0 {
		return fmt.Errorf("%w: ball diameter %v must be positive", ErrInvalidSettings, s.BallDiameter)
	}
	if s.MinVelocity <= 0 {
		return fmt.Errorf("%w: min velocity %v must be positive", ErrInvalidSettings, s.MinVelocity)
	}
	if s.MaxPower <= 0 {
		return fmt.Errorf("%w: max power %v must be positive", ErrInvalidSettings, s.MaxPower)
	}
	if s.PowerRateScale <= 0 {
		return fmt.Errorf("%w: power rate scale %v must be positive", ErrInvalidSettings, s.PowerRateScale)
	}
	return nil
}
