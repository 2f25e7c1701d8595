package game

// Fixed tuning constants of the motion and aiming model. The adjustable
// coefficients live in Settings.
const (
	NumBalls = 16 // 0=cue, 1-7=solids, 8=eight, 9-15=stripes

	SpinEpsilon    = 0.001 // spin below this magnitude snaps to zero
	SpinKickFactor = 1.2   // residual spin -> velocity gain when a ball stalls

	DrawBackLatch      = 3.0 // draw-back needed before a forward poke counts
	FollowThroughLimit = 5.0 // forward excursion that releases the shot
	OriginShiftScale   = 4.0 // stick sprite shift per unit of draw-back
	HitNudgeStep       = 0.1
	HitOriginScale     = 0.9
	AimDeadZone        = 0.01 // pointer travel needed to re-aim

	BallRestitution    = 0.94
	CushionRestitution = 0.6

	SpriteSections = 41   // striped ball roll frames per half turn
	SpotVisibleZ   = 0.08 // label drawn only when facing the viewer
)
