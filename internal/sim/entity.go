package sim

import "math"

// LanderParams are the immutable physical properties of a craft.
type LanderParams struct {
	Width     float64
	Height    float64
	Depth     float64
	Mass      float64
	MaxThrust float64
	MaxFuel   float64
	FuelRate  float64 // Fuel units per second at full throttle
}

// Lander is the controllable craft. Position is the center of its bounding
// box; rotation angles are degrees kept in [0, 360).
type Lander struct {
	Params LanderParams

	Pos Vec3
	Vel Vec3

	// RotZ tilts the craft left/right; RotX pitches it fore/aft (3D only).
	RotZ float64
	RotX float64

	Fuel         float64
	ThrustLevel  float64 // Throttle fraction in [0, 1]
	ThrustActive bool
}

// NewLander creates a craft at the given position with full tanks.
func NewLander(params LanderParams, pos Vec3) *Lander {
	return &Lander{
		Params: params,
		Pos:    pos,
		Fuel:   params.MaxFuel,
	}
}

// Reset returns the craft to the given position with full fuel, zero
// velocity and upright attitude.
func (l *Lander) Reset(pos Vec3) {
	l.Pos = pos
	l.Vel = Vec3{}
	l.RotZ = 0
	l.RotX = 0
	l.Fuel = l.Params.MaxFuel
	l.ThrustLevel = 0
	l.ThrustActive = false
}

// SetThrust sets the throttle, clamped to [0, 1]. Thrust stays inactive
// when the tanks are dry regardless of the requested level.
func (l *Lander) SetThrust(level float64) {
	l.ThrustLevel = math.Max(0, math.Min(1, level))
	l.ThrustActive = l.ThrustLevel > 0 && l.Fuel > 0
}

// RotateLeft tilts the craft counter-clockwise by deg degrees.
func (l *Lander) RotateLeft(deg float64) {
	l.RotZ = wrapDegrees(l.RotZ + deg)
}

// RotateRight tilts the craft clockwise by deg degrees.
func (l *Lander) RotateRight(deg float64) {
	l.RotZ = wrapDegrees(l.RotZ - deg)
}

// PitchForward pitches the craft nose-down by deg degrees (3D mode).
func (l *Lander) PitchForward(deg float64) {
	l.RotX = wrapDegrees(l.RotX + deg)
}

// PitchBack pitches the craft nose-up by deg degrees (3D mode).
func (l *Lander) PitchBack(deg float64) {
	l.RotX = wrapDegrees(l.RotX - deg)
}

// ConsumeFuel burns fuel for dt seconds at the current throttle and cuts
// the engine when the tanks run dry. Burn is proportional to throttle.
func (l *Lander) ConsumeFuel(dt float64) {
	if !l.ThrustActive || l.ThrustLevel <= 0 {
		return
	}
	l.Fuel -= l.Params.FuelRate * l.ThrustLevel * dt
	if l.Fuel <= 0 {
		l.Fuel = 0
		l.ThrustActive = false
	}
}

// Tilt returns the craft's deviation from upright in degrees, taking the
// shorter way around the circle on both axes.
func (l *Lander) Tilt() float64 {
	return math.Max(angleFromUpright(l.RotZ), angleFromUpright(l.RotX))
}

// Stop zeroes the craft's velocity and cuts the engine. Called once the
// attempt has ended so the craft stays frozen where it came down.
func (l *Lander) Stop() {
	l.Vel = Vec3{}
	l.ThrustLevel = 0
	l.ThrustActive = false
}

// Footprint returns the craft's ground-plane extent.
func (l *Lander) Footprint() Footprint {
	return Footprint{
		MinX: l.Pos.X - l.Params.Width/2,
		MaxX: l.Pos.X + l.Params.Width/2,
		MinZ: l.Pos.Z - l.Params.Depth/2,
		MaxZ: l.Pos.Z + l.Params.Depth/2,
	}
}

// BottomY returns the y coordinate of the craft's underside.
func (l *Lander) BottomY() float64 {
	return l.Pos.Y - l.Params.Height/2
}

// wrapDegrees maps an angle into [0, 360).
func wrapDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// angleFromUpright returns how far a wrapped angle is from zero, in
// degrees, never exceeding 180.
func angleFromUpright(deg float64) float64 {
	return math.Min(deg, 360-deg)
}
