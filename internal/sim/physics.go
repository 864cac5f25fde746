package sim

import "math"

// PhysicsParams tune force application and integration.
type PhysicsParams struct {
	Gravity      float64 // Surface gravity, m/s²
	GravityScale float64 // World-units-per-meter multiplier
	ThrustFactor float64 // Full-throttle acceleration in multiples of effective gravity
	AirDensity   float64 // kg/m³; zero disables drag entirely
	DragCoeff    float64
	TimeScale    float64 // Uniform simulation speed multiplier
	MaxStep      float64 // Delta-time ceiling in seconds
}

// SafetyParams are the touchdown thresholds separating a landing from a
// crash.
type SafetyParams struct {
	MaxVerticalSpeed   float64
	MaxHorizontalSpeed float64
	MaxTilt            float64 // Degrees
}

// Outcome is the result of one physics step.
type Outcome int

const (
	OutcomeNone    Outcome = iota // Still flying
	OutcomeLanded                 // Touched down inside all safety limits on a pad
	OutcomeCrashed                // Touched down too hard, tilted, or off-pad
)

// String returns a lowercase name suitable for logs and storage.
func (o Outcome) String() string {
	switch o {
	case OutcomeLanded:
		return "landed"
	case OutcomeCrashed:
		return "crashed"
	default:
		return "flying"
	}
}

// Engine advances a craft over a surface one fixed step at a time using
// forward Euler integration. Craft and surface are registered separately
// so terrain can be swapped without rebuilding the engine.
type Engine struct {
	physics PhysicsParams
	safety  SafetyParams

	lander  *Lander
	surface Surface

	elapsed float64
	outcome Outcome
}

// NewEngine creates an engine with no craft or surface registered.
func NewEngine(physics PhysicsParams, safety SafetyParams) *Engine {
	if physics.TimeScale <= 0 {
		physics.TimeScale = 1
	}
	if physics.MaxStep <= 0 {
		physics.MaxStep = 0.1
	}
	return &Engine{physics: physics, safety: safety}
}

// RegisterLander attaches the craft the engine will advance.
func (e *Engine) RegisterLander(l *Lander) {
	e.lander = l
}

// RegisterSurface attaches the terrain the craft flies over.
func (e *Engine) RegisterSurface(s Surface) {
	e.surface = s
}

// SetGravity changes surface gravity mid-session, for difficulty switches.
func (e *Engine) SetGravity(g float64) {
	e.physics.Gravity = g
}

// Gravity returns the current surface gravity.
func (e *Engine) Gravity() float64 {
	return e.physics.Gravity
}

// Elapsed returns accumulated simulated time in seconds.
func (e *Engine) Elapsed() float64 {
	return e.elapsed
}

// Outcome returns the latched touchdown result, OutcomeNone while flying.
func (e *Engine) Outcome() Outcome {
	return e.outcome
}

// Reset rewinds the clock and outcome latch for a new attempt.
func (e *Engine) Reset() {
	e.elapsed = 0
	e.outcome = OutcomeNone
}

// Update advances the simulation by dt seconds and reports whether the
// craft touched down this step. Steps larger than MaxStep are clamped so a
// stalled frame cannot tunnel the craft through terrain. The time scale
// stretches the whole step uniformly, forces and motion alike. Once an
// outcome is latched the craft stays frozen and time stops accumulating
// until Reset.
func (e *Engine) Update(dt float64) Outcome {
	if e.outcome != OutcomeNone {
		return e.outcome
	}
	if e.lander == nil || e.surface == nil || dt <= 0 {
		return OutcomeNone
	}

	if dt > e.physics.MaxStep {
		dt = e.physics.MaxStep
	}
	dt *= e.physics.TimeScale
	e.elapsed += dt

	l := e.lander
	accel := Vec3{Y: -e.physics.Gravity * e.physics.GravityScale}

	if l.ThrustActive && l.Fuel > 0 {
		accel = accel.Add(e.thrustAccel(l))
	}
	if e.physics.AirDensity > 0 {
		accel = accel.Add(e.dragAccel(l))
	}

	l.Vel = l.Vel.Add(accel.Scale(dt))
	l.Pos = l.Pos.Add(l.Vel.Scale(dt))
	l.ConsumeFuel(dt)

	return e.resolveContact(l)
}

// thrustAccel returns the engine's acceleration. Full throttle upright
// produces ThrustFactor times the effective gravity, so a capable pilot
// can always arrest a descent. Tilt redirects part of the thrust
// sideways: RotZ along x, RotX along z. This treats the two tilt axes as
// independent small rotations rather than composing a full rotation
// matrix, which is accurate for the shallow angles a survivable approach
// uses.
func (e *Engine) thrustAccel(l *Lander) Vec3 {
	f := e.physics.ThrustFactor * e.physics.Gravity * e.physics.GravityScale * l.ThrustLevel
	rotZ := l.RotZ * math.Pi / 180
	rotX := l.RotX * math.Pi / 180

	return Vec3{
		X: -math.Sin(rotZ) * f,
		Y: math.Cos(rotZ) * f,
		Z: -math.Sin(rotX) * f,
	}
}

// dragAccel returns quadratic aerodynamic drag opposing each velocity
// component independently (v·|v| per axis).
func (e *Engine) dragAccel(l *Lander) Vec3 {
	area := l.Params.Width * l.Params.Height
	k := 0.5 * e.physics.AirDensity * e.physics.DragCoeff * area / l.Params.Mass
	return Vec3{
		X: -k * l.Vel.X * math.Abs(l.Vel.X),
		Y: -k * l.Vel.Y * math.Abs(l.Vel.Y),
		Z: -k * l.Vel.Z * math.Abs(l.Vel.Z),
	}
}

// resolveContact checks for ground contact and classifies the touchdown.
// Classification uses the impact velocity before it is zeroed, so the
// recorded outcome reflects how hard the craft actually hit.
func (e *Engine) resolveContact(l *Lander) Outcome {
	fp := l.Footprint()
	support, ok := e.surface.SupportHeight(fp)
	if !ok || l.BottomY() > support {
		return OutcomeNone
	}

	impact := l.Vel
	l.Pos.Y = support + l.Params.Height/2

	e.outcome = OutcomeCrashed
	if e.safeTouchdown(l, impact, fp) {
		e.outcome = OutcomeLanded
	}
	l.Stop()
	return e.outcome
}

// safeTouchdown applies the three safety limits plus the pad requirement.
func (e *Engine) safeTouchdown(l *Lander, impact Vec3, fp Footprint) bool {
	if !e.surface.OnLandingPad(fp) {
		return false
	}
	if math.Abs(impact.Y) > e.safety.MaxVerticalSpeed {
		return false
	}
	if impact.HorizontalSpeed() > e.safety.MaxHorizontalSpeed {
		return false
	}
	if l.Tilt() > e.safety.MaxTilt {
		return false
	}
	return true
}
