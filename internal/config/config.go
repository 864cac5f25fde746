// Package config provides YAML-based simulation configuration loading and
// difficulty presets for the lander platform.
package config

// LanderConfig contains all tunables for the lunar lander simulation.
// The same config drives both the 2D and 3D games.
type LanderConfig struct {
	World   WorldConfig   `yaml:"world"`
	Lander  BodyConfig    `yaml:"lander"`
	Physics PhysicsConfig `yaml:"physics"`
	Terrain TerrainConfig `yaml:"terrain"`
	Safety  SafetyConfig  `yaml:"safety"`
}

// WorldConfig defines the play-area dimensions in world units.
// Length is the depth axis, used only in 3D mode.
type WorldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Length int `yaml:"length"`
}

// BodyConfig defines the craft's physical properties.
type BodyConfig struct {
	Width      float64 `yaml:"width"`       // Collision extent along x
	Height     float64 `yaml:"height"`      // Collision extent along y
	Depth      float64 `yaml:"depth"`       // Collision extent along z (3D)
	Mass       float64 `yaml:"mass"`        // Kilograms
	MaxThrust  float64 `yaml:"max_thrust"`  // Newtons at full throttle
	MaxFuel    float64 `yaml:"max_fuel"`    // Fuel units
	FuelRate   float64 `yaml:"fuel_rate"`   // Units per second at full throttle
	RotateRate float64 `yaml:"rotate_rate"` // Degrees per tick while a rotate key is held
}

// PhysicsConfig defines force-application parameters.
// GravityScale and ThrustFactor are tuning constants, not physical laws:
// they set the feel of the descent, not a derived acceleration.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`       // Surface gravity, m/s² (1.62 = Moon)
	GravityScale float64 `yaml:"gravity_scale"` // World-units-per-meter feel multiplier
	ThrustFactor float64 `yaml:"thrust_factor"` // Full-throttle acceleration in multiples of effective gravity
	AirDensity   float64 `yaml:"air_density"`   // kg/m³; zero on an airless body
	DragCoeff    float64 `yaml:"drag_coeff"`    // Dimensionless drag coefficient
	TimeScale    float64 `yaml:"time_scale"`    // Uniform simulation speed multiplier
	MaxStep      float64 `yaml:"max_step"`      // Delta-time ceiling in seconds
}

// TerrainConfig defines procedural terrain generation parameters.
type TerrainConfig struct {
	Cells       int     `yaml:"cells"`         // Horizontal cell count of the height profile
	MinHeight   float64 `yaml:"min_height"`    // Lowest allowed terrain height, world units
	MaxHeight   float64 `yaml:"max_height"`    // Highest allowed terrain height, world units
	MaxWalkStep float64 `yaml:"max_walk_step"` // Random-walk height step bound per cell
	PadCount    int     `yaml:"pad_count"`     // Number of landing pads to flatten
	PadWidth    float64 `yaml:"pad_width"`     // Minimum pad width, world units
}

// SafetyConfig defines the touchdown thresholds separating a landing
// from a crash.
type SafetyConfig struct {
	MaxVerticalSpeed   float64 `yaml:"max_vertical_speed"`   // World units per second
	MaxHorizontalSpeed float64 `yaml:"max_horizontal_speed"` // World units per second
	MaxTilt            float64 `yaml:"max_tilt"`             // Degrees of deviation from upright
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// GravityForPreset returns the surface gravity for a difficulty preset.
// Normal is lunar gravity; easy and hard bracket it.
func GravityForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 1.0
	case DifficultyNormal:
		return 1.62
	case DifficultyHard:
		return 2.0
	default:
		return 1.62
	}
}

// ValidPreset reports whether the preset names a known difficulty.
func ValidPreset(preset DifficultyPreset) bool {
	switch preset {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return true
	}
	return false
}

// Normalize clamps config values into usable ranges. It guarantees in
// particular that generated landing pads are never narrower than the
// craft's footprint.
func (c *LanderConfig) Normalize() {
	if c.World.Width <= 0 {
		c.World.Width = 800
	}
	if c.World.Height <= 0 {
		c.World.Height = 600
	}
	if c.World.Length <= 0 {
		c.World.Length = c.World.Width
	}
	if c.Lander.Mass <= 0 {
		c.Lander.Mass = 10000
	}
	if c.Physics.TimeScale <= 0 {
		c.Physics.TimeScale = 1.0
	}
	if c.Physics.MaxStep <= 0 {
		c.Physics.MaxStep = 0.1
	}
	if c.Terrain.Cells < 4 {
		c.Terrain.Cells = 4
	}
	if c.Terrain.PadCount < 1 {
		c.Terrain.PadCount = 1
	}
	if c.Terrain.PadWidth < c.Lander.Width {
		c.Terrain.PadWidth = c.Lander.Width
	}
	if c.Terrain.MaxHeight <= c.Terrain.MinHeight {
		c.Terrain.MaxHeight = c.Terrain.MinHeight + 1
	}
}
