// Package lander implements the lunar landing game in 2D and 3D variants.
// Guide the craft down onto a landing pad before the fuel runs out; the
// gentler the touchdown and the fuller the tanks, the higher the score.
package lander

import (
	"time"

	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/registry"
	"github.com/vovakirdan/tui-lander/internal/sim"
)

func init() {
	registry.Register("lander", func() registry.Game { return New2D() })
	registry.Register("lander3d", func() registry.Game { return New3D() })
}

// Package-level overrides set by the CLI before a game is created.
var (
	configPath       string
	difficultyPreset = config.DifficultyNormal
	heightmapPath    string
)

// SetConfigPath points the game at a custom simulation config file.
func SetConfigPath(path string) { configPath = path }

// SetDifficultyPreset selects the starting difficulty.
func SetDifficultyPreset(p config.DifficultyPreset) {
	if config.ValidPreset(p) {
		difficultyPreset = p
	}
}

// SetHeightmapPath points the 3D game at a hand-authored terrain file.
// Ignored in 2D mode.
func SetHeightmapPath(path string) { heightmapPath = path }

// phase tracks where an attempt is in its lifecycle.
type phase int

const (
	phaseReady phase = iota
	phaseFlying
	phaseLanded
	phaseCrashed
)

// Game is the lander game for one mode. It owns the simulation and turns
// semantic input actions into craft commands.
type Game struct {
	threeD bool

	cfg        config.LanderConfig
	difficulty config.DifficultyPreset
	runtime    core.RuntimeConfig

	lander *sim.Lander
	engine *sim.Engine

	segSurface *sim.SegmentSurface  // 2D terrain, nil in 3D mode
	triSurface *sim.TriangleSurface // 3D terrain, nil in 2D mode

	phase    phase
	paused   bool
	score    int
	fuelUsed float64

	// flight holds the attempt summary between the outcome tick and the
	// Step that hands it to the platform.
	flight *core.FlightSummary
}

// New2D creates the side-view variant.
func New2D() *Game {
	return &Game{difficulty: difficultyPreset}
}

// New3D creates the full three-axis variant.
func New3D() *Game {
	return &Game{threeD: true, difficulty: difficultyPreset}
}

// ID returns "lander" or "lander3d".
func (g *Game) ID() string {
	if g.threeD {
		return "lander3d"
	}
	return "lander"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.threeD {
		return "Lunar Lander 3D"
	}
	return "Lunar Lander"
}

// Reset loads config, regenerates terrain and puts a fresh craft on the
// READY screen. The same runtime seed always produces the same terrain.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg

	loaded, err := config.LoadLander(configPath)
	if err != nil {
		loaded = config.DefaultLanderConfig()
	}
	if err := config.ApplyLanderPreset(&loaded, g.difficulty); err != nil {
		g.difficulty = config.DifficultyNormal
		loaded.Physics.Gravity = config.GravityForPreset(g.difficulty)
	}
	g.cfg = loaded

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.buildTerrain(seed)
	g.buildCraft()
	g.resetAttempt()
}

func (g *Game) buildTerrain(seed int64) {
	g.segSurface = nil
	g.triSurface = nil

	if g.threeD && heightmapPath != "" {
		if hm, err := sim.LoadHeightmap(heightmapPath); err == nil {
			g.triSurface = hm.Surface(float64(g.cfg.World.Width), float64(g.cfg.World.Length))
			return
		}
		// Fall through to procedural terrain if the file is unusable.
	}

	gen := sim.NewGenerator(sim.TerrainParams{
		Cells:       g.cfg.Terrain.Cells,
		MinHeight:   g.cfg.Terrain.MinHeight,
		MaxHeight:   g.cfg.Terrain.MaxHeight,
		MaxWalkStep: g.cfg.Terrain.MaxWalkStep,
		PadCount:    g.cfg.Terrain.PadCount,
		PadWidth:    g.cfg.Terrain.PadWidth,
	}, seed)

	if g.threeD {
		g.triSurface = gen.Generate3D(float64(g.cfg.World.Width), float64(g.cfg.World.Length))
	} else {
		g.segSurface = gen.Generate2D(float64(g.cfg.World.Width))
	}
}

func (g *Game) surface() sim.Surface {
	if g.threeD {
		return g.triSurface
	}
	return g.segSurface
}

func (g *Game) buildCraft() {
	params := sim.LanderParams{
		Width:     g.cfg.Lander.Width,
		Height:    g.cfg.Lander.Height,
		Depth:     g.cfg.Lander.Depth,
		Mass:      g.cfg.Lander.Mass,
		MaxThrust: g.cfg.Lander.MaxThrust,
		MaxFuel:   g.cfg.Lander.MaxFuel,
		FuelRate:  g.cfg.Lander.FuelRate,
	}
	g.lander = sim.NewLander(params, g.startPos())

	g.engine = sim.NewEngine(
		sim.PhysicsParams{
			Gravity:      g.cfg.Physics.Gravity,
			GravityScale: g.cfg.Physics.GravityScale,
			ThrustFactor: g.cfg.Physics.ThrustFactor,
			AirDensity:   g.cfg.Physics.AirDensity,
			DragCoeff:    g.cfg.Physics.DragCoeff,
			TimeScale:    g.cfg.Physics.TimeScale,
			MaxStep:      g.cfg.Physics.MaxStep,
		},
		sim.SafetyParams{
			MaxVerticalSpeed:   g.cfg.Safety.MaxVerticalSpeed,
			MaxHorizontalSpeed: g.cfg.Safety.MaxHorizontalSpeed,
			MaxTilt:            g.cfg.Safety.MaxTilt,
		},
	)
	g.engine.RegisterLander(g.lander)
	g.engine.RegisterSurface(g.surface())
}

// startPos places the craft high above the middle of the world.
func (g *Game) startPos() sim.Vec3 {
	w := float64(g.cfg.World.Width)
	h := float64(g.cfg.World.Height)
	if g.threeD {
		return sim.Vec3{X: w / 2, Y: 2 * h / 3, Z: float64(g.cfg.World.Length) / 2}
	}
	return sim.Vec3{X: w / 2, Y: h - 100}
}

// resetAttempt rewinds to READY without regenerating terrain.
func (g *Game) resetAttempt() {
	g.lander.Reset(g.startPos())
	g.engine.Reset()
	g.phase = phaseReady
	g.paused = false
	g.score = 0
	g.fuelUsed = 0
	g.flight = nil
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if preset, ok := requestedDifficulty(input); ok && preset != g.difficulty {
		g.difficulty = preset
		g.Reset(g.runtime)
		return g.result()
	}

	if input.Has(core.ActionPause) && g.phase == phaseFlying {
		g.paused = !g.paused
	}

	switch g.phase {
	case phaseReady:
		if input.Has(core.ActionStart) {
			g.phase = phaseFlying
		}
	case phaseFlying:
		if !g.paused {
			g.stepFlight(input)
		}
	case phaseLanded, phaseCrashed:
		if input.Has(core.ActionRestart) {
			g.resetAttempt()
		}
	}

	return g.result()
}

func (g *Game) stepFlight(input core.InputFrame) {
	if input.Has(core.ActionThrust) {
		g.lander.SetThrust(1)
	} else {
		g.lander.SetThrust(0)
	}
	if input.Has(core.ActionRotateLeft) {
		g.lander.RotateLeft(g.cfg.Lander.RotateRate)
	}
	if input.Has(core.ActionRotateRight) {
		g.lander.RotateRight(g.cfg.Lander.RotateRate)
	}
	if g.threeD {
		if input.Has(core.ActionPitchForward) {
			g.lander.PitchForward(g.cfg.Lander.RotateRate)
		}
		if input.Has(core.ActionPitchBack) {
			g.lander.PitchBack(g.cfg.Lander.RotateRate)
		}
	}

	fuelBefore := g.lander.Fuel
	outcome := g.engine.Update(g.dt())
	g.fuelUsed += fuelBefore - g.lander.Fuel

	switch outcome {
	case sim.OutcomeLanded:
		g.phase = phaseLanded
		g.score = int(g.lander.Fuel / g.lander.Params.MaxFuel * 1000)
		g.recordFlight(outcome)
	case sim.OutcomeCrashed:
		g.phase = phaseCrashed
		g.score = 0
		g.recordFlight(outcome)
	}
}

func (g *Game) recordFlight(outcome sim.Outcome) {
	g.flight = &core.FlightSummary{
		Outcome:    outcome.String(),
		Score:      g.score,
		FuelUsed:   g.fuelUsed,
		Duration:   g.engine.Elapsed(),
		Difficulty: string(g.difficulty),
	}
}

func (g *Game) dt() float64 {
	tick := g.runtime.TickRate
	if tick <= 0 {
		tick = 60
	}
	return 1.0 / float64(tick)
}

// result snapshots the game state and hands over a pending flight summary
// exactly once.
func (g *Game) result() core.StepResult {
	res := core.StepResult{State: g.State(), Flight: g.flight}
	g.flight = nil
	return res
}

// State reports score and lifecycle for the platform.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.phase == phaseLanded || g.phase == phaseCrashed,
		Paused:   g.paused,
	}
}

func requestedDifficulty(input core.InputFrame) (config.DifficultyPreset, bool) {
	switch {
	case input.Has(core.ActionEasy):
		return config.DifficultyEasy, true
	case input.Has(core.ActionNormal):
		return config.DifficultyNormal, true
	case input.Has(core.ActionHard):
		return config.DifficultyHard, true
	}
	return "", false
}
