package lander

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/sim"
)

const hudRows = 2

// Render draws terrain, craft and telemetry into the screen buffer.
// The 3D variant shows the vertical slice of the mesh at the craft's depth
// with a depth gauge in the HUD.
func (g *Game) Render(s *core.Screen) {
	s.Clear()
	if g.lander == nil {
		return
	}

	g.drawTerrain(s)
	g.drawLander(s)
	g.drawHUD(s)
	g.drawPhaseOverlay(s)
}

// playHeight returns the rows available below the HUD.
func playHeight(s *core.Screen) int {
	return s.Height() - hudRows
}

// worldToScreenX maps a world x coordinate to a screen column.
func (g *Game) worldToScreenX(s *core.Screen, wx float64) int {
	return int(wx / float64(g.cfg.World.Width) * float64(s.Width()))
}

// worldToScreenY maps a world y coordinate (y up) to a screen row (y down).
func (g *Game) worldToScreenY(s *core.Screen, wy float64) int {
	h := playHeight(s)
	row := h - 1 - int(wy/float64(g.cfg.World.Height)*float64(h))
	return hudRows + row
}

// columnFootprint is the thin ground-plane slice a screen column covers,
// pinned to the craft's depth in 3D so the view follows the craft.
func (g *Game) columnFootprint(s *core.Screen, col int) sim.Footprint {
	unitsPerCol := float64(g.cfg.World.Width) / float64(s.Width())
	wx := float64(col) * unitsPerCol
	fp := sim.Footprint{MinX: wx, MaxX: wx + unitsPerCol}
	if g.threeD {
		fp.MinZ = g.lander.Pos.Z
		fp.MaxZ = g.lander.Pos.Z
	}
	return fp
}

func (g *Game) drawTerrain(s *core.Screen) {
	surface := g.surface()
	for col := 0; col < s.Width(); col++ {
		fp := g.columnFootprint(s, col)
		ground, ok := surface.SupportHeight(fp)
		if !ok {
			continue
		}

		top := g.worldToScreenY(s, ground)
		pad := surface.OnLandingPad(fp)
		for row := top; row < s.Height(); row++ {
			if pad && row == top {
				s.SetCell(col, row, '=', core.ColorBrightGreen)
			} else {
				s.SetCell(col, row, '^', core.ColorGray)
			}
		}
	}
}

func (g *Game) drawLander(s *core.Screen) {
	l := g.lander
	x := g.worldToScreenX(s, l.Pos.X)
	y := g.worldToScreenY(s, l.Pos.Y)

	glyph := '▲'
	color := core.ColorBrightWhite
	switch {
	case g.phase == phaseCrashed:
		glyph = '✶'
		color = core.ColorBrightRed
	case l.Tilt() > 45:
		glyph = '◆'
	}
	s.SetCell(x, y, glyph, color)

	if l.ThrustActive && g.phase == phaseFlying {
		s.SetCell(x, y+1, 'v', core.ColorOrange)
	}
}

func (g *Game) drawHUD(s *core.Screen) {
	l := g.lander
	ground, _ := g.surface().SupportHeight(l.Footprint())
	altitude := l.BottomY() - ground

	line1 := fmt.Sprintf(" FUEL %4.0f/%4.0f  ALT %5.0f  SCORE %4d  [%s]",
		l.Fuel, l.Params.MaxFuel, altitude, g.score, g.difficulty)
	line2 := fmt.Sprintf(" VX %+6.1f  VY %+6.1f  TILT %5.1f°  T %5.1fs",
		l.Vel.X, l.Vel.Y, l.Tilt(), g.engine.Elapsed())
	if g.threeD {
		line2 += fmt.Sprintf("  Z %5.0f  VZ %+6.1f", l.Pos.Z, l.Vel.Z)
	}

	fuelColor := core.ColorBrightGreen
	if l.Fuel < l.Params.MaxFuel*0.25 {
		fuelColor = core.ColorBrightRed
	} else if l.Fuel < l.Params.MaxFuel*0.5 {
		fuelColor = core.ColorBrightYellow
	}
	s.DrawTextColored(0, 0, line1, fuelColor)
	s.DrawTextColored(0, 1, line2, core.ColorCyan)
}

func (g *Game) drawPhaseOverlay(s *core.Screen) {
	switch g.phase {
	case phaseReady:
		g.drawMessage(s, g.Title(), "ENTER to launch  ·  1/2/3 difficulty")
	case phaseLanded:
		g.drawMessage(s, "TOUCHDOWN", fmt.Sprintf("Score %d  ·  R to fly again", g.score))
	case phaseCrashed:
		g.drawMessage(s, "CRASHED", "R to fly again")
	default:
		if g.paused {
			g.drawMessage(s, "PAUSED", "P to resume")
		}
	}
}

// drawMessage centers a two-line boxed message on the screen. Widths are
// measured in runes, not bytes, so multibyte hints stay centered.
func (g *Game) drawMessage(s *core.Screen, title, hint string) {
	titleW := utf8.RuneCountInString(title)
	hintW := utf8.RuneCountInString(hint)
	w := hintW + 4
	if titleW+4 > w {
		w = titleW + 4
	}
	box := core.NewRect((s.Width()-w)/2, s.Height()/2-2, w, 4)

	s.DrawRect(core.NewRect(box.X+1, box.Y+1, box.W-2, box.H-2), ' ')
	s.DrawBox(box)
	s.DrawTextColored(box.X+(w-titleW)/2, box.Y+1, title, core.ColorBrightYellow)
	s.DrawTextColored(box.X+(w-hintW)/2, box.Y+2, hint, core.ColorWhite)
}
