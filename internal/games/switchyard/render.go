package switchyard

import (
	"fmt"
	"math"

	"github.com/vovakirdan/switchyard/internal/core"
)

// Visual characters for rendering
const (
	TrackChar    = '─'
	SwitchIdle   = '═'
	SwitchRoute  = '▓'
	HitBoxCorner = '·'
	CarChar      = '█'
	WindowChar   = '□'
	StopChar     = '▌'
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.drawTracks(dst)
	g.drawSwitches(dst)
	for i := range g.trains {
		g.drawTrain(dst, &g.trains[i])
	}
	g.drawHUD(dst)
	g.drawStop(dst)

	if g.debug {
		g.drawDebug(dst)
	}

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.gameOver {
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	}
}

// col maps a canvas x coordinate to a screen column.
func (g *Game) col(dst *core.Screen, x float64) int {
	return int(math.Floor(x * float64(dst.Width()) / g.cfg.Canvas.Width))
}

// row maps a canvas y coordinate to a screen row.
func (g *Game) row(dst *core.Screen, y float64) int {
	return int(math.Floor(y * float64(dst.Height()) / g.cfg.Canvas.Height))
}

func (g *Game) drawTracks(dst *core.Screen) {
	for _, y := range g.cfg.Tracks {
		dst.DrawHLineColored(0, g.row(dst, y), dst.Width(), TrackChar, core.ColorDarkGray)
	}
}

// drawSwitches draws each switch as a short stub on its source track, or a
// diagonal to the target track when active, plus its hit box corners and key.
func (g *Game) drawSwitches(dst *core.Screen) {
	half := g.cfg.SwitchGeom.Length / 2
	hitW := g.cfg.SwitchGeom.Length * 1.5
	hitH := g.cfg.SwitchGeom.HitHalfHeight

	for i, s := range g.switches {
		x0, x1 := g.col(dst, s.X-half), g.col(dst, s.X+half)
		y0 := g.row(dst, s.Y)

		left, right := g.col(dst, s.X-hitW), g.col(dst, s.X+hitW)
		top, bottom := g.row(dst, s.Y-hitH), g.row(dst, s.Y+hitH)
		for _, p := range [][2]int{{left, top}, {right, top}, {left, bottom}, {right, bottom}} {
			dst.SetColored(p[0], p[1], HitBoxCorner, core.ColorYellow)
		}

		if s.Active {
			dst.DrawLine(x0, y0, x1, g.row(dst, s.ToY), SwitchRoute, core.ColorGreen)
		} else {
			dst.DrawHLineColored(x0, y0, x1-x0+1, SwitchIdle, core.ColorBrown)
		}

		dst.DrawTextColored(g.col(dst, s.X), y0-1, fmt.Sprintf("%d", i+1), core.ColorYellow)
	}
}

// drawTrain draws every car of a train with two windows each.
func (g *Game) drawTrain(dst *core.Screen, t *Train) {
	y := g.row(dst, t.Y)
	w := g.cfg.Trains.Width

	for i := 0; i < t.Cars; i++ {
		carX := t.CarX(i, g.cfg.Trains)
		c0, c1 := g.col(dst, carX), g.col(dst, carX+w)
		if c1 <= c0 {
			c1 = c0 + 1
		}
		dst.DrawHLineColored(c0, y, c1-c0, CarChar, t.Type.Color)

		if c1-c0 >= 3 {
			dst.SetColored(g.col(dst, carX+w/4), y, WindowChar, core.ColorGray)
			dst.SetColored(g.col(dst, carX+3*w/4), y, WindowChar, core.ColorGray)
		}
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	scoreText := fmt.Sprintf(" Score: %d ", g.score)
	dst.DrawText(1, 0, scoreText)

	highText := fmt.Sprintf(" High Score: %d ", g.highScore)
	dst.DrawText(dst.Width()-len(highText)-1, 0, highText)
}

// drawStop marks the station on the stop track.
func (g *Game) drawStop(dst *core.Screen) {
	stop := g.cfg.Stop
	dst.SetColored(g.col(dst, stop.X), g.row(dst, g.cfg.Tracks[stop.Track]), StopChar, core.ColorRed)
}

// drawDebug prints one status line per train.
func (g *Game) drawDebug(dst *core.Screen) {
	now := g.now()
	for i := range g.trains {
		t := &g.trains[i]
		status := "MOVING"
		if t.Stopped {
			status = "STOPPED"
		}
		line := fmt.Sprintf("Train %d: x=%d, track=%d, %s %dms",
			i, int(math.Floor(t.X)), t.Track, status, int(t.DwellLeft(now, g.cfg.Stop.DwellMs)))
		dst.DrawTextColored(1, 2+i, line, core.ColorGray)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
