package switchyard

import (
	"github.com/vovakirdan/switchyard/internal/config"
	"github.com/vovakirdan/switchyard/internal/core"
)

// TrainType is one row of the train type table.
type TrainType struct {
	Name   string
	Color  core.Color
	Speed  float64 // Multiplier applied on top of the global speed
	Points int     // Score per car when the train exits
	Weight float64 // Relative spawn probability
}

// trainTypes builds the type table from config.
func trainTypes(cfg config.TrainsConfig) []TrainType {
	types := make([]TrainType, 0, len(cfg.Types))
	for _, tc := range cfg.Types {
		types = append(types, TrainType{
			Name:   tc.Name,
			Color:  core.ParseColor(tc.Color),
			Speed:  tc.Speed,
			Points: tc.Points,
			Weight: tc.Weight,
		})
	}
	return types
}

// Train is a moving entity. X and Y are the lead car's position in canvas space;
// extra cars trail to the left and are never collision-tested.
type Train struct {
	X, Y     float64
	Track    int
	Type     TrainType
	Cars     int
	Stopped  bool
	Departed bool    // Set once the train has served the stop
	StopTime float64 // Game time in ms when the train reached the stop
}

// Value returns the score a train earns when it leaves the canvas.
func (t *Train) Value() int {
	return t.Type.Points * t.Cars
}

// Bounds returns the lead car's collision box.
func (t *Train) Bounds(cfg config.TrainsConfig) core.RectF {
	return core.NewRectF(t.X, t.Y, cfg.Width, cfg.Height)
}

// CarX returns the left edge of car i (0 is the lead car).
func (t *Train) CarX(i int, cfg config.TrainsConfig) float64 {
	return t.X - float64(i)*(cfg.Width+cfg.CarGap)
}

// DwellLeft returns the remaining stop time in ms, or 0 when moving.
func (t *Train) DwellLeft(now float64, dwellMs int) float64 {
	if !t.Stopped {
		return 0
	}
	return max(0, float64(dwellMs)-(now-t.StopTime))
}

// updateTrain advances one train by a tick and returns the indices of the
// switches that redirected it.
func updateTrain(t *Train, now, globalSpeed float64, cfg *config.SwitchyardConfig, switches []Switch) []int {
	stop := cfg.Stop

	if t.Track == stop.Track && t.X >= stop.X && !t.Stopped && !t.Departed {
		t.X = stop.X
		t.Stopped = true
		t.StopTime = now
	}

	if t.Stopped && now-t.StopTime > float64(stop.DwellMs) {
		t.Stopped = false
		t.Departed = true
		t.X = stop.X + stop.ResumeNudge
	}

	if !t.Stopped {
		t.X += t.Type.Speed * globalSpeed
	}

	var redirected []int
	for i := range switches {
		s := &switches[i]
		if !s.Active || core.AbsF(t.X-s.X) >= cfg.SwitchGeom.PassTolerance || t.Y != s.Y {
			continue
		}
		t.Track = s.ToTrack
		t.Y = cfg.Tracks[s.ToTrack]
		redirected = append(redirected, i)
	}
	return redirected
}
