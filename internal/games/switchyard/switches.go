package switchyard

import "github.com/vovakirdan/switchyard/internal/config"

// Switch redirects trains on its source track to ToTrack while Active.
type Switch struct {
	X       float64
	Y       float64 // Source track Y
	Track   int     // Source track index
	ToTrack int
	ToY     float64
	Active  bool
}

// newSwitches lays out the configured switches, all inactive.
func newSwitches(cfg *config.SwitchyardConfig) []Switch {
	switches := make([]Switch, 0, len(cfg.Switches))
	for _, sc := range cfg.Switches {
		switches = append(switches, Switch{
			X:       sc.X,
			Y:       cfg.Tracks[sc.Track],
			Track:   sc.Track,
			ToTrack: sc.ToTrack,
			ToY:     cfg.Tracks[sc.ToTrack],
		})
	}
	return switches
}

// Toggle flips the switch.
func (s *Switch) Toggle() {
	s.Active = !s.Active
}

// Hit reports whether a pointer at (px, py) lands in the switch's hit box.
func (s *Switch) Hit(px, py float64, geom config.SwitchGeometry) bool {
	halfW := geom.Length * 1.5
	dx := px - s.X
	dy := py - s.Y
	return dx > -halfW && dx < halfW && dy > -geom.HitHalfHeight && dy < geom.HitHalfHeight
}

// toggleAt flips every switch whose hit box contains the point and returns
// the indices flipped. Overlapping hit boxes all toggle.
func toggleAt(switches []Switch, px, py float64, geom config.SwitchGeometry) []int {
	var flipped []int
	for i := range switches {
		if switches[i].Hit(px, py, geom) {
			switches[i].Toggle()
			flipped = append(flipped, i)
		}
	}
	return flipped
}
