package switchyard

import (
	"github.com/vovakirdan/switchyard/internal/config"
	"github.com/vovakirdan/switchyard/internal/core"
)

// findCollision checks every unordered pair of trains and returns the first
// pair in the same lane whose lead cars overlap.
func findCollision(trains []Train, cfg config.TrainsConfig) (int, int, bool) {
	for i := 0; i < len(trains); i++ {
		a := trains[i].Bounds(cfg)
		for j := i + 1; j < len(trains); j++ {
			if core.AbsF(trains[i].Y-trains[j].Y) >= cfg.LaneEpsilon {
				continue
			}
			if a.Intersects(trains[j].Bounds(cfg)) {
				return i, j, true
			}
		}
	}
	return -1, -1, false
}
