package switchyard

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/switchyard/internal/config"
)

// Spawner decides when and what kind of train enters the canvas.
type Spawner struct {
	rng       *rand.Rand
	types     []TrainType
	cfg       *config.SwitchyardConfig
	lastSpawn float64 // Game time in ms of the last successful spawn
}

// NewSpawner creates a spawner with a seeded RNG.
func NewSpawner(seed int64, types []TrainType, cfg *config.SwitchyardConfig) *Spawner {
	sp := &Spawner{types: types, cfg: cfg}
	sp.Reset(seed)
	return sp
}

// Reset reseeds the RNG and arms the next spawn immediately.
func (sp *Spawner) Reset(seed int64) {
	sp.rng = rand.New(rand.NewSource(seed))
	sp.Rearm()
}

// Rearm makes the next Update spawn without waiting for the interval.
// The RNG stream is kept.
func (sp *Spawner) Rearm() {
	sp.lastSpawn = math.Inf(-1)
}

// LastSpawn returns the game time of the last spawn.
func (sp *Spawner) LastSpawn() float64 {
	return sp.lastSpawn
}

// Update returns a new train when the spawn interval has elapsed and the
// previous train has moved far enough along. last is the most recently
// spawned train still on the canvas, or nil.
func (sp *Spawner) Update(now float64, interval int, globalSpeed float64, last *Train) (Train, bool) {
	if now-sp.lastSpawn <= float64(interval) {
		return Train{}, false
	}

	tt := sp.pickType()
	cars := sp.cfg.Spawn.MinCars + sp.rng.Intn(sp.cfg.Spawn.MaxCars-sp.cfg.Spawn.MinCars+1)

	if last != nil && sp.cfg.Canvas.Width-last.X < sp.requiredSpacing(tt, last.Type, globalSpeed) {
		return Train{}, false
	}

	sp.lastSpawn = now
	track := sp.cfg.Spawn.Track
	return Train{
		X:     sp.cfg.Spawn.StartX,
		Y:     sp.cfg.Tracks[track],
		Track: track,
		Type:  tt,
		Cars:  cars,
	}, true
}

// requiredSpacing is the distance the previous train must have from the right
// edge before a train of type next may enter. A faster follower needs more room.
func (sp *Spawner) requiredSpacing(next, prev TrainType, globalSpeed float64) float64 {
	newSpeed := next.Speed * globalSpeed
	lastSpeed := prev.Speed * globalSpeed
	required := sp.cfg.Spawn.MinSpacing
	if newSpeed >= lastSpeed {
		required += (newSpeed - lastSpeed) * sp.cfg.Spawn.SpacingFactor
	}
	return required
}

// pickType chooses a train type by weight.
func (sp *Spawner) pickType() TrainType {
	total := 0.0
	for _, tt := range sp.types {
		total += tt.Weight
	}
	if total <= 0 {
		return sp.types[sp.rng.Intn(len(sp.types))]
	}

	roll := sp.rng.Float64() * total
	for _, tt := range sp.types {
		if roll < tt.Weight {
			return tt
		}
		roll -= tt.Weight
	}
	return sp.types[len(sp.types)-1]
}
