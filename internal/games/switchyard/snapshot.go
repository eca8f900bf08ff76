package switchyard

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StatePaused   GameStateType = "paused"
	StateGameOver GameStateType = "game_over"
)

// TrainSnapshot captures one train.
type TrainSnapshot struct {
	X, Y    float64
	Track   int
	Type    string
	Cars    int
	Stopped bool
}

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Score     int
	HighScore int
	Passed    int
	Speed     float64
	Interval  int
	Switches  []bool
	Trains    []TrainSnapshot
	State     GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	switches := make([]bool, len(g.switches))
	for i, s := range g.switches {
		switches[i] = s.Active
	}

	trains := make([]TrainSnapshot, len(g.trains))
	for i, t := range g.trains {
		trains[i] = TrainSnapshot{
			X:       t.X,
			Y:       t.Y,
			Track:   t.Track,
			Type:    t.Type.Name,
			Cars:    t.Cars,
			Stopped: t.Stopped,
		}
	}

	return Snapshot{
		Tick:      g.tick,
		Score:     g.score,
		HighScore: g.highScore,
		Passed:    g.passed,
		Speed:     g.speed,
		Interval:  g.interval,
		Switches:  switches,
		Trains:    trains,
		State:     state,
	}
}
