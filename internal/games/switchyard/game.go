// Package switchyard implements a train switching arcade game.
// Trains enter on the top track and run right; the player flips switches to
// route them across four tracks and keep them apart. Every train that leaves
// the canvas scores, and a collision ends the run.
package switchyard

import (
	"github.com/vovakirdan/switchyard/internal/config"
	"github.com/vovakirdan/switchyard/internal/core"
	"github.com/vovakirdan/switchyard/internal/registry"
)

// GameID is the registry and score-table identifier.
const GameID = "switchyard"

// Game implements the Switchyard game logic. All positions are in canvas
// space; the screen is only used when rendering and mapping pointers.
type Game struct {
	cfg        config.SwitchyardConfig
	fixedCfg   bool // cfg was supplied by NewWithConfig and must not be reloaded
	runtime    core.RuntimeConfig
	difficulty *config.DifficultyManager
	spawner    *Spawner
	switches   []Switch
	trains     []Train
	score      int
	highScore  int
	speed      float64 // Global speed multiplier
	interval   int     // Spawn interval in ms
	gameOver   bool
	paused     bool
	debug      bool
	tick       uint64
	passed     int // Trains scored this run
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied on Reset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// New creates a game that loads its config on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game with an explicit config.
func NewWithConfig(cfg config.SwitchyardConfig) *Game {
	return &Game{cfg: cfg, fixedCfg: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Switchyard"
}

// Reset starts a new session. The high score is the larger of the one carried
// in runtime and the one this game already saw.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.fixedCfg {
		cfg, err := config.LoadSwitchyard(configPath)
		if err != nil {
			cfg = config.DefaultSwitchyardConfig()
		}
		if difficultyPreset != "" {
			config.ApplyPreset(&cfg, difficultyPreset)
		}
		g.cfg = cfg
	}

	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.highScore = max(g.highScore, runtime.HighScore)
	g.debug = false
	g.switches = newSwitches(&g.cfg)

	if g.spawner == nil {
		g.spawner = NewSpawner(runtime.Seed, trainTypes(g.cfg.Trains), &g.cfg)
	} else {
		g.spawner.types = trainTypes(g.cfg.Trains)
		g.spawner.cfg = &g.cfg
		g.spawner.Reset(runtime.Seed)
	}

	g.restart()
}

// restart clears the run. Switch states, high score, debug view and the RNG
// stream survive.
func (g *Game) restart() {
	g.trains = g.trains[:0]
	g.score = 0
	g.passed = 0
	g.gameOver = false
	g.paused = false
	g.tick = 0
	g.speed = g.difficulty.Speed(0)
	g.interval = g.difficulty.SpawnInterval(0)
	g.spawner.Rearm()
}

// Resize updates the screen size used to map pointers without resetting.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
}

// now returns the current game time in milliseconds.
func (g *Game) now() float64 {
	return float64(g.tick) * g.runtime.TickMillis()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var events []core.Event

	if in.Has(core.ActionRestart) {
		g.restart()
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionDebug) {
		g.debug = !g.debug
	}

	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	events = g.handleInput(in, events)

	g.tick++
	now := g.now()

	var last *Train
	if n := len(g.trains); n > 0 {
		last = &g.trains[n-1]
	}
	if t, ok := g.spawner.Update(now, g.interval, g.speed, last); ok {
		g.trains = append(g.trains, t)
	}

	for i := range g.trains {
		for _, idx := range updateTrain(&g.trains[i], now, g.speed, &g.cfg, g.switches) {
			events = append(events, core.Event{Kind: core.EventSwitch, Value: idx})
		}
	}

	if _, _, hit := findCollision(g.trains, g.cfg.Trains); hit {
		events = g.endRun(events)
	}

	if !g.gameOver {
		events = g.removeExited(events)
	}

	g.speed = g.difficulty.Speed(g.score)
	g.interval = g.difficulty.SpawnInterval(g.score)

	return core.StepResult{State: g.State(), Events: events}
}

// handleInput applies switch keys and pointer presses.
func (g *Game) handleInput(in core.InputFrame, events []core.Event) []core.Event {
	for i, a := range core.SwitchActions {
		if in.Has(a) && i < len(g.switches) {
			g.switches[i].Toggle()
			events = append(events, core.Event{Kind: core.EventSwitch, Value: i})
		}
	}

	for _, p := range in.Pointers {
		px, py := g.toCanvas(p)
		for _, idx := range toggleAt(g.switches, px, py, g.cfg.SwitchGeom) {
			events = append(events, core.Event{Kind: core.EventSwitch, Value: idx})
		}
	}
	return events
}

// toCanvas maps a screen cell to the canvas point at the cell's center.
func (g *Game) toCanvas(p core.Pointer) (float64, float64) {
	w := max(1, g.runtime.ScreenW)
	h := max(1, g.runtime.ScreenH)
	px := (float64(p.X) + 0.5) * g.cfg.Canvas.Width / float64(w)
	py := (float64(p.Y) + 0.5) * g.cfg.Canvas.Height / float64(h)
	return px, py
}

// endRun sets game over once and raises the high score if it was beaten.
func (g *Game) endRun(events []core.Event) []core.Event {
	if g.gameOver {
		return events
	}
	g.gameOver = true
	events = append(events, core.Event{Kind: core.EventCollision, Value: g.score})

	if g.score > g.highScore {
		g.highScore = g.score
		events = append(events, core.Event{Kind: core.EventHighScore, Value: g.highScore})
	}
	return events
}

// removeExited drops trains past the right edge and scores them.
func (g *Game) removeExited(events []core.Event) []core.Event {
	kept := g.trains[:0]
	for _, t := range g.trains {
		if t.X < g.cfg.Canvas.Width {
			kept = append(kept, t)
			continue
		}
		g.score += t.Value()
		g.passed++
		events = append(events, core.Event{Kind: core.EventPass, Value: t.Value()})
	}
	g.trains = kept
	return events
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.score,
		HighScore: g.highScore,
		GameOver:  g.gameOver,
		Paused:    g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
