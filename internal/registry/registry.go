// Package registry keeps the set of playable games.
// Games register a factory from their init() function so the CLI and the
// platform can create them by ID without importing game packages directly.
package registry

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/switchyard/internal/core"
)

// Game is the contract between a game's pure simulation and the platform.
// Implementations never touch the terminal, the clock, audio or storage:
// the platform feeds them inputs and reacts to the events they report.
type Game interface {
	// ID returns the stable identifier used on the command line and as the
	// game_id of stored scores.
	ID() string

	// Title returns the display name.
	Title() string

	// Reset starts a fresh session. cfg.HighScore carries the persisted
	// high score into the game.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst.
	Render(dst *core.Screen)

	// State returns score, high score and status flags.
	State() core.GameState
}

// Resizable is implemented by games that keep their state across terminal
// resizes instead of being reset.
type Resizable interface {
	Resize(w, h int)
}

// Factory creates a new game instance.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	mu        sync.RWMutex
)

// Register adds a game factory. Panics on a duplicate ID.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
}

// Create instantiates a game by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}
