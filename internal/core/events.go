package core

// EventKind identifies something that happened during a simulation tick
// that the platform may react to (sound, persistence).
type EventKind int

const (
	EventNone EventKind = iota
	EventSwitch          // A switch toggled or redirected a train
	EventPass            // A train left the screen and was scored
	EventCollision       // Two trains collided, game over
	EventHighScore       // The high score was beaten, Value holds it
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventNone:
		return "none"
	case EventSwitch:
		return "switch"
	case EventPass:
		return "pass"
	case EventCollision:
		return "collision"
	case EventHighScore:
		return "high_score"
	default:
		return "unknown"
	}
}

// Event is a single occurrence reported in a StepResult.
type Event struct {
	Kind  EventKind
	Value int
}
