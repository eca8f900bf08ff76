package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionSwitch1        // 1 - toggle the first switch
	ActionSwitch2        // 2 - toggle the second switch
	ActionSwitch3        // 3 - toggle the third switch
	ActionDebug          // D - show/hide per-train debug lines
	ActionMute           // M - mute/unmute sound (handled by the platform)
	ActionRestart        // R key - restart game
	ActionQuit           // Q, Ctrl+C - exit game
	ActionPause          // P, Escape - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionSwitch1:
		return "Switch1"
	case ActionSwitch2:
		return "Switch2"
	case ActionSwitch3:
		return "Switch3"
	case ActionDebug:
		return "Debug"
	case ActionMute:
		return "Mute"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// SwitchActions lists the direct switch toggles in switch order.
var SwitchActions = []Action{ActionSwitch1, ActionSwitch2, ActionSwitch3}

// Pointer is a pointer-down event in screen cell coordinates.
type Pointer struct {
	X, Y int
}

// InputFrame represents the input state for a single simulation tick.
// It contains all actions and pointer presses that happened during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	// Pointers holds pointer-down events in arrival order.
	Pointers []Pointer
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Press records a pointer-down at the given cell.
func (f *InputFrame) Press(x, y int) {
	f.Pointers = append(f.Pointers, Pointer{X: x, Y: y})
}

// Clear resets all actions and pointer presses for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointers = f.Pointers[:0]
}
