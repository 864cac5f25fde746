package core

// Action represents a semantic flight action, abstracted from physical key
// presses. Games work with high-level intents rather than raw input.
type Action int

const (
	ActionNone         Action = iota
	ActionThrust              // Space, Up - fire the main engine
	ActionRotateLeft          // Left, A - tilt the craft counter-clockwise
	ActionRotateRight         // Right, D - tilt the craft clockwise
	ActionPitchForward        // Down, S - pitch the craft nose-down (3D)
	ActionPitchBack           // W - pitch the craft nose-up (3D)
	ActionStart               // Enter - leave the READY screen and start flying
	ActionRestart             // R - restart after touchdown or crash
	ActionPause               // P, Escape - pause/unpause
	ActionQuit                // Q, Ctrl+C - exit the session
	ActionEasy                // 1 - switch to easy difficulty (resets attempt)
	ActionNormal              // 2 - switch to normal difficulty (resets attempt)
	ActionHard                // 3 - switch to hard difficulty (resets attempt)
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionThrust:
		return "Thrust"
	case ActionRotateLeft:
		return "RotateLeft"
	case ActionRotateRight:
		return "RotateRight"
	case ActionPitchForward:
		return "PitchForward"
	case ActionPitchBack:
		return "PitchBack"
	case ActionStart:
		return "Start"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	case ActionEasy:
		return "Easy"
	case ActionNormal:
		return "Normal"
	case ActionHard:
		return "Hard"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
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

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
