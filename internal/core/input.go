package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, K, Up arrow - move north
	ActionDown           // S, J, Down arrow - move south
	ActionLeft           // A, H, Left arrow - move west
	ActionRight          // D, L, Right arrow - move east
	ActionAnswer1        // 1 - pick the first answer
	ActionAnswer2        // 2 - pick the second answer
	ActionAnswer3        // 3 - pick the third answer
	ActionAnswer4        // 4 - pick the fourth answer
	ActionBack           // Esc - back out of a question without answering
	ActionRestart        // R - restart after the game ends
	ActionSave           // Ctrl+S - save the game
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionAnswer1:
		return "Answer1"
	case ActionAnswer2:
		return "Answer2"
	case ActionAnswer3:
		return "Answer3"
	case ActionAnswer4:
		return "Answer4"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionSave:
		return "Save"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// AnswerIndex returns the zero-based answer index for an answer action.
func (a Action) AnswerIndex() (int, bool) {
	if a < ActionAnswer1 || a > ActionAnswer4 {
		return 0, false
	}
	return int(a - ActionAnswer1), true
}

// InputFrame holds the actions triggered during one simulation tick.
type InputFrame struct {
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
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
