package core

// Action represents a semantic player action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Up arrow, k - move cursor up
	ActionDown           // Down arrow, j - move cursor down
	ActionLeft           // Left arrow, h - move cursor left
	ActionRight          // Right arrow, l - move cursor right
	ActionReveal         // Space, Enter - reveal the cell under the cursor
	ActionRestart        // R - new board at the same difficulty
	ActionBack           // B, Escape - back to the difficulty menu
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
	case ActionReveal:
		return "Reveal"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Delta returns the cursor movement for a direction action as (row, column) steps.
func (a Action) Delta() (dr, dc int) {
	switch a {
	case ActionUp:
		return -1, 0
	case ActionDown:
		return 1, 0
	case ActionLeft:
		return 0, -1
	case ActionRight:
		return 0, 1
	}
	return 0, 0
}
