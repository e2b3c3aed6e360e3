package core

// Action represents a semantic player intent, abstracted from physical key
// presses and mouse events.
type Action int

const (
	ActionNone        Action = iota
	ActionSnakeUp            // Up arrow - steer the snake
	ActionSnakeDown          // Down arrow
	ActionSnakeLeft          // Left arrow
	ActionSnakeRight         // Right arrow
	ActionCursorUp           // k - move the tap cursor
	ActionCursorDown         // j
	ActionCursorLeft         // h
	ActionCursorRight        // l
	ActionTap                // Space/Enter - tap the cell under the cursor
	ActionPause              // P - freeze both tickers
	ActionHelp               // ? - toggle full help
	ActionQuit               // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionSnakeUp:
		return "SnakeUp"
	case ActionSnakeDown:
		return "SnakeDown"
	case ActionSnakeLeft:
		return "SnakeLeft"
	case ActionSnakeRight:
		return "SnakeRight"
	case ActionCursorUp:
		return "CursorUp"
	case ActionCursorDown:
		return "CursorDown"
	case ActionCursorLeft:
		return "CursorLeft"
	case ActionCursorRight:
		return "CursorRight"
	case ActionTap:
		return "Tap"
	case ActionPause:
		return "Pause"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
