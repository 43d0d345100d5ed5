package ui

// Action is a keyboard command shared by every front end.
type Action int

const (
	ActionNone Action = iota
	ActionToggleRun
	ActionStep
	ActionClear
	ActionSeed
	ActionIntervalUp
	ActionIntervalDown
	ActionQuit
)

// KeyEscape is the rune front ends report for the escape key.
const KeyEscape = '\x1b'

// KeyAction maps a key, as the character it types, to its action.
func KeyAction(r rune) Action {
	switch r {
	case ' ':
		return ActionToggleRun
	case 'n', 'N':
		return ActionStep
	case 'c', 'C':
		return ActionClear
	case 's', 'S':
		return ActionSeed
	case '+', '=':
		return ActionIntervalUp
	case '-', '_':
		return ActionIntervalDown
	case 'q', 'Q', KeyEscape:
		return ActionQuit
	}
	return ActionNone
}
