package core

import "fmt"

// UserInput is the single semantic action the player issues for one tick.
// The platform translates physical keys into these values.
type UserInput int

const (
	InputNone  UserInput = iota
	InputLeft            // Left arrow, A, H - move ship left
	InputRight           // Right arrow, D, L - move ship right
	InputUp              // Up arrow, W, Space - fire
	InputQuit            // Q, Esc, Ctrl+C - leave the game
)

// String returns a human-readable name for the input.
func (u UserInput) String() string {
	switch u {
	case InputNone:
		return "None"
	case InputLeft:
		return "Left"
	case InputRight:
		return "Right"
	case InputUp:
		return "Up"
	case InputQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Code returns the one-byte code used when recording inputs.
func (u UserInput) Code() byte {
	switch u {
	case InputLeft:
		return 'L'
	case InputRight:
		return 'R'
	case InputUp:
		return 'U'
	case InputQuit:
		return 'Q'
	default:
		return '.'
	}
}

// ParseInputCode converts a recorded code back into a UserInput.
func ParseInputCode(c byte) (UserInput, error) {
	switch c {
	case '.':
		return InputNone, nil
	case 'L':
		return InputLeft, nil
	case 'R':
		return InputRight, nil
	case 'U':
		return InputUp, nil
	case 'Q':
		return InputQuit, nil
	default:
		return InputNone, fmt.Errorf("core: unknown input code %q", c)
	}
}
