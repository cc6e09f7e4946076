package engine

import (
	"fmt"
	"strings"
)

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists every legal input to Play, in probe order.
var Directions = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection accepts a direction name or its one-letter WASD key.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "w":
		return DirUp, nil
	case "down", "s":
		return DirDown, nil
	case "left", "a":
		return DirLeft, nil
	case "right", "d":
		return DirRight, nil
	}
	return 0, fmt.Errorf("engine: unknown direction %q", s)
}

// step returns the row and column offsets of one cell in this direction.
func (d Direction) step() (dRow, dColumn int) {
	switch d {
	case DirUp:
		return -1, 0
	case DirDown:
		return 1, 0
	case DirLeft:
		return 0, -1
	case DirRight:
		return 0, 1
	}
	return 0, 0
}

// State is the engine's position in the turn lifecycle.
type State int

const (
	StateNotPrepared State = iota
	StatePreparing
	StateIdle
	StatePlayingUp
	StatePlayingDown
	StatePlayingLeft
	StatePlayingRight
	StateVictory
	StateDefeat
)

func (s State) String() string {
	switch s {
	case StateNotPrepared:
		return "not_prepared"
	case StatePreparing:
		return "preparing"
	case StateIdle:
		return "idle"
	case StatePlayingUp:
		return "playing_up"
	case StatePlayingDown:
		return "playing_down"
	case StatePlayingLeft:
		return "playing_left"
	case StatePlayingRight:
		return "playing_right"
	case StateVictory:
		return "victory"
	case StateDefeat:
		return "defeat"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether the game has ended.
func (s State) IsTerminal() bool {
	return s == StateVictory || s == StateDefeat
}

// IsPlaying reports whether a move is being resolved.
func (s State) IsPlaying() bool {
	return s >= StatePlayingUp && s <= StatePlayingRight
}

// playingState maps a direction to its transient state.
func playingState(d Direction) State {
	switch d {
	case DirUp:
		return StatePlayingUp
	case DirDown:
		return StatePlayingDown
	case DirLeft:
		return StatePlayingLeft
	default:
		return StatePlayingRight
	}
}
