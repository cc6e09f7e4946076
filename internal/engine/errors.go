package engine

import "errors"

// Usage errors are returned to callers. ErrBoardFull is internal: it is
// logged by the engine and never escapes a public method.
var (
	// ErrNotPrepared is returned by queries that need a board before the
	// first Reset.
	ErrNotPrepared = errors.New("engine: game not prepared, call Reset first")

	// ErrOutOfRange is returned when a row or column index is outside the board.
	ErrOutOfRange = errors.New("engine: index out of range")

	// ErrBusy is returned when Reset is called while a move or reset is
	// still running, e.g. from inside a listener callback.
	ErrBusy = errors.New("engine: operation in progress")

	// ErrBoardFull means a tile spawn found no empty cell.
	ErrBoardFull = errors.New("engine: no empty cell available")

	// ErrNotPowerOfTwo is returned when a spawn or win value is not a power of two.
	ErrNotPowerOfTwo = errors.New("engine: value is not a power of two")
)
