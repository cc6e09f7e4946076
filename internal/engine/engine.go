// Package engine implements the rules of the 2048 sliding-tile puzzle: board
// state, move resolution, tile spawning, scoring and win/loss detection.
//
// An Engine is a plain value owned by whoever created it. It is meant for
// sequential use from a single goroutine; callers that share one across
// goroutines must serialize access themselves.
package engine

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
)

// Game defaults.
const (
	DefaultRows     = MinBoardSize
	DefaultColumns  = MinBoardSize
	DefaultWinValue = 2048
)

// DefaultSpawnValues are the values a new tile can take.
var DefaultSpawnValues = []int{2, 4}

// Engine owns one board plus the session state around it.
type Engine struct {
	board       *board
	score       int
	movements   int
	winValue    int
	state       State
	listener    Listener
	rng         *rand.Rand
	spawnValues []int
	logger      *log.Logger
	busy        bool // a Play or Reset is running
}

// Option configures an Engine.
type Option func(*Engine)

// WithSeed makes tile spawns reproducible.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand uses the given random source for spawns.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) {
		if rng != nil {
			e.rng = rng
		}
	}
}

// WithSpawnValues replaces the allowed values for new tiles.
// Values that are not powers of two are dropped.
func WithSpawnValues(values ...int) Option {
	return func(e *Engine) {
		e.spawnValues = append([]int(nil), values...)
	}
}

// WithLogger sets the logger used for internal errors.
func WithLogger(logger *log.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithListener installs the initial listener.
func WithListener(l Listener) Option {
	return func(e *Engine) {
		e.listener = l
	}
}

// New creates an engine in StateNotPrepared. Call Reset before playing.
func New(opts ...Option) *Engine {
	e := &Engine{
		state:       StateNotPrepared,
		spawnValues: DefaultSpawnValues,
		logger:      log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	valid := e.spawnValues[:0:0]
	for _, v := range e.spawnValues {
		if err := ValidateValue(v); err != nil {
			e.logger.Warn("spawn value ignored", "value", v, "error", err)
			continue
		}
		valid = append(valid, v)
	}
	if len(valid) == 0 {
		valid = DefaultSpawnValues
	}
	e.spawnValues = valid

	return e
}

// Listener returns the current listener, or nil.
func (e *Engine) Listener() Listener {
	return e.listener
}

// SetListener replaces the listener. Nil disables notifications.
func (e *Engine) SetListener(l Listener) {
	e.listener = l
}

// RemoveListener disables notifications.
func (e *Engine) RemoveListener() {
	e.listener = nil
}

// notify calls fn with the listener if one is installed.
func (e *Engine) notify(fn func(Listener)) {
	if e.listener != nil {
		fn(e.listener)
	}
}

func (e *Engine) setState(state State) {
	e.state = state
	e.notify(func(l Listener) { l.OnStateChange(state) })
}

// Reset starts a new default game: 4x4 board, win at 2048.
func (e *Engine) Reset() error {
	return e.ResetWith(DefaultRows, DefaultColumns, DefaultWinValue)
}

// ResetWith discards the current game and starts a new one. Dimensions are
// clamped up to MinBoardSize; a non-positive winValue means DefaultWinValue.
func (e *Engine) ResetWith(rows, columns, winValue int) error {
	if e.busy {
		return fmt.Errorf("reset: %w", ErrBusy)
	}
	e.busy = true
	defer func() { e.busy = false }()

	if winValue <= 0 {
		winValue = DefaultWinValue
	}

	e.setState(StatePreparing)

	e.board = newBoard(rows, columns)
	e.score = 0
	e.movements = 0
	e.winValue = winValue

	// Two tiles to start
	e.spawnTile()
	e.spawnTile()

	e.setState(StateIdle)
	return nil
}

// Play moves every tile toward dir.
//
// With simulate set, the move is resolved on a copy of the board and only
// the result is reported: nothing changes and no listener is called.
// Otherwise the move is committed, a tile is spawned and the game may end.
// The return value reports whether any tile moved; rejected plays return
// false after notifying OnNotReady or OnDisallowedMove.
func (e *Engine) Play(dir Direction, simulate bool) bool {
	if simulate {
		if e.board == nil {
			return false
		}
		return e.resolve(e.board.clone(), dir, false)
	}

	if e.state != StateIdle || e.busy {
		e.notify(func(l Listener) { l.OnNotReady() })
		return false
	}
	if !e.canPlay(dir) {
		e.notify(func(l Listener) { l.OnDisallowedMove() })
		return false
	}

	e.busy = true
	defer func() { e.busy = false }()

	e.setState(playingState(dir))
	moved := e.resolve(e.board, dir, true)
	e.completeTurn(moved)
	return moved
}

// CanPlay reports whether any direction would move a tile.
func (e *Engine) CanPlay() bool {
	for _, dir := range Directions {
		if e.canPlay(dir) {
			return true
		}
	}
	return false
}

func (e *Engine) canPlay(dir Direction) bool {
	return e.Play(dir, true)
}

// completeTurn settles the game after a committed move.
func (e *Engine) completeTurn(moved bool) {
	switch {
	case e.board.maxValue() >= e.winValue:
		e.notify(func(l Listener) { l.OnGameFinished(true, e.movements, e.score) })
		e.setState(StateVictory)

	case moved:
		e.board.endTurn()
		e.spawnTile()

		if !e.CanPlay() {
			e.notify(func(l Listener) { l.OnGameFinished(false, e.movements, e.score) })
			e.setState(StateDefeat)
			return
		}
		e.movements++
		e.setState(StateIdle)

	default:
		e.notify(func(l Listener) { l.OnDisallowedMove() })
		e.setState(StateIdle)
	}
}

// spawnTile places a random allowed value on a random empty cell.
// A full board is an upstream bug; it is logged and nothing spawns.
func (e *Engine) spawnTile() {
	p, value, err := e.placeRandomTile()
	if err != nil {
		e.logger.Error("tile spawn skipped", "error", err, "state", e.state)
		return
	}
	e.notify(func(l Listener) { l.OnTileCreated(p.Row, p.Column, value) })
}

func (e *Engine) placeRandomTile() (Point, int, error) {
	value := e.spawnValues[e.rng.Intn(len(e.spawnValues))]

	cells := e.board.emptyCells()
	if len(cells) == 0 {
		return Point{}, 0, ErrBoardFull
	}
	p := cells[e.rng.Intn(len(cells))]

	e.board.setValue(value, p.Row, p.Column, false, true)
	return p, value, nil
}

// Tiles returns a deep copy of the grid, indexed [row][column].
func (e *Engine) Tiles() ([][]Tile, error) {
	if e.board == nil {
		return nil, ErrNotPrepared
	}
	return e.board.snapshotTiles(), nil
}

// Row returns a copy of row i.
func (e *Engine) Row(i int) ([]Tile, error) {
	if e.board == nil {
		return nil, ErrNotPrepared
	}
	if i < 0 || i >= e.board.rows {
		return nil, fmt.Errorf("%w: row %d of %d", ErrOutOfRange, i, e.board.rows)
	}
	return append([]Tile(nil), e.board.tiles[i]...), nil
}

// Column returns a copy of column i, top to bottom.
func (e *Engine) Column(i int) ([]Tile, error) {
	if e.board == nil {
		return nil, ErrNotPrepared
	}
	if i < 0 || i >= e.board.columns {
		return nil, fmt.Errorf("%w: column %d of %d", ErrOutOfRange, i, e.board.columns)
	}
	out := make([]Tile, e.board.rows)
	for r := range out {
		out[r] = e.board.tiles[r][i]
	}
	return out, nil
}

// Tile returns the tile at (row, column).
func (e *Engine) Tile(row, column int) (Tile, error) {
	if e.board == nil {
		return Tile{}, ErrNotPrepared
	}
	return e.board.get(row, column)
}

// BoardRows returns the number of rows.
func (e *Engine) BoardRows() (int, error) {
	if e.board == nil {
		return 0, ErrNotPrepared
	}
	return e.board.rows, nil
}

// BoardColumns returns the number of columns.
func (e *Engine) BoardColumns() (int, error) {
	if e.board == nil {
		return 0, ErrNotPrepared
	}
	return e.board.columns, nil
}

// BoardSize returns the number of cells.
func (e *Engine) BoardSize() (int, error) {
	if e.board == nil {
		return 0, ErrNotPrepared
	}
	return e.board.rows * e.board.columns, nil
}

// Score returns the accumulated merge score.
func (e *Engine) Score() int {
	return e.score
}

// Movements returns the number of completed turns.
func (e *Engine) Movements() int {
	return e.movements
}

// State returns the current lifecycle state.
func (e *Engine) State() State {
	return e.state
}

// WinValue returns the tile value that wins the game.
func (e *Engine) WinValue() int {
	return e.winValue
}
