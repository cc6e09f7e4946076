package engine

import "fmt"

// MinBoardSize is the smallest number of rows or columns a board can have.
const MinBoardSize = 4

// Point identifies a board cell.
type Point struct {
	Row    int
	Column int
}

// board is a fixed-size grid of tiles indexed [row][column], row 0 at the
// top and column 0 at the left. Empty cells hold a void tile, never nothing.
type board struct {
	rows    int
	columns int
	tiles   [][]Tile
}

// newBoard creates an empty board, clamping both dimensions up to MinBoardSize.
func newBoard(rows, columns int) *board {
	rows = max(rows, MinBoardSize)
	columns = max(columns, MinBoardSize)

	b := &board{
		rows:    rows,
		columns: columns,
		tiles:   make([][]Tile, rows),
	}
	for r := range b.tiles {
		b.tiles[r] = make([]Tile, columns)
	}
	return b
}

// inBounds reports whether (row, column) is on the board.
func (b *board) inBounds(row, column int) bool {
	return row >= 0 && row < b.rows && column >= 0 && column < b.columns
}

// get returns the tile at (row, column).
func (b *board) get(row, column int) (Tile, error) {
	if !b.inBounds(row, column) {
		return Tile{}, fmt.Errorf("%w: (%d, %d) on a %dx%d board", ErrOutOfRange, row, column, b.rows, b.columns)
	}
	return b.tiles[row][column], nil
}

// setValue overwrites the value and both flags of a cell in one step.
// Callers check bounds first.
func (b *board) setValue(value, row, column int, notMergeThisTurn, justCreated bool) {
	b.tiles[row][column] = Tile{
		value:            value,
		justCreated:      justCreated,
		notMergeThisTurn: notMergeThisTurn,
	}
}

// place sets a plain value with both flags cleared.
func (b *board) place(value, row, column int) {
	b.setValue(value, row, column, false, false)
}

// clear empties a cell.
func (b *board) clear(row, column int) {
	b.setValue(VoidValue, row, column, false, false)
}

// endTurn clears the per-turn flags on every cell.
func (b *board) endTurn() {
	for r := range b.tiles {
		for c := range b.tiles[r] {
			b.tiles[r][c].justCreated = false
			b.tiles[r][c].notMergeThisTurn = false
		}
	}
}

// clone returns an independent copy with identical values and flags.
func (b *board) clone() *board {
	c := &board{
		rows:    b.rows,
		columns: b.columns,
		tiles:   make([][]Tile, b.rows),
	}
	for r := range b.tiles {
		c.tiles[r] = make([]Tile, b.columns)
		copy(c.tiles[r], b.tiles[r])
	}
	return c
}

// snapshotTiles returns a deep copy of the grid.
func (b *board) snapshotTiles() [][]Tile {
	return b.clone().tiles
}

// values returns the grid as plain integers.
func (b *board) values() [][]int {
	out := make([][]int, b.rows)
	for r := range b.tiles {
		out[r] = make([]int, b.columns)
		for c, t := range b.tiles[r] {
			out[r][c] = t.value
		}
	}
	return out
}

// maxValue returns the highest tile value on the board.
func (b *board) maxValue() int {
	best := 0
	for r := range b.tiles {
		for _, t := range b.tiles[r] {
			if t.value > best {
				best = t.value
			}
		}
	}
	return best
}

// emptyCells returns the coordinates of every void tile, row by row.
func (b *board) emptyCells() []Point {
	var cells []Point
	for r := range b.tiles {
		for c, t := range b.tiles[r] {
			if t.IsVoid() {
				cells = append(cells, Point{Row: r, Column: c})
			}
		}
	}
	return cells
}
