package engine

// playResult is where one tile came to rest and whether it merged there.
type playResult struct {
	row    int
	column int
	merged bool
}

// resolve sweeps b in the order that lets tiles nearest the target edge
// settle first, so a tile never merges twice in one move. live is false for
// legality probes: probes neither score nor notify.
func (e *Engine) resolve(b *board, dir Direction, live bool) bool {
	moved := false
	visit := func(row, column int) {
		if e.resolveTile(b, dir, row, column, live) {
			moved = true
		}
	}

	switch dir {
	case DirDown:
		for r := b.rows - 2; r >= 0; r-- {
			for c := 0; c < b.columns; c++ {
				visit(r, c)
			}
		}
	case DirUp:
		for r := 1; r < b.rows; r++ {
			for c := 0; c < b.columns; c++ {
				visit(r, c)
			}
		}
	case DirRight:
		for c := b.columns - 2; c >= 0; c-- {
			for r := 0; r < b.rows; r++ {
				visit(r, c)
			}
		}
	case DirLeft:
		for c := 1; c < b.columns; c++ {
			for r := 0; r < b.rows; r++ {
				visit(r, c)
			}
		}
	}

	return moved
}

// resolveTile slides the tile at (row, column) and reports whether it left
// its cell.
func (e *Engine) resolveTile(b *board, dir Direction, row, column int, live bool) bool {
	dRow, dColumn := dir.step()
	result, ok := moveTile(b, row, column, row+dRow, column+dColumn)
	if !ok || (result.row == row && result.column == column) {
		return false
	}

	if live {
		if result.merged {
			e.score += b.tiles[result.row][result.column].value
		}
		e.notify(func(l Listener) {
			l.OnTileMoved(row, column, result.row, result.column, dir, result.merged)
		})
	}
	return true
}

// moveTile moves the tile at src one step toward dst and keeps going in
// the same direction while the way is clear. It returns false when the
// source cell is empty. Recursion depth is bounded by the board size.
func moveTile(b *board, srcRow, srcColumn, dstRow, dstColumn int) (playResult, bool) {
	stay := playResult{row: srcRow, column: srcColumn}

	// Wall hit
	if !b.inBounds(srcRow, srcColumn) || !b.inBounds(dstRow, dstColumn) {
		return stay, true
	}

	from := b.tiles[srcRow][srcColumn]
	to := b.tiles[dstRow][dstColumn]

	switch {
	case from.IsVoid():
		return playResult{}, false

	case to.IsVoid():
		b.place(from.value, dstRow, dstColumn)
		b.clear(srcRow, srcColumn)
		return moveTile(b, dstRow, dstColumn, dstRow+(dstRow-srcRow), dstColumn+(dstColumn-srcColumn))

	case to.ShouldNotMergeThisTurn():
		return stay, true

	case from.value == to.value:
		b.setValue(to.value*2, dstRow, dstColumn, true, false)
		b.clear(srcRow, srcColumn)
		return playResult{row: dstRow, column: dstColumn, merged: true}, true

	default:
		return stay, true
	}
}
