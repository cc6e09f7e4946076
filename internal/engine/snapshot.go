package engine

// Snapshot captures the visible game state for front ends and recorders.
type Snapshot struct {
	State     State
	Score     int
	Movements int
	WinValue  int
	MaxTile   int
	Rows      int
	Columns   int
	Values    [][]int // nil before the first reset
}

// Snapshot returns a copy of the current game state.
func (e *Engine) Snapshot() Snapshot {
	snap := Snapshot{
		State:     e.state,
		Score:     e.score,
		Movements: e.movements,
		WinValue:  e.winValue,
	}
	if e.board != nil {
		snap.MaxTile = e.board.maxValue()
		snap.Rows = e.board.rows
		snap.Columns = e.board.columns
		snap.Values = e.board.values()
	}
	return snap
}
