package engine

import "github.com/charmbracelet/log"

// Listener receives every discrete change the engine makes. Calls are
// synchronous and happen while the engine is mid-operation: a listener may
// read committed state but must not expect Play or Reset to work from
// inside a callback.
type Listener interface {
	OnStateChange(state State)
	OnGameFinished(victory bool, movements, score int)
	OnTileCreated(row, column, value int)
	OnTileMoved(srcRow, srcColumn, dstRow, dstColumn int, dir Direction, merged bool)
	OnNotReady()
	OnDisallowedMove()
}

// NopListener ignores every event. Embed it to implement only the
// callbacks you care about.
type NopListener struct{}

func (NopListener) OnStateChange(State) {}
func (NopListener) OnGameFinished(bool, int, int) {}
func (NopListener) OnTileCreated(int, int, int) {}
func (NopListener) OnTileMoved(int, int, int, int, Direction, bool) {}
func (NopListener) OnNotReady() {}
func (NopListener) OnDisallowedMove() {}

var _ Listener = NopListener{}

// multiListener forwards each event to several listeners in order.
type multiListener []Listener

// Listeners combines several collaborators into the engine's single
// listener slot. Nil entries are dropped.
func Listeners(ls ...Listener) Listener {
	var out multiListener
	for _, l := range ls {
		if l != nil {
			out = append(out, l)
		}
	}
	if len(out) == 1 {
		return out[0]
	}
	return out
}

func (m multiListener) OnStateChange(state State) {
	for _, l := range m {
		l.OnStateChange(state)
	}
}

func (m multiListener) OnGameFinished(victory bool, movements, score int) {
	for _, l := range m {
		l.OnGameFinished(victory, movements, score)
	}
}

func (m multiListener) OnTileCreated(row, column, value int) {
	for _, l := range m {
		l.OnTileCreated(row, column, value)
	}
}

func (m multiListener) OnTileMoved(srcRow, srcColumn, dstRow, dstColumn int, dir Direction, merged bool) {
	for _, l := range m {
		l.OnTileMoved(srcRow, srcColumn, dstRow, dstColumn, dir, merged)
	}
}

func (m multiListener) OnNotReady() {
	for _, l := range m {
		l.OnNotReady()
	}
}

func (m multiListener) OnDisallowedMove() {
	for _, l := range m {
		l.OnDisallowedMove()
	}
}

// logListener writes every event to a logger at debug level.
type logListener struct {
	logger *log.Logger
}

// NewLogListener returns a listener that traces engine events.
func NewLogListener(logger *log.Logger) Listener {
	return logListener{logger: logger}
}

func (l logListener) OnStateChange(state State) {
	l.logger.Debug("state changed", "state", state)
}

func (l logListener) OnGameFinished(victory bool, movements, score int) {
	l.logger.Debug("game finished", "victory", victory, "movements", movements, "score", score)
}

func (l logListener) OnTileCreated(row, column, value int) {
	l.logger.Debug("tile created", "row", row, "column", column, "value", value)
}

func (l logListener) OnTileMoved(srcRow, srcColumn, dstRow, dstColumn int, dir Direction, merged bool) {
	l.logger.Debug("tile moved",
		"from", Point{Row: srcRow, Column: srcColumn},
		"to", Point{Row: dstRow, Column: dstColumn},
		"direction", dir,
		"merged", merged,
	)
}

func (l logListener) OnNotReady() {
	l.logger.Debug("play rejected", "reason", "not ready")
}

func (l logListener) OnDisallowedMove() {
	l.logger.Debug("play rejected", "reason", "disallowed move")
}
