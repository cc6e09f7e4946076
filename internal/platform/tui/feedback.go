package tui

import (
	"fmt"

	"github.com/vovakirdan/ttfe/internal/engine"
)

// feedback turns engine events into the status line under the board.
// It is shared by pointer so every copy of the model sees the same text.
type feedback struct {
	engine.NopListener

	status   string
	finished bool
	victory  bool
	merges   int
}

func (f *feedback) OnStateChange(state engine.State) {
	switch state {
	case engine.StatePreparing:
		f.status = ""
		f.finished = false
		f.victory = false
		f.merges = 0
	case engine.StatePlayingUp, engine.StatePlayingDown, engine.StatePlayingLeft, engine.StatePlayingRight:
		f.status = ""
		f.merges = 0
	}
}

func (f *feedback) OnTileMoved(_, _, _, _ int, _ engine.Direction, merged bool) {
	if merged {
		f.merges++
	}
}

func (f *feedback) OnGameFinished(victory bool, movements, score int) {
	f.finished = true
	f.victory = victory
	if victory {
		f.status = fmt.Sprintf("You win! %d points in %d moves. Press r for a new game", score, movements+1)
		return
	}
	f.status = fmt.Sprintf("No moves left. Final score %d. Press r for a new game", score)
}

func (f *feedback) OnNotReady() {
	if !f.finished {
		f.status = "Not ready"
	}
}

func (f *feedback) OnDisallowedMove() {
	f.status = "Can't move that way"
}
