package storage

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ttfe/internal/engine"
)

// Recorder is an engine listener that saves one Result per finished game.
// Save failures are logged; the game itself is never interrupted.
type Recorder struct {
	engine.NopListener

	store  *Store
	game   *engine.Engine
	player string
	logger *log.Logger

	lastID string
	err    error
}

// NewRecorder returns a recorder for games played on e by player. A nil
// logger discards output.
func NewRecorder(store *Store, e *engine.Engine, player string, logger *log.Logger) *Recorder {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Recorder{
		store:  store,
		game:   e,
		player: player,
		logger: logger,
	}
}

// OnGameFinished saves the result.
func (r *Recorder) OnGameFinished(victory bool, movements, score int) {
	snap := r.game.Snapshot()

	id, err := r.store.SaveResult(Result{
		Player:    r.player,
		Victory:   victory,
		Score:     score,
		Movements: movements,
		Rows:      snap.Rows,
		Columns:   snap.Columns,
		WinValue:  snap.WinValue,
		MaxTile:   snap.MaxTile,
	})
	if err != nil {
		r.err = err
		r.logger.Error("cannot record game", "player", r.player, "score", score, "error", err)
		return
	}

	r.lastID, r.err = id, nil
	r.logger.Info("game recorded", "id", id, "player", r.player, "victory", victory, "score", score)
}

// LastID returns the ID of the most recently saved result.
func (r *Recorder) LastID() string {
	return r.lastID
}

// Err returns the error from the last save attempt, if any.
func (r *Recorder) Err() error {
	return r.err
}
