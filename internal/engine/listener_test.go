package engine

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestListenersFanOut(t *testing.T) {
	a, b := &recorder{}, &recorder{}
	l := Listeners(a, nil, b)

	l.OnStateChange(StateIdle)
	l.OnTileCreated(1, 2, 4)
	l.OnTileMoved(0, 1, 0, 0, DirLeft, true)
	l.OnGameFinished(true, 3, 2048)
	l.OnNotReady()
	l.OnDisallowedMove()

	want := []string{"state:idle", "created", "moved", "finished", "not_ready", "disallowed"}
	for name, rec := range map[string]*recorder{"first": a, "second": b} {
		if strings.Join(rec.events, ",") != strings.Join(want, ",") {
			t.Errorf("%s listener events = %v, want %v", name, rec.events, want)
		}
	}
}

func TestListenersSingle(t *testing.T) {
	rec := &recorder{}
	if got := Listeners(nil, rec); got != Listener(rec) {
		t.Errorf("Listeners with one entry = %T, want the entry itself", got)
	}
}

func TestLogListener(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)

	e, _ := idleEngine([][]int{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	e.SetListener(NewLogListener(logger))
	e.Play(DirLeft, false)

	out := buf.String()
	for _, msg := range []string{"state changed", "tile moved", "tile created"} {
		if !strings.Contains(out, msg) {
			t.Errorf("log output missing %q:\n%s", msg, out)
		}
	}
}

func TestNopListenerEmbedding(t *testing.T) {
	var l Listener = struct{ NopListener }{}
	l.OnGameFinished(false, 0, 0)
	l.OnTileMoved(0, 0, 0, 1, DirRight, false)
}
