package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ttfe/internal/config"
	"github.com/vovakirdan/ttfe/internal/engine"
	"github.com/vovakirdan/ttfe/internal/storage"
)

const consoleHelp = `Commands: w/up, a/left, s/down, d/right, r/reset, h/help, q/quit`

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Play with typed commands",
	Long: `Play on a plain text board, one command per line.
Works without a terminal, so games can be scripted:

  printf 'a\nw\nd\n' | ttfe console --seed 1

` + consoleHelp + `

Newly spawned tiles are shown in brackets, empty cells as ____.`,
	Args: cobra.NoArgs,
	Run:  runConsoleCmd,
}

func init() {
	addGameFlags(consoleCmd)
}

func runConsoleCmd(_ *cobra.Command, _ []string) {
	cfg, err := loadGameConfig()
	exitOnError("loading config", err)

	logger, closeLog, err := newLogger("ttfe", os.Stderr)
	exitOnError("creating logger", err)

	e := engine.New(append(cfg.EngineOptions(), engine.WithLogger(logger))...)

	var listeners []engine.Listener
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open results database", "error", err)
		store = nil
	} else {
		listeners = append(listeners, storage.NewRecorder(store, e, playerName(), logger))
	}
	listeners = append(listeners, engine.NewLogListener(logger))

	runErr := runConsole(os.Stdin, os.Stdout, e, cfg, listeners...)

	if store != nil {
		store.Close()
	}
	closeLog()

	exitOnError("running console", runErr)
}

// consoleListener prints engine feedback between boards.
type consoleListener struct {
	engine.NopListener
	out io.Writer
}

func (c consoleListener) OnGameFinished(victory bool, movements, score int) {
	if victory {
		fmt.Fprintf(c.out, "You win! Score %d after %d moves. Type r for a new game.\n", score, movements+1)
		return
	}
	fmt.Fprintf(c.out, "Game over. Score %d after %d moves. Type r for a new game.\n", score, movements+1)
}

func (c consoleListener) OnNotReady() {
	fmt.Fprintln(c.out, "Not ready. Type r for a new game.")
}

func (c consoleListener) OnDisallowedMove() {
	fmt.Fprintln(c.out, "Can't move that way.")
}

// runConsole plays on e with commands read from in until EOF or quit.
// Extra listeners receive every engine event alongside the console.
func runConsole(in io.Reader, out io.Writer, e *engine.Engine, cfg config.Config, extra ...engine.Listener) error {
	e.SetListener(engine.Listeners(append([]engine.Listener{consoleListener{out: out}}, extra...)...))

	if err := cfg.Reset(e); err != nil {
		return err
	}
	fmt.Fprintln(out, consoleHelp)
	fmt.Fprint(out, e.String())

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		cmd := strings.ToLower(strings.TrimSpace(scanner.Text()))
		switch cmd {
		case "":
			continue
		case "q", "quit", "exit":
			return nil
		case "h", "help", "?":
			fmt.Fprintln(out, consoleHelp)
			continue
		case "r", "reset":
			if err := cfg.Reset(e); err != nil {
				return err
			}
			fmt.Fprint(out, e.String())
			continue
		}

		dir, err := engine.ParseDirection(cmd)
		if err != nil {
			fmt.Fprintf(out, "Unknown command %q. %s\n", cmd, consoleHelp)
			continue
		}
		if e.Play(dir, false) {
			fmt.Fprint(out, e.String())
		}
	}
}
