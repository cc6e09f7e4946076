package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/ttfe/internal/engine"
	"github.com/vovakirdan/ttfe/internal/platform/tui"
	"github.com/vovakirdan/ttfe/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal UI",
	Long: `Start a game in a full-screen terminal UI.

Controls:
  Arrows/WASD/HJKL - Slide tiles
  R                - New game
  ?                - More keys
  Q/Esc/Ctrl+C     - Quit

Presets:
  classic  - 4x4, win at 2048
  quick    - 4x4, win at 512
  big      - 6x6, win at 4096
  marathon - 5x5, win at 16384

Examples:
  ttfe play
  ttfe play --preset quick
  ttfe play --menu
  ttfe play --rows 5 --columns 7 --win 1024
  ttfe play --config ./my-ttfe.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

var flagMenu bool

func init() {
	addGameFlags(playCmd)
	playCmd.Flags().BoolVar(&flagMenu, "menu", false, "Pick a preset before playing")
}

func runPlay(_ *cobra.Command, _ []string) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: stdout is not a terminal")
		fmt.Fprintln(os.Stderr, "Run 'ttfe console' for line-based play.")
		os.Exit(1)
	}

	cfg, err := loadGameConfig()
	exitOnError("loading config", err)

	if flagMenu {
		chosen, err := tui.RunPresetMenu(cfg)
		exitOnError("running menu", err)
		if chosen == nil {
			return
		}
		cfg = *chosen
	}

	// Logs would draw over the UI, so they only go to --log-file
	logger, closeLog, err := newLogger("ttfe", io.Discard)
	exitOnError("creating logger", err)
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	e := engine.New(append(cfg.EngineOptions(), engine.WithLogger(logger))...)
	model := tui.NewModel(e, cfg, tui.Options{
		Store:  store,
		Player: playerName(),
		Logger: logger,
	})

	runErr := tui.Run(model)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
