// ttfe is the 2048 sliding-tile puzzle for the terminal.
//
// Usage:
//
//	ttfe play       - Play in a full-screen terminal UI
//	ttfe console    - Play with typed commands and a plain text board
//	ttfe scores     - Show recorded games
//	ttfe serve      - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>      - Set RNG seed for reproducible games
//	--db <path>         - Set database path (default: ~/.ttfe/ttfe.db)
//	--config <path>     - Use a specific config file
//	--log-level <level> - debug, info, warn or error
//	--log-file <path>   - Write logs to a file instead of stderr
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/ttfe/internal/config"
	"github.com/vovakirdan/ttfe/internal/storage"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string

	// Game flags shared by play and console
	flagPreset  string
	flagRows    int
	flagColumns int
	flagWin     int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ttfe",
	Short: "2048 in your terminal",
	Long: `ttfe is the 2048 sliding-tile puzzle: slide the tiles, merge equal
neighbours and reach the goal tile before the board fills up.

Available commands:
  play     - Full-screen terminal UI
  console  - Line-based play with a plain text board
  scores   - View recorded games
  serve    - Start SSH server for remote play

Examples:
  ttfe play
  ttfe play --preset big
  ttfe console --seed 42
  ttfe scores
  ttfe serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = config value, or random)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(consoleCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// addGameFlags registers the flags that shape a game.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagPreset, "preset", "", "Game preset: classic, quick, big, marathon")
	cmd.Flags().IntVar(&flagRows, "rows", 0, "Board rows (overrides config and preset)")
	cmd.Flags().IntVar(&flagColumns, "columns", 0, "Board columns (overrides config and preset)")
	cmd.Flags().IntVar(&flagWin, "win", 0, "Winning tile value (overrides config and preset)")
}

// loadGameConfig resolves the game config from file, preset and flags.
func loadGameConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagPreset != "" {
		preset, err := config.ParsePreset(flagPreset)
		if err != nil {
			return cfg, err
		}
		config.ApplyPreset(&cfg, preset)
	}
	if flagRows > 0 {
		cfg.Board.Rows = flagRows
	}
	if flagColumns > 0 {
		cfg.Board.Columns = flagColumns
	}
	if flagWin > 0 {
		cfg.WinValue = flagWin
	}
	if flagSeed != 0 {
		cfg.Seed = flagSeed
	}

	return cfg, cfg.Validate()
}

// newLogger builds the CLI logger. Without --log-file it writes to fallback.
// The returned closer releases the log file, if any.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	w, closer := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closer = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closer, nil
}

// exitOnError prints err and exits.
func exitOnError(what string, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error %s: %v\n", what, err)
		os.Exit(1)
	}
}

// playerName returns the name stored with local results.
func playerName() string {
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "player"
}
