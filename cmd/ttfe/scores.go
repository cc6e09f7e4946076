package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/ttfe/internal/platform/tui"
	"github.com/vovakirdan/ttfe/internal/storage"
)

var (
	flagLimit int
	flagPlain bool
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recorded games",
	Long: `Display the best recorded games. In a terminal this opens a scrollable
table; otherwise, or with --plain, it prints a text list.

Examples:
  ttfe scores
  ttfe scores --plain --limit 5
  ttfe scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of results in the text list")
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a text list even in a terminal")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded game")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	exitOnError("opening results database", err)

	err = scores(store, os.Stdout)
	store.Close()
	exitOnError("showing scores", err)
}

func scores(store *storage.Store, out io.Writer) error {
	if flagClear {
		if err := store.Clear(); err != nil {
			return err
		}
		fmt.Fprintln(out, "All recorded games deleted.")
		return nil
	}

	fd := int(os.Stdout.Fd())
	if !flagPlain && term.IsTerminal(fd) {
		width, height := 80, 24 // Defaults
		if w, h, err := term.GetSize(fd); err == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, width, height)
	}

	return printScores(store, out, flagLimit)
}

// printScores writes the top results as plain text.
func printScores(store *storage.Store, out io.Writer, limit int) error {
	results, err := store.TopResults(limit)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "High Scores - 2048")
	fmt.Fprintln(out)

	if len(results) == 0 {
		fmt.Fprintln(out, "No games recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'ttfe play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-12s  %-8s  %-6s  %-5s  %-6s  %s\n", "Rank", "Player", "Score", "Max", "Board", "Result", "Date")
	fmt.Fprintf(out, "  %-4s  %-12s  %-8s  %-6s  %-5s  %-6s  %s\n", "----", "------", "-----", "---", "-----", "------", "----")

	for i, r := range results {
		outcome := "lost"
		if r.Victory {
			outcome = "won"
		}
		board := fmt.Sprintf("%dx%d", r.Rows, r.Columns)
		fmt.Fprintf(out, "  %-4d  %-12s  %-8d  %-6d  %-5s  %-6s  %s\n",
			i+1, r.Player, r.Score, r.MaxTile, board, outcome, r.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats()
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, tui.StatsLine(stats))
	return nil
}
