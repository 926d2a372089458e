package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/hopper/internal/platform/tui"
	"github.com/vovakirdan/hopper/internal/registry"
	"github.com/vovakirdan/hopper/internal/storage"
)

var (
	flagPlain  bool
	flagRecent bool
	flagLimit  int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show run history for a game",
	Long: `Display the best runs for a game. On a terminal this opens an
interactive table; --plain (or a pipe) prints text instead.

Examples:
  hopper scores
  hopper scores --plain --limit 5
  hopper scores --plain --recent`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain text table")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "List the latest runs instead of the best")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to print")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := defaultGame
	if len(args) > 0 {
		gameID = args[0]
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w (run 'hopper list' to see available games)", err)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening runs database: %w", err)
	}
	defer store.Close()

	if !flagPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		width, height, sizeErr := term.GetSize(int(os.Stdout.Fd()))
		if sizeErr != nil {
			width, height = 80, 24
		}
		return tui.RunScoreboard(store, gameID, title, width, height)
	}

	var runs []storage.RunEntry
	if flagRecent {
		runs, err = store.RecentRuns(gameID, flagLimit)
	} else {
		runs, err = store.TopRuns(gameID, flagLimit)
	}
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	best, err := store.BestSteps(gameID)
	if err != nil {
		return fmt.Errorf("retrieving best run: %w", err)
	}

	printRuns(os.Stdout, title, gameID, runs, best)
	return nil
}

// printRuns writes the plain text run table.
func printRuns(w io.Writer, title, gameID string, runs []storage.RunEntry, best int) {
	heading := "Best Runs"
	if flagRecent {
		heading = "Recent Runs"
	}
	fmt.Fprintf(w, "%s - %s\n\n", heading, title)

	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Play 'hopper play %s' to set the first one!\n", gameID)
		return
	}

	fmt.Fprintf(w, "  %-4s  %-6s  %-8s  %-8s  %s\n", "Rank", "Steps", "Time", "Result", "Date")
	fmt.Fprintf(w, "  %-4s  %-6s  %-8s  %-8s  %s\n", "----", "-----", "----", "------", "----")
	for i, r := range runs {
		fmt.Fprintf(w, "  %-4d  %-6d  %-8s  %-8s  %s\n",
			i+1, r.Steps, fmt.Sprintf("%.2fs", r.Elapsed.Seconds()), r.Outcome, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Best: %d steps\n", best)
}
