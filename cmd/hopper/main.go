// hopper is a terminal endless runner: hop along a generated road and try
// not to land in a gap.
//
// Usage:
//
//	hopper play [game]       - Play (default: road)
//	hopper serve             - Start SSH server for remote play
//	hopper scores [game]     - Show run history
//	hopper road              - Print a generated road
//	hopper list              - List available games
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible roads
//	--db <path>          - Set database path (default: ~/.hopper/runs.db)
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Log file for interactive commands
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/hopper/internal/games/road"
	"github.com/vovakirdan/hopper/internal/logging"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hopper",
	Short: "Hopper - hop along a road in your terminal",
	Long: `Hopper is a terminal endless runner. Hop one or two tiles at a time
along a generated road; landing where a tile is missing ends the run.

Available commands:
  play     - Play locally
  serve    - Start SSH server for remote play
  scores   - View run history
  road     - Print a generated road
  list     - Show all available games

Examples:
  hopper play
  hopper play --difficulty hard --seed 42
  hopper serve --ssh :2222
  hopper scores --plain
  hopper road --seed 7`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.hopper/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file (default: XDG state dir)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(roadCmd)
}

// setupLogging installs the default logger. Interactive commands log to a
// file so the alt screen stays clean; the server logs to stderr.
func setupLogging(stderr bool) (io.Closer, error) {
	logger, closer, err := logging.New(logging.Options{
		Level:  flagLogLevel,
		File:   flagLogFile,
		Stderr: stderr,
		Prefix: "hopper",
	})
	if err != nil {
		return nil, err
	}
	log.SetDefault(logger)
	return closer, nil
}

// defaultGame is played when no game ID is given.
const defaultGame = road.GameID
