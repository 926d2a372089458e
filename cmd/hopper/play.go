package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/hopper/internal/config"
	"github.com/vovakirdan/hopper/internal/core"
	"github.com/vovakirdan/hopper/internal/games/road"
	"github.com/vovakirdan/hopper/internal/platform/tui"
	"github.com/vovakirdan/hopper/internal/registry"
	"github.com/vovakirdan/hopper/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing. The only game is "road", which is also the default.

Controls:
  Enter          - Start a run
  1/Space/F      - Hop one tile (or left click)
  2/J            - Hop two tiles (or right click)
  R              - Play again after falling
  S              - Run history
  ?              - All keys
  Q/Ctrl+C       - Quit

Without --difficulty a picker is shown first.

Difficulty options:
  easy   - 25 tiles, slower hops
  normal - 50 tiles
  hard   - 100 tiles, faster hops

Examples:
  hopper play
  hopper play --difficulty easy
  hopper play --seed 42
  hopper play --config ./my-road.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := defaultGame
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'hopper list' to see available games)", gameID)
	}
	if _, err := config.ParseDifficulty(flagDifficulty); err != nil {
		return err
	}

	closer, err := setupLogging(false)
	if err != nil {
		return err
	}
	defer closer.Close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config path and difficulty before creation
	if gameID == road.GameID {
		difficulty := flagDifficulty
		if difficulty == "" && term.IsTerminal(int(os.Stdout.Fd())) {
			preset, ok, selErr := tui.RunDifficultySelector(cfg)
			if selErr != nil {
				return fmt.Errorf("difficulty selector: %w", selErr)
			}
			if !ok {
				return nil
			}
			difficulty = string(preset)
		}
		road.SetConfigPath(flagConfig)
		road.SetDifficultyPreset(difficulty)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		// Continue without storage - game still works
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		log.Warn("playing without run history", "err", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	log.Info("session started", "game", gameID, "seed", cfg.Seed, "difficulty", flagDifficulty)
	if err := tui.Run(game, store, cfg); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
