package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hopper/internal/config"
	"github.com/vovakirdan/hopper/internal/games/road"
)

var flagLength int

var roadCmd = &cobra.Command{
	Use:   "road",
	Short: "Print a generated road",
	Long: `Generate a road and print it: '#' is a tile, '_' is a gap.
The same --seed always gives the same road.

Examples:
  hopper road --seed 7
  hopper road --seed 7 --length 30
  hopper road --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runRoad,
}

func init() {
	roadCmd.Flags().IntVar(&flagLength, "length", 0, "Road length (default: from config)")
	roadCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	roadCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runRoad(_ *cobra.Command, _ []string) error {
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return err
	}

	cfg, err := config.LoadRoad(flagConfig)
	if err != nil {
		return err
	}
	config.ApplyRoadPreset(&cfg, preset)

	length := cfg.Road.Length
	if flagLength > 0 {
		length = flagLength
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	r := road.Generate(length, rand.New(rand.NewSource(seed)))
	printRoad(os.Stdout, r, seed)
	return nil
}

// printRoad writes the road in rows of at most 50 tiles.
func printRoad(w io.Writer, r road.Road, seed int64) {
	const perRow = 50
	s := r.String()
	for i := 0; i < len(s); i += perRow {
		fmt.Fprintln(w, s[i:min(i+perRow, len(s))])
	}
	fmt.Fprintf(w, "\nseed %d, %d tiles, %d gaps\n", seed, r.Len(), r.Gaps())
}
