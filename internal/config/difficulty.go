package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty converts a CLI value into a preset.
// The empty string means "keep the loaded config".
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// RoadLengthForPreset returns the road length a preset plays on.
// A longer road means more chances to fall before clearing it.
func RoadLengthForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 25
	case DifficultyHard:
		return 100
	default:
		return 50
	}
}

// ApplyRoadPreset modifies the config based on a difficulty preset.
func ApplyRoadPreset(cfg *RoadConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Road.Length = RoadLengthForPreset(preset)

	// Hard mode also shortens the hop clips, easy mode stretches them.
	scale := 1.0
	switch preset {
	case DifficultyEasy:
		scale = 1.25
	case DifficultyHard:
		scale = 0.75
	}
	cfg.Player.Clips.OneStep *= scale
	cfg.Player.Clips.TwoStep *= scale
}
