// Package config provides YAML-based configuration loading and difficulty
// presets for hopper.
package config

import (
	"errors"
	"fmt"
)

// RoadConfig contains all configuration for the road game.
type RoadConfig struct {
	Road   RoadSettings   `yaml:"road"`
	Player PlayerSettings `yaml:"player"`
	Flow   FlowSettings   `yaml:"flow"`
	View   ViewSettings   `yaml:"view"`
}

// RoadSettings defines the generated road.
type RoadSettings struct {
	Length      int     `yaml:"length"`        // Number of tiles per road
	TileWidth   float64 `yaml:"tile_width"`    // World units between tile centers
	TileOffsetY float64 `yaml:"tile_offset_y"` // World Y of tile visuals
}

// PlayerSettings defines jump timing.
type PlayerSettings struct {
	Clips           ClipSettings `yaml:"clips"`
	DefaultJumpTime float64      `yaml:"default_jump_time"` // Seconds, used when a clip is missing
}

// ClipSettings holds the durations of the jump animation clips, in seconds.
type ClipSettings struct {
	OneStep float64 `yaml:"one_step"`
	TwoStep float64 `yaml:"two_step"`
}

// FlowSettings defines game-flow timing.
type FlowSettings struct {
	InputDelay float64 `yaml:"input_delay"` // Seconds between Start and accepting jumps
}

// ViewSettings defines how the world maps onto terminal cells.
type ViewSettings struct {
	CellsPerTile int `yaml:"cells_per_tile"` // Columns drawn per tile
	JumpHeight   int `yaml:"jump_height"`    // Rows of the hop arc at its peak
	LeadTiles    int `yaml:"lead_tiles"`     // Tiles kept visible behind the player
}

// Validate reports every setting that would make the game unplayable.
func (c RoadConfig) Validate() error {
	var errs []error
	if c.Road.Length < 1 {
		errs = append(errs, fmt.Errorf("road.length must be positive, got %d", c.Road.Length))
	}
	if c.Road.TileWidth <= 0 {
		errs = append(errs, fmt.Errorf("road.tile_width must be positive, got %g", c.Road.TileWidth))
	}
	if c.Player.DefaultJumpTime <= 0 {
		errs = append(errs, fmt.Errorf("player.default_jump_time must be positive, got %g", c.Player.DefaultJumpTime))
	}
	if c.Player.Clips.OneStep < 0 || c.Player.Clips.TwoStep < 0 {
		errs = append(errs, errors.New("player.clips durations must not be negative"))
	}
	if c.Flow.InputDelay < 0 {
		errs = append(errs, fmt.Errorf("flow.input_delay must not be negative, got %g", c.Flow.InputDelay))
	}
	if c.View.CellsPerTile < 1 {
		errs = append(errs, fmt.Errorf("view.cells_per_tile must be positive, got %d", c.View.CellsPerTile))
	}
	return errors.Join(errs...)
}
