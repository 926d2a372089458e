package config

import (
	_ "embed"
)

//go:embed defaults/road.yaml
var defaultRoadYAML []byte

// DefaultRoadConfig returns the hardcoded road configuration.
// It matches defaults/road.yaml and backs it up if the embed cannot be parsed.
func DefaultRoadConfig() RoadConfig {
	return RoadConfig{
		Road: RoadSettings{
			Length:      50,
			TileWidth:   40,
			TileOffsetY: -40,
		},
		Player: PlayerSettings{
			Clips: ClipSettings{
				OneStep: 0.2,
				TwoStep: 0.3,
			},
			DefaultJumpTime: 0.1,
		},
		Flow: FlowSettings{
			InputDelay: 0.1,
		},
		View: ViewSettings{
			CellsPerTile: 4,
			JumpHeight:   2,
			LeadTiles:    3,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRoadYAML
}
