package config

import (
	_ "embed"

	"github.com/vovakirdan/neon-dodge/internal/core"
)

//go:embed defaults/dodge.yaml
var defaultDodgeYAML []byte

// NeonPalette is the fixed set of colors obstacles and targets draw from.
var NeonPalette = []core.Color{
	"#FF00FF", "#00FFFF", "#39FF14", "#FF4500",
	"#FF1493", "#FFFF00", "#00FF7F", "#9400D3",
	"#1E90FF", "#FFD700", "#FF69B4", "#8A2BE2",
}

// DefaultDodgeConfig returns the default Neon Dodge configuration.
func DefaultDodgeConfig() DodgeConfig {
	return DodgeConfig{
		Ball: DodgeBall{
			Radius: 10,
			Speed:  5,
			Color:  core.ColorWhite,
		},
		Obstacles: DodgeObstacles{
			Size:       20,
			MaxSpeed:   2,
			SpeedScale: 1.0,
		},
		Targets: DodgeTargets{
			Radius: 10,
		},
		Levels: DodgeLevels{
			Max:     3,
			Start:   1,
			Advance: true,
		},
		Input: DodgeInput{
			TiltFactor:   0.5,
			KeyDelayMS:   500,
			KeyHoldMS:    180,
			SensorPollMS: 16,
		},
		Display: DodgeDisplay{
			CanvasFraction: 0.8,
			CellWidth:      6,
			CellHeight:     12,
		},
		Palette: append([]core.Color(nil), NeonPalette...),
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "dodge":
		return defaultDodgeYAML
	default:
		return nil
	}
}
