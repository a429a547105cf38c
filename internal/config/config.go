// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade platform.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/neon-dodge/internal/core"
)

// DodgeConfig contains all configuration for the Neon Dodge game.
type DodgeConfig struct {
	Ball      DodgeBall      `yaml:"ball"`
	Obstacles DodgeObstacles `yaml:"obstacles"`
	Targets   DodgeTargets   `yaml:"targets"`
	Levels    DodgeLevels    `yaml:"levels"`
	Input     DodgeInput     `yaml:"input"`
	Display   DodgeDisplay   `yaml:"display"`
	Palette   []core.Color   `yaml:"palette"`
}

// DodgeBall defines the player ball.
type DodgeBall struct {
	Radius float64    `yaml:"radius"`
	Speed  float64    `yaml:"speed"` // Canvas units per tick per held key
	Color  core.Color `yaml:"color"`
}

// DodgeObstacles defines the moving square hazards.
type DodgeObstacles struct {
	Size       float64 `yaml:"size"`
	MaxSpeed   float64 `yaml:"max_speed"`   // Velocity components are drawn from [-max_speed, max_speed]
	SpeedScale float64 `yaml:"speed_scale"` // Set by difficulty presets
}

// DodgeTargets defines the stationary pickups.
type DodgeTargets struct {
	Radius float64 `yaml:"radius"`
}

// DodgeLevels defines level progression.
type DodgeLevels struct {
	Max     int  `yaml:"max"`     // Clearing this level wins the game
	Start   int  `yaml:"start"`   // Level a new session starts at
	Advance bool `yaml:"advance"` // False keeps replaying the start level
}

// DodgeInput defines input tuning.
type DodgeInput struct {
	TiltFactor   float64 `yaml:"tilt_factor"`         // Tilt displacement = tilt * speed * factor
	KeyDelayMS   int     `yaml:"key_repeat_delay_ms"` // Terminal only: hold after the first press, covers the auto-repeat delay
	KeyHoldMS    int     `yaml:"key_hold_ms"`         // Terminal only: hold after each auto-repeat press
	SensorPollMS int     `yaml:"sensor_poll_ms"`      // Motion sensor sampling interval
}

// DodgeDisplay defines how the canvas maps onto the host display.
type DodgeDisplay struct {
	CanvasFraction float64 `yaml:"canvas_fraction"` // Share of the viewport used by the canvas
	CellWidth      float64 `yaml:"cell_width"`      // Canvas units per terminal column
	CellHeight     float64 `yaml:"cell_height"`     // Canvas units per terminal row
}

// Validate checks that the configuration can drive a game.
func (c DodgeConfig) Validate() error {
	var errs []error
	if c.Ball.Radius <= 0 {
		errs = append(errs, fmt.Errorf("ball.radius must be positive, got %g", c.Ball.Radius))
	}
	if c.Ball.Speed < 0 {
		errs = append(errs, fmt.Errorf("ball.speed must not be negative, got %g", c.Ball.Speed))
	}
	if !c.Ball.Color.Valid() {
		errs = append(errs, fmt.Errorf("ball.color %q is not #RRGGBB", c.Ball.Color))
	}
	if c.Obstacles.Size <= 0 {
		errs = append(errs, fmt.Errorf("obstacles.size must be positive, got %g", c.Obstacles.Size))
	}
	if c.Obstacles.MaxSpeed < 0 || c.Obstacles.SpeedScale < 0 {
		errs = append(errs, errors.New("obstacles.max_speed and obstacles.speed_scale must not be negative"))
	}
	if c.Targets.Radius <= 0 {
		errs = append(errs, fmt.Errorf("targets.radius must be positive, got %g", c.Targets.Radius))
	}
	if c.Levels.Max < 1 {
		errs = append(errs, fmt.Errorf("levels.max must be at least 1, got %d", c.Levels.Max))
	}
	if c.Levels.Start < 1 || c.Levels.Start > c.Levels.Max {
		errs = append(errs, fmt.Errorf("levels.start must be in [1, %d], got %d", c.Levels.Max, c.Levels.Start))
	}
	if c.Input.KeyDelayMS <= 0 || c.Input.KeyHoldMS <= 0 || c.Input.SensorPollMS <= 0 {
		errs = append(errs, errors.New("input.key_repeat_delay_ms, input.key_hold_ms and input.sensor_poll_ms must be positive"))
	}
	if c.Display.CanvasFraction <= 0 || c.Display.CanvasFraction > 1 {
		errs = append(errs, fmt.Errorf("display.canvas_fraction must be in (0, 1], got %g", c.Display.CanvasFraction))
	}
	if c.Display.CellWidth <= 0 || c.Display.CellHeight <= 0 {
		errs = append(errs, errors.New("display.cell_width and display.cell_height must be positive"))
	}
	if len(c.Palette) == 0 {
		errs = append(errs, errors.New("palette must not be empty"))
	}
	for _, col := range c.Palette {
		if !col.Valid() {
			errs = append(errs, fmt.Errorf("palette color %q is not #RRGGBB", col))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid dodge config: %w", errors.Join(errs...))
	}
	return nil
}
