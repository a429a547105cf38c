package core

// RuntimeConfig contains configuration passed to games at initialization.
// Canvas dimensions are in abstract canvas units; each host decides how many
// units map to a terminal cell or a pixel.
type RuntimeConfig struct {
	CanvasW  float64 // Canvas width in canvas units
	CanvasH  float64 // Canvas height in canvas units
	TickRate int     // Simulation ticks per second (default 60)
	Seed     int64   // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		CanvasW:  640,
		CanvasH:  384,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Phase is the engine state reached during a frame.
// Every phase except PhasePlaying is transient: the engine has already reset
// itself by the time Step returns.
type Phase int

const (
	PhasePlaying      Phase = iota
	PhaseLevelCleared       // All targets of a level collected
	PhaseGameOver           // Ball hit an obstacle
	PhaseWon                // Final level cleared, back to level 1
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "Playing"
	case PhaseLevelCleared:
		return "LevelCleared"
	case PhaseGameOver:
		return "GameOver"
	case PhaseWon:
		return "Won"
	default:
		return "Unknown"
	}
}

// GameState summarizes the engine for the platform (HUD, notices).
type GameState struct {
	Level     int  // Current level, 1-based
	Collected int  // Targets collected in the current level
	Required  int  // Targets required to clear the current level
	Obstacles int  // Live obstacle count
	Targets   int  // Targets still on the canvas
	Paused    bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	Phase Phase
}
