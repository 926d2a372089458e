package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic road generation
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TickDelta returns the simulated time that passes in one tick.
func (c RuntimeConfig) TickDelta() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}

// GameState is the platform-facing summary of a game.
type GameState struct {
	Score    int  // Current score (steps taken in this run)
	GameOver bool // Whether the run has ended and the end screen is up
}

// Outcome describes how a run concluded.
type Outcome string

const (
	OutcomeFell    Outcome = "fell"    // Landed on a missing tile
	OutcomeCleared Outcome = "cleared" // Jumped past the end of the road
)

// RunResult summarizes a finished run.
type RunResult struct {
	Steps   int
	Elapsed time.Duration
	Outcome Outcome
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	// Finished is set on the tick a run concludes, nil otherwise.
	Finished *RunResult
}
