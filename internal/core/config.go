package core

// RuntimeConfig is what the platform knows about the terminal a game runs in.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in cells
	ScreenH  int   // Screen height in cells
	TickRate int   // Simulation ticks per second
	Seed     int64 // Serve RNG seed; 0 lets the platform pick one
}

// DefaultRuntimeConfig is used for any zero field of a RuntimeConfig.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// WithDefaults fills zero fields from DefaultRuntimeConfig. Seed is kept.
func (c RuntimeConfig) WithDefaults() RuntimeConfig {
	d := DefaultRuntimeConfig()
	if c.ScreenW <= 0 {
		c.ScreenW = d.ScreenW
	}
	if c.ScreenH <= 0 {
		c.ScreenH = d.ScreenH
	}
	if c.TickRate <= 0 {
		c.TickRate = d.TickRate
	}
	return c
}

// GameState is the platform's view of a run.
type GameState struct {
	Score    int
	Level    int // 1-based
	Lives    int
	GameOver bool
	Paused   bool
}

// StepResult reports one tick: the state after it and what happened during it.
type StepResult struct {
	State        GameState
	Scored       int  // Points gained this tick
	LifeLost     bool // The ball fell past the floor
	LevelCleared bool // The last brick fell
}
