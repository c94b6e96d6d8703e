package core

// RuntimeConfig contains configuration passed to hosts at startup.
// Hosts use this to size their viewport and seed the session RNG.
type RuntimeConfig struct {
	ScreenW  int   // Viewport width (characters for the terminal host, pixels for the window host)
	ScreenH  int   // Viewport height
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
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

// TickSeconds returns the duration of one simulation tick in seconds.
func (c RuntimeConfig) TickSeconds() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}
