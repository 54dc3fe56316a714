package flappy

import "fmt"

// Config fixes the physics constants and reward schedule for one Env
// instance. The world is the unit square: y=0 is the bottom, y=1 the
// top, and the agent holds a fixed horizontal position while a single
// pipe scrolls toward it.
type Config struct {
	Gravity     float64 // negative, pulls toward y=0
	FlapImpulse float64 // added to velocity on every action=1 tick
	PipeSpeed   float64
	GapHalf     float64 // half-height of the pipe gap
	MaxVy       float64 // symmetric velocity clamp
	AgentX      float64
	ColumnWidth float64 // collision band extends this far past AgentX

	// The first gap center of an episode draws from the reset range;
	// every respawn draws from the (narrower) respawn range.
	ResetGapMin   float64
	ResetGapMax   float64
	RespawnGapMin float64
	RespawnGapMax float64

	AliveReward float64
	PassReward  float64
}

// DefaultConfig returns the standard flyer tuning.
func DefaultConfig() Config {
	return Config{
		Gravity:     -0.002,
		FlapImpulse: 0.03,
		PipeSpeed:   0.01,
		GapHalf:     0.1,
		MaxVy:       0.3,
		AgentX:      0.2,
		ColumnWidth: 0.05,

		ResetGapMin:   0.1,
		ResetGapMax:   0.9,
		RespawnGapMin: 0.3,
		RespawnGapMax: 0.7,

		AliveReward: 0.01,
		PassReward:  1.0,
	}
}

// Validate rejects misconfiguration at construction time.
func (c Config) Validate() error {
	if c.Gravity >= 0 {
		return fmt.Errorf("gravity must be negative (downward), got %v", c.Gravity)
	}
	if c.FlapImpulse <= 0 {
		return fmt.Errorf("flap impulse must be positive, got %v", c.FlapImpulse)
	}
	if c.PipeSpeed <= 0 {
		return fmt.Errorf("pipe speed must be positive, got %v", c.PipeSpeed)
	}
	if c.GapHalf <= 0 {
		return fmt.Errorf("gap half-height must be positive, got %v", c.GapHalf)
	}
	if c.MaxVy <= 0 {
		return fmt.Errorf("max velocity must be positive, got %v", c.MaxVy)
	}
	if c.AgentX <= 0 || c.AgentX >= 1 {
		return fmt.Errorf("agent x must be in (0, 1), got %v", c.AgentX)
	}
	if c.ColumnWidth <= 0 {
		return fmt.Errorf("collision column width must be positive, got %v", c.ColumnWidth)
	}
	if c.ResetGapMin > c.ResetGapMax {
		return fmt.Errorf("reset gap range is inverted: min %v > max %v", c.ResetGapMin, c.ResetGapMax)
	}
	if c.RespawnGapMin > c.RespawnGapMax {
		return fmt.Errorf("respawn gap range is inverted: min %v > max %v", c.RespawnGapMin, c.RespawnGapMax)
	}
	if c.ResetGapMin < 0 || c.ResetGapMax > 1 || c.RespawnGapMin < 0 || c.RespawnGapMax > 1 {
		return fmt.Errorf("gap center ranges must stay within [0, 1]")
	}
	return nil
}
