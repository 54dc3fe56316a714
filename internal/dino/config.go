package dino

import "fmt"

// Config fixes the world geometry, physics constants and reward
// schedule for one Env instance. All fields are plain numbers supplied
// at construction and never mutated afterwards. Geometry is expressed
// as ratios of the screen size so the frame resolution can change
// without retuning every constant.
type Config struct {
	ScreenWidth  int
	ScreenHeight int
	MaxSteps     int

	// GroundRatio places the ground line as a fraction of screen
	// height. Frame coordinates grow downward.
	GroundRatio float64

	BodyWidthRatio  float64
	BodyHeightRatio float64
	BodyXRatio      float64

	Gravity      float64 // pulls toward the ground (increasing y)
	JumpVelocity float64 // negative = upward
	MaxFallSpeed float64

	ObstacleMinWidthRatio float64
	ObstacleMaxWidthRatio float64
	ObstacleHeightRatio   float64

	// Spawn gaps are measured beyond the right screen edge. The first
	// obstacle of an episode uses InitialSpawnRatio instead; later ones
	// draw uniformly from [SpawnGapMinRatio, SpawnGapMaxRatio]. A new
	// obstacle spawns once the newest one has scrolled left of
	// SpawnThresholdRatio * ScreenWidth.
	SpawnGapMinRatio    float64
	SpawnGapMaxRatio    float64
	InitialSpawnRatio   float64
	SpawnThresholdRatio float64

	BaseSpeed     float64
	SpeedIncrease float64 // added to the scroll speed every tick

	AliveReward      float64
	PassReward       float64
	CollisionPenalty float64
}

// DefaultConfig returns the standard 84x84 runner tuning.
func DefaultConfig() Config {
	return Config{
		ScreenWidth:  84,
		ScreenHeight: 84,
		MaxSteps:     5000,

		GroundRatio: 0.7,

		BodyWidthRatio:  0.06,
		BodyHeightRatio: 0.18,
		BodyXRatio:      0.15,

		Gravity:      0.5,
		JumpVelocity: -6.0,
		MaxFallSpeed: 10.0,

		ObstacleMinWidthRatio: 0.04,
		ObstacleMaxWidthRatio: 0.08,
		ObstacleHeightRatio:   0.15,

		SpawnGapMinRatio:    0.3,
		SpawnGapMaxRatio:    0.6,
		InitialSpawnRatio:   0.3,
		SpawnThresholdRatio: 0.6,

		BaseSpeed:     1.0,
		SpeedIncrease: 0.001,

		AliveReward:      1.0,
		PassReward:       10.0,
		CollisionPenalty: 50.0,
	}
}

// Validate rejects misconfiguration at construction time rather than
// letting a bad range surface mid-episode.
func (c Config) Validate() error {
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return fmt.Errorf("screen dimensions must be positive, got %dx%d", c.ScreenWidth, c.ScreenHeight)
	}
	if c.MaxSteps <= 0 {
		return fmt.Errorf("max steps must be positive, got %d", c.MaxSteps)
	}
	if c.GroundRatio <= 0 || c.GroundRatio >= 1 {
		return fmt.Errorf("ground ratio must be in (0, 1), got %v", c.GroundRatio)
	}
	if c.BodyWidthRatio <= 0 || c.BodyHeightRatio <= 0 {
		return fmt.Errorf("body size ratios must be positive")
	}
	if c.Gravity <= 0 {
		return fmt.Errorf("gravity must be positive, got %v", c.Gravity)
	}
	if c.JumpVelocity >= 0 {
		return fmt.Errorf("jump velocity must be negative (upward), got %v", c.JumpVelocity)
	}
	if c.MaxFallSpeed <= 0 {
		return fmt.Errorf("max fall speed must be positive, got %v", c.MaxFallSpeed)
	}
	if c.ObstacleMinWidthRatio > c.ObstacleMaxWidthRatio {
		return fmt.Errorf("obstacle width range is inverted: min %v > max %v",
			c.ObstacleMinWidthRatio, c.ObstacleMaxWidthRatio)
	}
	if c.ObstacleMinWidthRatio <= 0 || c.ObstacleHeightRatio <= 0 {
		return fmt.Errorf("obstacle size ratios must be positive")
	}
	if c.SpawnGapMinRatio > c.SpawnGapMaxRatio {
		return fmt.Errorf("spawn gap range is inverted: min %v > max %v",
			c.SpawnGapMinRatio, c.SpawnGapMaxRatio)
	}
	if c.BaseSpeed <= 0 {
		return fmt.Errorf("base speed must be positive, got %v", c.BaseSpeed)
	}
	if c.SpeedIncrease < 0 {
		return fmt.Errorf("speed increase must be non-negative, got %v", c.SpeedIncrease)
	}
	return nil
}

// geometry holds the pixel-space values derived once from Config.
type geometry struct {
	groundY int

	bodyW int
	bodyH int
	bodyX int

	obsMinW int
	obsMaxW int
	obsH    int

	spawnGapMin    float64
	spawnGapMax    float64
	initialSpawn   float64
	spawnThreshold float64
}

func deriveGeometry(c Config) geometry {
	w := float64(c.ScreenWidth)
	h := float64(c.ScreenHeight)
	return geometry{
		groundY: int(h * c.GroundRatio),

		bodyW: int(w * c.BodyWidthRatio),
		bodyH: int(h * c.BodyHeightRatio),
		bodyX: int(w * c.BodyXRatio),

		obsMinW: int(w * c.ObstacleMinWidthRatio),
		obsMaxW: int(w * c.ObstacleMaxWidthRatio),
		obsH:    int(h * c.ObstacleHeightRatio),

		spawnGapMin:    w * c.SpawnGapMinRatio,
		spawnGapMax:    w * c.SpawnGapMaxRatio,
		initialSpawn:   w * c.InitialSpawnRatio,
		spawnThreshold: w * c.SpawnThresholdRatio,
	}
}
