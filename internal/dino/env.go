// Package dino implements the obstacle-runner environment: a fixed
// agent jumping over a procedurally generated obstacle stream, observed
// as a single-channel 84x84 frame.
package dino

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/tinygym/tinygym/internal/env"
)

// Env is the obstacle-runner environment. One instance owns all of its
// mutable state exclusively; it is not safe for concurrent use. Run one
// instance per goroutine.
type Env struct {
	cfg    Config
	geo    geometry
	logger zerolog.Logger

	rng   *rand.Rand
	phase env.Phase

	agent  body
	stream *stream
	speed  float64
	steps  int
	score  int
}

// New validates the configuration and returns an unready environment;
// call Reset before stepping.
func New(cfg Config, logger zerolog.Logger) (*Env, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("dino: invalid config: %w", err)
	}
	return &Env{
		cfg:    cfg,
		geo:    deriveGeometry(cfg),
		logger: logger.With().Str("env", "dino").Logger(),
		phase:  env.PhaseUnready,
	}, nil
}

// Reset starts a new episode. A non-negative seed replaces the
// per-episode random source; a negative seed keeps the current one
// (time-seeded on the very first reset).
func (e *Env) Reset(seed int64) (env.Observation, env.Info) {
	if seed >= 0 {
		e.rng = rand.New(rand.NewSource(seed))
	} else if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	e.steps = 0
	e.score = 0
	e.speed = e.cfg.BaseSpeed
	e.agent = body{y: float64(e.geo.groundY - e.geo.bodyH)}
	e.stream = newStream(e.rng, e.cfg, e.geo)
	e.phase = env.PhaseRunning

	return env.Observation{Frame: e.Frame()}, e.info()
}

// Step advances the simulation one tick: body physics, obstacle
// scroll/respawn, pass rewards, collision, truncation, frame encoding.
func (e *Env) Step(action env.Action) env.StepResult {
	e.steps++

	e.agent.step(action, e.cfg, e.geo)

	// Scroll speed grows monotonically with the step count.
	e.speed += e.cfg.SpeedIncrease
	e.stream.advance(e.speed)

	reward := e.cfg.AliveReward
	terminated := false
	truncated := e.steps >= e.cfg.MaxSteps

	// Pass bonus is granted once per obstacle, the first tick its
	// trailing edge has crossed the agent's column.
	for i := range e.stream.obstacles {
		o := &e.stream.obstacles[i]
		if !o.passed && o.trailingEdge() < float64(e.geo.bodyX) {
			o.passed = true
			reward += e.cfg.PassReward
			e.score++
		}
	}

	// Collision is evaluated against post-tick positions. The alive and
	// pass components above still apply on the terminal tick.
	if collides(e.agent, e.stream.obstacles, e.geo) {
		reward -= e.cfg.CollisionPenalty
		terminated = true
	}

	if terminated || truncated {
		e.phase = env.PhaseDone
		e.logger.Debug().
			Int("steps", e.steps).
			Int("score", e.score).
			Bool("terminated", terminated).
			Bool("truncated", truncated).
			Msg("episode finished")
	}

	return env.StepResult{
		Obs:        env.Observation{Frame: e.Frame()},
		Reward:     reward,
		Terminated: terminated,
		Truncated:  truncated,
		Info:       e.info(),
	}
}

// Close releases external resources; the runner holds none.
func (e *Env) Close() error { return nil }

func (e *Env) ObservationSpace() env.Space {
	return env.Box(0, intensityMax, e.cfg.ScreenHeight, e.cfg.ScreenWidth, 1)
}

func (e *Env) ActionSpace() env.Space { return env.Discrete(2) }

func (e *Env) Phase() env.Phase { return e.phase }

// Frame encodes the current scene. Renderers may call this between
// steps; it never mutates state.
func (e *Env) Frame() []uint8 {
	return encodeFrame(e.agent, e.stream.obstacles, e.cfg, e.geo)
}

// Config returns the immutable construction-time configuration.
func (e *Env) Config() Config { return e.cfg }

func (e *Env) info() env.Info {
	return env.Info{Score: e.score, Speed: e.speed, Steps: e.steps}
}
