// Package flappy implements the side-scrolling flyer environment: a
// point agent flapping through a single recycled pipe, observed as a
// 4-element normalized feature vector.
package flappy

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/tinygym/tinygym/internal/common"
	"github.com/tinygym/tinygym/internal/env"
)

// Env is the flyer environment. One instance owns its state
// exclusively; it is not safe for concurrent use.
type Env struct {
	cfg    Config
	logger zerolog.Logger

	rng   *rand.Rand
	phase env.Phase

	y  float64
	vy float64

	pipeX  float64
	gapY   float64
	passed bool

	score int
}

// State is a read-only snapshot for renderers.
type State struct {
	Y     float64
	VY    float64
	PipeX float64
	GapY  float64
	Score int
}

// New validates the configuration and returns an unready environment;
// call Reset before stepping.
func New(cfg Config, logger zerolog.Logger) (*Env, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("flappy: invalid config: %w", err)
	}
	return &Env{
		cfg:    cfg,
		logger: logger.With().Str("env", "flappy").Logger(),
		phase:  env.PhaseUnready,
	}, nil
}

// Reset starts a new episode. A non-negative seed replaces the
// per-episode random source; a negative seed keeps the current one
// (time-seeded on the very first reset). Every instance owns its own
// source, so parallel instances never share randomness.
func (e *Env) Reset(seed int64) (env.Observation, env.Info) {
	if seed >= 0 {
		e.rng = rand.New(rand.NewSource(seed))
	} else if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	e.y = 0.5
	e.vy = 0
	e.pipeX = 1.0
	e.gapY = e.cfg.ResetGapMin + e.rng.Float64()*(e.cfg.ResetGapMax-e.cfg.ResetGapMin)
	e.passed = false
	e.score = 0
	e.phase = env.PhaseRunning

	return e.observe(), env.Info{Score: e.score}
}

// Step advances the simulation one tick. Unlike the runner, the flap
// impulse accumulates on every action=1 tick regardless of altitude;
// there is no ground state and no position clamp. Leaving [0, 1] is a
// terminal collision, handled here rather than by clamping.
func (e *Env) Step(action env.Action) env.StepResult {
	if action == env.ActImpulse {
		e.vy += e.cfg.FlapImpulse
	}
	e.vy += e.cfg.Gravity
	e.vy = common.Clamp(e.vy, -e.cfg.MaxVy, e.cfg.MaxVy)
	e.y += e.vy

	e.pipeX -= e.cfg.PipeSpeed

	reward := e.cfg.AliveReward
	terminated := false

	// Pass detection runs before a potential respawn so the bonus is
	// granted exactly once per pipe cycle; the flag clears only when
	// the pipe respawns.
	if !e.passed && e.pipeX < e.cfg.AgentX {
		reward += e.cfg.PassReward
		e.score++
		e.passed = true
	}

	if e.pipeX < 0 {
		e.respawnPipe()
	}

	// The world's vertical extremes are terminal regardless of the
	// pipe. No extra penalty: death costs only the future rewards.
	if e.y <= 0 || e.y >= 1 {
		terminated = true
	}

	// Column test: the pipe only threatens while it straddles the
	// agent's x; inside the column, missing the gap is terminal.
	if e.cfg.AgentX < e.pipeX && e.pipeX < e.cfg.AgentX+e.cfg.ColumnWidth {
		if math.Abs(e.y-e.gapY) > e.cfg.GapHalf {
			terminated = true
		}
	}

	if terminated {
		e.phase = env.PhaseDone
		e.logger.Debug().Int("score", e.score).Msg("episode finished")
	}

	return env.StepResult{
		Obs:        e.observe(),
		Reward:     reward,
		Terminated: terminated,
		Info:       env.Info{Score: e.score},
	}
}

// Close releases external resources; the flyer holds none.
func (e *Env) Close() error { return nil }

func (e *Env) ObservationSpace() env.Space {
	// [y, vy, pipe dx, gap center]; vy dominates the bounds.
	return env.Box(-1, 1, 4)
}

func (e *Env) ActionSpace() env.Space { return env.Discrete(2) }

func (e *Env) Phase() env.Phase { return e.phase }

// Snapshot returns the current state for renderers; it never mutates.
func (e *Env) Snapshot() State {
	return State{Y: e.y, VY: e.vy, PipeX: e.pipeX, GapY: e.gapY, Score: e.score}
}

// Config returns the immutable construction-time configuration.
func (e *Env) Config() Config { return e.cfg }

func (e *Env) respawnPipe() {
	e.pipeX = 1.0
	e.gapY = e.cfg.RespawnGapMin + e.rng.Float64()*(e.cfg.RespawnGapMax-e.cfg.RespawnGapMin)
	e.passed = false
}

func (e *Env) observe() env.Observation {
	dx := common.Clamp(e.pipeX-e.cfg.AgentX, 0, 1)
	return env.Observation{Vector: []float32{
		float32(e.y),
		float32(e.vy),
		float32(dx),
		float32(e.gapY),
	}}
}
