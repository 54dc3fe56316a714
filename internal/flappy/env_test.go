package flappy

import (
	"math/rand"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinygym/tinygym/internal/env"
)

func newTestEnv(t *testing.T, cfg Config) *Env {
	t.Helper()
	e, err := New(cfg, zerolog.Nop())
	require.NoError(t, err)
	return e
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PipeSpeed = 0
	_, err := New(cfg, zerolog.Nop())
	require.Error(t, err)

	cfg = DefaultConfig()
	cfg.RespawnGapMin = 0.8
	cfg.RespawnGapMax = 0.2
	_, err = New(cfg, zerolog.Nop())
	require.Error(t, err, "inverted gap range must fail at construction")

	cfg = DefaultConfig()
	cfg.ResetGapMax = 1.5
	_, err = New(cfg, zerolog.Nop())
	require.Error(t, err, "gap range outside the unit interval must fail")
}

func TestReset_InitialState(t *testing.T) {
	e := newTestEnv(t, DefaultConfig())
	assert.Equal(t, env.PhaseUnready, e.Phase())

	obs, info := e.Reset(0)

	assert.Equal(t, env.PhaseRunning, e.Phase())
	assert.Equal(t, 0, info.Score)
	require.Len(t, obs.Vector, 4)
	assert.EqualValues(t, 0.5, obs.Vector[0], "agent starts at mid height")
	assert.EqualValues(t, 0, obs.Vector[1])
	assert.Equal(t, 1.0, e.pipeX)
	assert.GreaterOrEqual(t, e.gapY, e.cfg.ResetGapMin)
	assert.LessOrEqual(t, e.gapY, e.cfg.ResetGapMax)
	assert.False(t, e.passed)
}

// One flap tick: impulse and gravity are both additive within the same
// tick, then the symmetric clamp applies.
func TestStep_ScenarioFlapAddsImpulseAndGravity(t *testing.T) {
	e := newTestEnv(t, DefaultConfig())
	e.Reset(0)

	res := e.Step(env.ActImpulse)

	require.InDelta(t, e.cfg.FlapImpulse+e.cfg.Gravity, e.vy, 1e-12)
	require.InDelta(t, 0.5+e.vy, e.y, 1e-12)
	assert.Equal(t, e.cfg.AliveReward, res.Reward)
	assert.False(t, res.Terminated)
	assert.False(t, res.Truncated, "the flyer never truncates")
}

func TestStep_FlapWorksAirborne(t *testing.T) {
	e := newTestEnv(t, DefaultConfig())
	e.Reset(0)

	// Every action=1 tick adds impulse; there is no grounded state.
	e.Step(env.ActImpulse)
	before := e.vy
	e.Step(env.ActImpulse)
	require.InDelta(t, before+e.cfg.FlapImpulse+e.cfg.Gravity, e.vy, 1e-12)
}

func TestStep_VelocityClampSymmetric(t *testing.T) {
	e := newTestEnv(t, DefaultConfig())
	e.Reset(0)

	e.vy = e.cfg.MaxVy - 0.01
	e.Step(env.ActImpulse)
	assert.Equal(t, e.cfg.MaxVy, e.vy, "upward velocity clamps at +max")

	e.Reset(0)
	e.vy = -e.cfg.MaxVy + 0.001
	e.Step(env.ActNoop)
	assert.Equal(t, -e.cfg.MaxVy, e.vy, "downward velocity clamps at -max")
}

// Falling with no input terminates exactly on the tick the floor is
// reached.
func TestStep_ScenarioFallToFloorTerminates(t *testing.T) {
	e := newTestEnv(t, DefaultConfig())
	e.Reset(0)

	for i := 0; i < 1000; i++ {
		res := e.Step(env.ActNoop)
		if e.y <= 0 {
			require.True(t, res.Terminated, "boundary tick must terminate")
			require.Equal(t, env.PhaseDone, e.Phase())
			return
		}
		require.False(t, res.Terminated, "tick %d terminated before the boundary", i)
	}
	t.Fatal("agent never reached the floor")
}

func TestStep_CeilingIsTerminal(t *testing.T) {
	e := newTestEnv(t, DefaultConfig())
	e.Reset(0)

	e.y = 0.99
	e.vy = e.cfg.MaxVy
	res := e.Step(env.ActNoop)

	require.True(t, res.Terminated)
}

func TestStep_ColumnCollisionOutsideGap(t *testing.T) {
	e := newTestEnv(t, DefaultConfig())
	e.Reset(0)

	e.gapY = 0.5
	e.y = 0.8
	e.vy = 0
	// One pipe-speed step left of here lands inside the collision
	// column.
	e.pipeX = e.cfg.AgentX + e.cfg.ColumnWidth/2 + e.cfg.PipeSpeed

	res := e.Step(env.ActNoop)

	require.True(t, res.Terminated, "missing the gap inside the column is terminal")
}

func TestStep_ColumnPassThroughGap(t *testing.T) {
	e := newTestEnv(t, DefaultConfig())
	e.Reset(0)

	e.gapY = 0.5
	e.y = 0.5
	e.vy = 0
	e.pipeX = e.cfg.AgentX + e.cfg.ColumnWidth/2 + e.cfg.PipeSpeed

	res := e.Step(env.ActNoop)

	require.False(t, res.Terminated, "flying through the gap center survives")
}

func TestStep_PassRewardOncePerCycle(t *testing.T) {
	e := newTestEnv(t, DefaultConfig())
	e.Reset(0)

	// Park the agent on the gap center and put the pipe just ahead of
	// the crossing point.
	e.gapY = 0.5
	e.y = 0.5
	e.vy = 0
	e.pipeX = e.cfg.AgentX + e.cfg.PipeSpeed/2

	res := e.Step(env.ActNoop)
	require.InDelta(t, e.cfg.AliveReward+e.cfg.PassReward, res.Reward, 1e-12)
	assert.Equal(t, 1, res.Info.Score)
	assert.True(t, e.passed)

	// Lingering at the boundary must not double-collect.
	e.y = 0.5
	e.vy = 0
	res = e.Step(env.ActNoop)
	require.InDelta(t, e.cfg.AliveReward, res.Reward, 1e-12)
	assert.Equal(t, 1, res.Info.Score)
}

func TestStep_RespawnClearsPassedAndRedrawsGap(t *testing.T) {
	e := newTestEnv(t, DefaultConfig())
	e.Reset(0)

	e.passed = true
	e.y = 0.5
	e.vy = 0
	e.gapY = 0.5
	e.pipeX = e.cfg.PipeSpeed / 2 // crosses 0 this tick

	e.Step(env.ActNoop)

	assert.Equal(t, 1.0, e.pipeX, "pipe recycles to the right edge")
	assert.False(t, e.passed, "passed flag clears only on respawn")
	assert.GreaterOrEqual(t, e.gapY, e.cfg.RespawnGapMin)
	assert.LessOrEqual(t, e.gapY, e.cfg.RespawnGapMax)
}

func TestObservation_DistanceClamped(t *testing.T) {
	e := newTestEnv(t, DefaultConfig())
	e.Reset(0)

	obs := e.observe()
	require.Len(t, obs.Vector, 4)
	assert.InDelta(t, 0.8, float64(obs.Vector[2]), 1e-6, "initial pipe distance")

	e.pipeX = e.cfg.AgentX - 0.1
	obs = e.observe()
	assert.EqualValues(t, 0, obs.Vector[2], "distance clamps at 0 once the pipe is behind the agent")
}

func TestStep_DeterministicUnderFixedSeed(t *testing.T) {
	a := newTestEnv(t, DefaultConfig())
	b := newTestEnv(t, DefaultConfig())
	a.Reset(5)
	b.Reset(5)

	script := rand.New(rand.NewSource(11))
	for i := 0; i < 500; i++ {
		action := env.Action(script.Intn(2))
		ra := a.Step(action)
		rb := b.Step(action)
		require.Equal(t, ra, rb, "tick %d diverged", i)
		if ra.Terminated {
			a.Reset(5)
			b.Reset(5)
		}
	}
}

func TestSpaces(t *testing.T) {
	e := newTestEnv(t, DefaultConfig())

	obs := e.ObservationSpace()
	assert.Equal(t, env.SpaceBox, obs.Kind)
	assert.Equal(t, []int{4}, obs.Shape)

	act := e.ActionSpace()
	assert.Equal(t, env.SpaceDiscrete, act.Kind)
	assert.Equal(t, 2, act.N)
}

func TestClose_NoError(t *testing.T) {
	e := newTestEnv(t, DefaultConfig())
	require.NoError(t, e.Close())
}
