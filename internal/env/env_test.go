package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhase_Transitions(t *testing.T) {
	assert.True(t, PhaseUnready.CanTransitionTo(PhaseRunning), "reset from unready")
	assert.True(t, PhaseDone.CanTransitionTo(PhaseRunning), "reset from done")
	assert.True(t, PhaseRunning.CanTransitionTo(PhaseRunning), "mid-episode reset")
	assert.True(t, PhaseRunning.CanTransitionTo(PhaseDone), "step ends the episode")

	assert.False(t, PhaseUnready.CanTransitionTo(PhaseDone), "unready cannot finish")
	assert.False(t, PhaseDone.CanTransitionTo(PhaseDone))
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "unready", PhaseUnready.String())
	assert.Equal(t, "running", PhaseRunning.String())
	assert.Equal(t, "done", PhaseDone.String())
	assert.Equal(t, "unknown", Phase(99).String())
}

func TestSpace_Size(t *testing.T) {
	assert.Equal(t, 84*84, Box(0, 255, 84, 84, 1).Size())
	assert.Equal(t, 4, Box(-1, 1, 4).Size())
	assert.Equal(t, 2, Discrete(2).Size())
}
