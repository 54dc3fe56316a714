package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-0.5, 0, 1))
	assert.Equal(t, 1.0, Clamp(3.2, 0, 1))
	assert.Equal(t, 0.25, Clamp(0.25, 0, 1))
	assert.Equal(t, -0.3, Clamp(-0.7, -0.3, 0.3), "symmetric range should clamp at the low end")
}

func TestClampInt(t *testing.T) {
	assert.Equal(t, 0, ClampInt(-4, 0, 84))
	assert.Equal(t, 84, ClampInt(91, 0, 84))
	assert.Equal(t, 42, ClampInt(42, 0, 84))
}

func TestAbs(t *testing.T) {
	assert.Equal(t, 5, Abs(-5))
	assert.Equal(t, 5, Abs(5))
	assert.Equal(t, 0, Abs(0))
}
