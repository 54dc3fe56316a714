package dino

import "github.com/tinygym/tinygym/internal/env"

// body is the agent's vertical state. y is the top of the body in frame
// coordinates, so an upward jump is a negative velocity and gravity is
// positive.
type body struct {
	y  float64
	vy float64
}

// step advances the body one tick under the given action.
//
// Jumping requires ground contact, tested with a 1-pixel tolerance:
// after the ground snap, float integration can leave y a fraction off
// the exact ground value, so an equality test would intermittently eat
// jump inputs.
func (b *body) step(action env.Action, cfg Config, geo geometry) {
	groundTop := float64(geo.groundY - geo.bodyH)

	onGround := b.y >= groundTop-1
	if action == env.ActImpulse && onGround {
		b.vy = cfg.JumpVelocity
	}

	b.vy += cfg.Gravity
	if b.vy > cfg.MaxFallSpeed {
		b.vy = cfg.MaxFallSpeed
	}

	b.y += b.vy

	// Snapping to the ground is the only way back into the grounded
	// state; there is no mid-air re-jump.
	if b.y > groundTop {
		b.y = groundTop
		b.vy = 0
	}

	// Keep the body at or below the top edge so the frame encoder never
	// sees a negative row.
	if b.y < 0 {
		b.y = 0
		b.vy = 0
	}
}
