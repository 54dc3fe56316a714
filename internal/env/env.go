// Package env defines the contract shared by every environment in this
// module: the reset/step lifecycle, observation and info payloads, and
// space descriptors that let training drivers size their models without
// reaching into engine internals.
package env

// Action is the discrete control input. Both environments accept
// exactly two actions.
type Action int

const (
	// ActNoop lets the tick play out with no control input.
	ActNoop Action = 0
	// ActImpulse applies the environment's control impulse (jump/flap).
	ActImpulse Action = 1
)

// Observation carries one tick's encoded state. Exactly one field is
// populated, matching the environment's observation space.
type Observation struct {
	// Frame is a row-major single-channel intensity buffer of
	// height*width bytes (raster environments).
	Frame []uint8
	// Vector is a normalized feature vector (vector environments).
	Vector []float32
}

// Info carries auxiliary per-tick values alongside the observation.
// Score is always populated; Speed and Steps are reported by the
// raster runner only.
type Info struct {
	Score int
	Speed float64
	Steps int
}

// StepResult is everything one tick produces.
type StepResult struct {
	Obs        Observation
	Reward     float64
	Terminated bool
	Truncated  bool
	Info       Info
}

// Env is the contract consumed by training drivers and renderers.
//
// Reset reseeds the per-episode random source when seed >= 0 and keeps
// the current source otherwise, reinitializes all mutable state and
// returns the initial observation. Step must only be called while the
// environment is Running; stepping after a terminal or truncated tick
// without an intervening Reset is a caller contract violation and is
// deliberately left unguarded to keep the tick path branch-free.
//
// An Env instance owns its state exclusively and is not safe for
// concurrent use. Run one instance per goroutine; instances share
// nothing.
type Env interface {
	Reset(seed int64) (Observation, Info)
	Step(action Action) StepResult
	Close() error
	ObservationSpace() Space
	ActionSpace() Space
	Phase() Phase
}
