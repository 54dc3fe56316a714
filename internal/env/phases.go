package env

// Phase tracks where an environment is in its episode lifecycle.
type Phase int

const (
	// PhaseUnready means the environment is constructed but has never
	// been reset.
	PhaseUnready Phase = iota
	// PhaseRunning means an episode is in progress and Step is valid.
	PhaseRunning
	// PhaseDone means the last tick terminated or truncated the
	// episode; Reset is required before further Step calls.
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseUnready:
		return "unready"
	case PhaseRunning:
		return "running"
	case PhaseDone:
		return "done"
	default:
		return "unknown"
	}
}

// CanTransitionTo reports whether the lifecycle permits moving from p
// to next. Reset is the only way back to Running and works from any
// phase; Step is the only way from Running to Done.
func (p Phase) CanTransitionTo(next Phase) bool {
	switch next {
	case PhaseRunning:
		return true
	case PhaseDone:
		return p == PhaseRunning
	default:
		return false
	}
}
