package env

// SpaceKind discriminates space descriptors.
type SpaceKind int

const (
	// SpaceBox is a bounded continuous (or byte-intensity) tensor.
	SpaceBox SpaceKind = iota
	// SpaceDiscrete is a finite set {0..N-1}.
	SpaceDiscrete
)

// Space describes an observation or action space so callers can size
// buffers and networks without constructing an episode first.
type Space struct {
	Kind  SpaceKind
	Shape []int   // SpaceBox only
	Low   float64 // SpaceBox only, broadcast across Shape
	High  float64 // SpaceBox only, broadcast across Shape
	N     int     // SpaceDiscrete only
}

// Box returns a bounded tensor space with the given shape.
func Box(low, high float64, shape ...int) Space {
	return Space{Kind: SpaceBox, Shape: shape, Low: low, High: high}
}

// Discrete returns a finite action space of size n.
func Discrete(n int) Space {
	return Space{Kind: SpaceDiscrete, N: n}
}

// Size returns the flattened element count of a Box space, or N for a
// Discrete space.
func (s Space) Size() int {
	if s.Kind == SpaceDiscrete {
		return s.N
	}
	size := 1
	for _, d := range s.Shape {
		size *= d
	}
	return size
}
