package dino

import "math/rand"

// obstacle is one block scrolling toward the agent. Obstacles sit on
// the ground in a fixed vertical band; only x and width vary.
type obstacle struct {
	x      float64
	width  int
	passed bool
}

// trailingEdge is the obstacle's right edge in frame coordinates.
func (o obstacle) trailingEdge() float64 {
	return o.x + float64(o.width)
}

// stream owns the live obstacles and all spawn randomness. The rand
// source is the environment's per-episode source, so identical seeds
// reproduce identical obstacle sequences.
type stream struct {
	obstacles []obstacle
	rng       *rand.Rand
	geo       geometry
	screenW   int
}

func newStream(rng *rand.Rand, cfg Config, geo geometry) *stream {
	s := &stream{rng: rng, geo: geo, screenW: cfg.ScreenWidth}
	s.spawn(true)
	return s
}

// advance scrolls every obstacle left by speed, retires the ones whose
// trailing edge has left the screen, and spawns a replacement once the
// stream is empty or the newest obstacle has crossed the spawn
// threshold.
func (s *stream) advance(speed float64) {
	for i := range s.obstacles {
		s.obstacles[i].x -= speed
	}

	live := s.obstacles[:0]
	for _, o := range s.obstacles {
		if o.trailingEdge() > 0 {
			live = append(live, o)
		}
	}
	s.obstacles = live

	if len(s.obstacles) == 0 || s.obstacles[len(s.obstacles)-1].x < s.geo.spawnThreshold {
		s.spawn(false)
	}
}

// spawn pushes a new obstacle beyond the right screen edge. The first
// obstacle of an episode spawns farther out to give the agent a safe
// start; later ones draw their offset uniformly from the configured gap
// range. Width is an integer drawn uniformly from [obsMinW, obsMaxW].
func (s *stream) spawn(initial bool) {
	width := s.geo.obsMinW + s.rng.Intn(s.geo.obsMaxW-s.geo.obsMinW+1)

	x := float64(s.screenW)
	if initial {
		x += s.geo.initialSpawn
	} else {
		x += s.geo.spawnGapMin + s.rng.Float64()*(s.geo.spawnGapMax-s.geo.spawnGapMin)
	}

	s.obstacles = append(s.obstacles, obstacle{x: x, width: width})
}
