package dino

// collides reports axis-aligned bounding-box overlap between the body
// and any live obstacle. It must run against post-tick positions, after
// both the body integration and the obstacle advance.
func collides(b body, obstacles []obstacle, geo geometry) bool {
	bodyLeft := float64(geo.bodyX)
	bodyRight := float64(geo.bodyX + geo.bodyW)
	bodyTop := b.y
	bodyBottom := b.y + float64(geo.bodyH)

	// Obstacles occupy a fixed vertical band anchored to the ground.
	obsTop := float64(geo.groundY - geo.obsH)
	obsBottom := float64(geo.groundY)

	for _, o := range obstacles {
		if bodyRight > o.x &&
			bodyLeft < o.trailingEdge() &&
			bodyBottom > obsTop &&
			bodyTop < obsBottom {
			return true
		}
	}
	return false
}
